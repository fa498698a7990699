package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/noctilu/hashlife/internal/patternio"
	"github.com/noctilu/hashlife/pkg/hashlife"
	"github.com/noctilu/hashlife/pkg/hlerrors"
)

// buildUniverse loads patternPath into a fresh Universe, applying the given
// step and the configured rules (overridden by ruleFlag if non-empty).
func buildUniverse(patternPath, ruleFlag string, step int) (*hashlife.Universe, error) {
	xs, ys, err := patternio.Load(patternPath, patternio.FormatAuto)
	if err != nil {
		return nil, err
	}

	u := hashlife.New()
	u.LoadField(xs, ys)
	u.SetStep(step)

	rules := GetConfig().Rules()
	if ruleFlag != "" {
		rules, err = parseRuleFlag(ruleFlag)
		if err != nil {
			return nil, err
		}
	}
	u.SetRules(rules.Survive, rules.Birth)

	return u, nil
}

// parseRuleFlag parses a "S/B" rule string, e.g. "2,3/3" for Conway Life,
// into a hashlife.RuleSet.
func parseRuleFlag(s string) (hashlife.RuleSet, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return hashlife.RuleSet{}, hlerrors.New(hlerrors.CodeConfigError, fmt.Sprintf("invalid rule %q, expected \"survive/birth\"", s))
	}

	survive, err := parseNeighborCSV(parts[0])
	if err != nil {
		return hashlife.RuleSet{}, hlerrors.Wrap(hlerrors.CodeConfigError, "parsing survive neighbor list", err)
	}
	birth, err := parseNeighborCSV(parts[1])
	if err != nil {
		return hashlife.RuleSet{}, hlerrors.Wrap(hlerrors.CodeConfigError, "parsing birth neighbor list", err)
	}

	return hashlife.RuleSet{
		Survive: hashlife.ParseNeighborList(survive),
		Birth:   hashlife.ParseNeighborList(birth),
	}, nil
}

func parseNeighborCSV(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
