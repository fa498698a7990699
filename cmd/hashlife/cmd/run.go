package cmd

import (
	"github.com/spf13/cobra"
)

var (
	runPattern     string
	runGenerations int
	runStep        int
	runRule        string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load a pattern and advance it by a number of generations",
	Long: `run loads a pattern file, advances the universe one singleStep
NextGeneration call per requested generation, and reports the final
population, generation counter, and bounding box.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runPattern, "pattern", "", "Pattern file to load (required)")
	runCmd.Flags().IntVar(&runGenerations, "generations", 1, "Number of ticks to run; each advances 2^step generations")
	runCmd.Flags().IntVar(&runStep, "step", 0, "Step exponent: each generation advances by 2^step")
	runCmd.Flags().StringVar(&runRule, "rule", "", `Rule override as "survive/birth", e.g. "2,3/3"`)
	runCmd.MarkFlagRequired("pattern")
}

func runRun(cmd *cobra.Command, args []string) error {
	log := GetLogger()

	u, err := buildUniverse(runPattern, runRule, runStep)
	if err != nil {
		return err
	}

	log.Info("loaded %s: population=%d level=%d", runPattern, u.GetPopulation(), u.GetLevel())

	for i := 0; i < runGenerations; i++ {
		u.NextGeneration(true)
	}

	bounds := u.GetRootBounds()
	log.Info("generation=%.0f population=%d level=%d", u.GetGeneration(), u.GetPopulation(), u.GetLevel())
	log.Info("bounds left=%.0f top=%.0f right=%.0f bottom=%.0f", bounds[0], bounds[2], bounds[1], bounds[3])

	return nil
}
