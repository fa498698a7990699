// Package config provides configuration loading for the hashlife
// command-line host, grounded on the pattern the corpus's service layer
// uses for its own YAML configuration.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/noctilu/hashlife/pkg/hashlife"
	"github.com/noctilu/hashlife/pkg/hlerrors"
)

// Config holds all configuration for the hashlife CLI host.
type Config struct {
	Rule     RuleConfig     `mapstructure:"rule"`
	Step     int            `mapstructure:"step"`
	Interner InternerConfig `mapstructure:"interner"`
	Log      LogConfig      `mapstructure:"log"`
}

// RuleConfig holds the outer-totalistic rule, encoded as comma-separated
// neighbor-count lists (e.g. "2,3"), decoded to 9-bit masks by Rules.
type RuleConfig struct {
	Survive string `mapstructure:"survive"`
	Birth   string `mapstructure:"birth"`
}

// InternerConfig holds Interner tuning.
type InternerConfig struct {
	HighWaterMark int `mapstructure:"high_water_mark"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from the given file path. An empty path looks in
// standard locations; if no config file is found anywhere, Load proceeds
// with defaults rather than failing, since every field has one.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("hashlife")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/hashlife")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// no config file anywhere searched; defaults stand.
		} else if os.IsNotExist(err) {
			// explicit path given but missing; defaults stand.
		} else {
			return nil, hlerrors.Wrap(hlerrors.CodeConfigError, "failed to read config file", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, hlerrors.Wrap(hlerrors.CodeConfigError, "failed to unmarshal config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, hlerrors.Wrap(hlerrors.CodeConfigError, "config validation failed", err)
	}

	return &cfg, nil
}

// LoadFromReader loads configuration from raw bytes of the given format
// ("yaml", "json", ...), bypassing the filesystem; used by tests and by
// hosts that embed their configuration.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType(configType)

	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, hlerrors.Wrap(hlerrors.CodeConfigError, "failed to parse config", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, hlerrors.Wrap(hlerrors.CodeConfigError, "failed to unmarshal config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, hlerrors.Wrap(hlerrors.CodeConfigError, "config validation failed", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("rule.survive", "2,3")
	v.SetDefault("rule.birth", "3")
	v.SetDefault("step", 0)
	v.SetDefault("interner.high_water_mark", hashlife.DefaultHighWaterMark)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate checks the configuration for internally-inconsistent values that
// would otherwise surface as confusing failures deeper in the engine.
func (c *Config) Validate() error {
	if c.Step < 0 {
		return fmt.Errorf("step must be non-negative, got %d", c.Step)
	}
	if c.Interner.HighWaterMark <= 0 {
		return fmt.Errorf("interner.high_water_mark must be positive, got %d", c.Interner.HighWaterMark)
	}
	if c.Rule.Survive == "" && c.Rule.Birth == "" {
		return fmt.Errorf("rule.survive and rule.birth cannot both be empty")
	}
	return nil
}

// Rules decodes the configured survive/birth neighbor lists into a
// hashlife.RuleSet, parsing each comma-separated entry via
// hashlife.ParseNeighborList.
func (c *Config) Rules() hashlife.RuleSet {
	return hashlife.RuleSet{
		Survive: hashlife.ParseNeighborList(parseIntList(c.Rule.Survive)),
		Birth:   hashlife.ParseNeighborList(parseIntList(c.Rule.Birth)),
	}
}

func parseIntList(s string) []int {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if n, err := strconv.Atoi(field); err == nil {
			out = append(out, n)
		}
	}
	return out
}
