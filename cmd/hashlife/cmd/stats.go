package cmd

import (
	"github.com/spf13/cobra"
)

var (
	statsPattern     string
	statsGenerations int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Advance a pattern and report interner cache statistics",
	Long: `stats loads a pattern file, advances it by the requested number of
generations, and reports the interner's node count, load factor, and hit
rate alongside the universe's population and level.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsPattern, "pattern", "", "Pattern file to load (required)")
	statsCmd.Flags().IntVar(&statsGenerations, "generations", 1, "Number of generations to advance before reporting")
	statsCmd.MarkFlagRequired("pattern")
}

func runStats(cmd *cobra.Command, args []string) error {
	u, err := buildUniverse(statsPattern, "", 0)
	if err != nil {
		return err
	}

	for i := 0; i < statsGenerations; i++ {
		u.NextGeneration(true)
	}

	s := u.Stats()
	log := GetLogger()
	log.Info("generation=%.0f population=%d level=%d nodes=%d", s.Generation, s.Population, s.Level, s.NodeCount)
	log.Info("cache hits=%d misses=%d", s.CacheHits, s.CacheMisses)
	log.Info("load factor=%.3f hit rate=%.3f", u.Interner().LoadFactor(), u.Interner().HitRate())

	for level, count := range s.LevelHistogram {
		log.Debug("level %d: %d nodes", level, count)
	}

	return nil
}
