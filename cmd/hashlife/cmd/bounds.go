package cmd

import (
	"github.com/spf13/cobra"
)

var boundsPattern string

var boundsCmd = &cobra.Command{
	Use:   "bounds",
	Short: "Report a pattern's tight bounding box",
	Long: `bounds loads a pattern file and reports the tight bounding box around
its live cells, computed by walking the quadtree's border rather than
scanning the full root.`,
	RunE: runBounds,
}

func init() {
	rootCmd.AddCommand(boundsCmd)

	boundsCmd.Flags().StringVar(&boundsPattern, "pattern", "", "Pattern file to load (required)")
	boundsCmd.MarkFlagRequired("pattern")
}

func runBounds(cmd *cobra.Command, args []string) error {
	u, err := buildUniverse(boundsPattern, "", 0)
	if err != nil {
		return err
	}

	bounds := u.GetRootBounds()
	log := GetLogger()
	log.Info("left=%.0f top=%.0f right=%.0f bottom=%.0f", bounds[0], bounds[2], bounds[1], bounds[3])
	log.Info("population=%d level=%d", u.GetPopulation(), u.GetLevel())

	return nil
}
