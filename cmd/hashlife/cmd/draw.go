package cmd

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/noctilu/hashlife/pkg/hashlife"
)

var (
	drawPattern  string
	drawCellSize int
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Render a pattern as ASCII art",
	Long: `draw loads a pattern file and renders it as an ASCII grid, built from
the coordinate stream Draw() emits after culling to the pattern's own
bounding box.`,
	RunE: runDraw,
}

func init() {
	rootCmd.AddCommand(drawCmd)

	drawCmd.Flags().StringVar(&drawPattern, "pattern", "", "Pattern file to load (required)")
	drawCmd.Flags().IntVar(&drawCellSize, "cell-size", 1, "Pixels per cell in the rendered grid")
	drawCmd.MarkFlagRequired("pattern")
}

func runDraw(cmd *cobra.Command, args []string) error {
	u, err := buildUniverse(drawPattern, "", 0)
	if err != nil {
		return err
	}

	rootSize := math.Ldexp(float64(drawCellSize), u.GetLevel())
	offset := rootSize / 2

	points := u.Draw(-offset, -offset, rootSize, rootSize, rootSize, offset, offset)

	log := GetLogger()
	if len(points) == 0 {
		log.Info("pattern has no live cells in view")
		return nil
	}

	grid, minCol, minRow, width, height := rasterize(points, drawCellSize)
	for row := 0; row < height; row++ {
		var line strings.Builder
		for col := 0; col < width; col++ {
			if grid[gridIndex(row, col, width)] {
				line.WriteByte('O')
			} else {
				line.WriteByte('.')
			}
		}
		fmt.Println(line.String())
	}

	log.Debug("drew %d cells spanning cols[%d,%d) rows[%d,%d)", len(points), minCol, minCol+width, minRow, minRow+height)
	return nil
}

func gridIndex(row, col, width int) int { return row*width + col }

// rasterize buckets Draw's emitted points into a dense boolean grid sized
// to their bounding box, dividing pixel coordinates down to cell
// coordinates by cellSize.
func rasterize(points []hashlife.Point, cellSize int) (grid []bool, minCol, minRow, width, height int) {
	cols := make([]int, len(points))
	rows := make([]int, len(points))
	for i, p := range points {
		cols[i] = int(p.X) / cellSize
		rows[i] = int(p.Y) / cellSize
	}

	minCol, maxCol := cols[0], cols[0]
	minRow, maxRow := rows[0], rows[0]
	for i := range points {
		minCol = min(minCol, cols[i])
		maxCol = max(maxCol, cols[i])
		minRow = min(minRow, rows[i])
		maxRow = max(maxRow, rows[i])
	}

	width = maxCol - minCol + 1
	height = maxRow - minRow + 1
	grid = make([]bool, width*height)

	for i := range points {
		grid[gridIndex(rows[i]-minRow, cols[i]-minCol, width)] = true
	}

	return grid, minCol, minRow, width, height
}
