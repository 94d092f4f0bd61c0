package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mmuldo/prism/palette"
	"github.com/mmuldo/prism/theme"
)

var (
	paletteSize  int
	paletteIndex uint64
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Generate a palette of visually distinct colors",
	Long: `Generates a palette whose colors are pairwise separated by at least the
configured CIEDE2000 distance. If the distance cannot be satisfied for the
requested size within the attempt budget, the palette comes back shorter;
rerun with a smaller --min-distance or size for a full palette.`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaults()

		sp, err := space()
		if err != nil {
			log.Fatal(err)
		}

		colors, err := palette.PaletteAt(seed, paletteIndex, paletteSize, sp, minDistance)
		if err != nil {
			log.Fatal(err)
		}
		if len(colors) < paletteSize {
			log.Warnf("distance %.1f yielded %d of %d colors; budget exhausted", minDistance, len(colors), paletteSize)
		}

		for i, c := range colors {
			fmt.Println(theme.ANSI(c, fmt.Sprintf("color%d", i)))
		}
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().IntVarP(&paletteSize, "size", "n", 8, "number of colors")
	paletteCmd.Flags().Uint64VarP(&paletteIndex, "index", "i", 0, "sequence position the palette is rooted at")
}
