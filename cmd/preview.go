package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mmuldo/prism/palette"
	"github.com/mmuldo/prism/swatch"
)

var (
	previewOut  string
	previewCell int
)

// previewCmd represents the preview command
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Write a palette as a PNG swatch grid",
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

		if err := swatch.WritePNG(previewOut, colors, previewCell); err != nil {
			log.Fatal(err)
		}
		log.Infof("wrote %d swatches to %s", len(colors), previewOut)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "palette.png", "output file")
	previewCmd.Flags().IntVar(&previewCell, "cell", 200, "swatch cell size in pixels")
	previewCmd.Flags().IntVarP(&paletteSize, "size", "n", 8, "number of colors")
	previewCmd.Flags().Uint64VarP(&paletteIndex, "index", "i", 0, "sequence position the palette is rooted at")
}
