package cmd

import (
	"fmt"
	"io/ioutil"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mmuldo/prism/palette"
	"github.com/mmuldo/prism/theme"
)

var (
	templatePath string
	renderOut    string
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a palette through a template",
	Long: `Builds a theme from a generated palette (color0, color1, ... plus
background/foreground defaults) and renders it through a pongo2 template,
e.g. to produce a terminal color scheme.`,
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

		t := theme.New(colors, map[string]interface{}{"seed": seed})
		out, err := theme.Render(t, templatePath)
		if err != nil {
			log.Fatal(err)
		}

		if renderOut == "" {
			fmt.Print(out)
			return
		}
		if err := ioutil.WriteFile(renderOut, []byte(out), 0644); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&templatePath, "template", "t", "", "pongo2 template file")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().IntVarP(&paletteSize, "size", "n", 8, "number of colors")
	renderCmd.Flags().Uint64VarP(&paletteIndex, "index", "i", 0, "sequence position the palette is rooted at")
	renderCmd.MarkFlagRequired("template")
}
