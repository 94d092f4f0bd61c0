package cmd

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mmuldo/prism/palette"
	"github.com/mmuldo/prism/theme"
)

var count int

// colorCmd represents the color command
var colorCmd = &cobra.Command{
	Use:   "color [index...]",
	Short: "Print colors from a seed's sequence",
	Long: `Prints colors from the seed's sequence. With index arguments, the colors
at those positions are computed directly, in the order given; otherwise
--count colors are drawn sequentially from the start of the sequence. Both
paths produce identical colors for identical positions.`,
	Run: func(cmd *cobra.Command, args []string) {
		setDefaults()

		sp, err := space()
		if err != nil {
			log.Fatal(err)
		}

		if len(args) > 0 {
			indices, err := parseIndices(args)
			if err != nil {
				log.Fatal(err)
			}
			for i, c := range palette.ColorsAt(seed, indices, sp) {
				fmt.Println(theme.ANSI(c, fmt.Sprintf("[%d]", indices[i])))
			}
			return
		}

		session := palette.NewSession(seed)
		colors, err := session.NextColors(count, sp)
		if err != nil {
			log.Fatal(err)
		}
		for i, c := range colors {
			fmt.Println(theme.ANSI(c, fmt.Sprintf("[%d]", i)))
		}
	},
}

func init() {
	rootCmd.AddCommand(colorCmd)

	colorCmd.Flags().IntVarP(&count, "count", "n", 1, "number of sequential colors")
}

func parseIndices(args []string) ([]uint64, error) {
	indices := make([]uint64, len(args))
	for i, a := range args {
		k, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("'%s' is not a sequence index", a)
		}
		indices[i] = k
	}
	return indices, nil
}
