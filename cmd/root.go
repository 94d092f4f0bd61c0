package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/prism/colorspace"
	"github.com/mmuldo/prism/palette"
)

var (
	cfgFile     string
	seed        uint64
	spaceName   string
	minDistance float64
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prism",
	Short: "Reproducible color sequences from a seed",
	Long: `prism generates reproducible sequences of colors from a numeric seed.
Any position in a sequence can be retrieved independently and in any order
with bit-identical results, so the same seed yields the same colors on any
machine.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.prism.yaml)")
	rootCmd.PersistentFlags().Uint64VarP(&seed, "seed", "s", palette.DefaultSeed, "generator seed")
	rootCmd.PersistentFlags().StringVarP(&spaceName, "colorspace", "c", "srgb", "target color space (srgb, display-p3, rec2020)")
	rootCmd.PersistentFlags().Float64VarP(&minDistance, "min-distance", "d", palette.DefaultMinDistance, "minimum CIEDE2000 distance between palette colors")
}

// setDefaults fills flags the user left untouched from the config file.
func setDefaults() {
	flags := rootCmd.PersistentFlags()

	if !flags.Changed("seed") && viper.IsSet("seed") {
		seed = uint64(viper.GetInt64("seed"))
	}
	if !flags.Changed("colorspace") && viper.GetString("colorspace") != "" {
		spaceName = viper.GetString("colorspace")
	}
	if !flags.Changed("min-distance") && viper.IsSet("min-distance") {
		minDistance = viper.GetFloat64("min-distance")
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".prism")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file %s", viper.ConfigFileUsed())
	}
}

// space resolves the --colorspace flag (or config value) to a Space.
func space() (colorspace.Space, error) {
	switch spaceName {
	case "srgb", "":
		return colorspace.SRGB, nil
	case "display-p3", "p3":
		return colorspace.DisplayP3, nil
	case "rec2020", "rec.2020":
		return colorspace.Rec2020, nil
	}
	return colorspace.Space{}, errors.Errorf("'%s' is not a supported color space", spaceName)
}
