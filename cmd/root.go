package cmd

import (
	"strings"

	"github.com/jsphweid/scaledex/constants"
	"github.com/jsphweid/scaledex/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// NewRootCmd builds the command tree. Every flag registered through bindFlag
// can also be set as SCALEDEX_<FLAG_NAME>.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "scaledex",
		Short: "Spells musical scales",
		Long: `Spells scales from a root note and an interval formula, names their
interval degrees and renders them to MIDI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetDebug(v.GetBool("debug"))
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug output")
	bindFlag(v, "debug", rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newSpellCmd(),
		newIntervalsCmd(),
		newCatalogCmd(),
		newExportCmd(v),
	)
	return rootCmd
}

func bindFlag(v *viper.Viper, name string, flags *pflag.FlagSet) {
	if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
		panic("Could not bind flag " + name + ": " + err.Error())
	}
}

func Execute() {
	cobra.CheckErr(NewRootCmd().Execute())
}
