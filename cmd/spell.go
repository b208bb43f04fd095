package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/scaledex/chord"
	"github.com/jsphweid/scaledex/logger"
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/scale"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type scaleFlags struct {
	scaleType string
	formula   []int
	chords    bool
}

func (f *scaleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.scaleType, "type", "t", "major", "Scale type, as listed by the catalog command")
	cmd.Flags().IntSliceVarP(&f.formula, "formula", "f", nil, "Semitone steps, e.g. 2,2,1,2,2,2,1 (overrides the catalog formula for --type)")
	cmd.Flags().BoolVar(&f.chords, "chords", false, "Include diatonic triads")
}

func (f *scaleFlags) spell(root string) (model.Scale, error) {
	if len(f.formula) > 0 {
		return scale.Spell(root, f.formula, f.scaleType)
	}
	return scale.SpellType(root, f.scaleType)
}

func newSpellCmd() *cobra.Command {
	var flags scaleFlags
	cmd := &cobra.Command{
		Use:   "spell ROOT",
		Short: "Spells a scale",
		Long:  `Spells a scale and names its interval degrees`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := args[0]
			s, err := flags.spell(root)
			if err != nil {
				return err
			}
			notes := model.ScaleStrings(s)
			labels, err := scale.NameIntervals(notes, root)
			if err != nil {
				return err
			}
			warnIfShort(notes, labels)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "notes:     %v\n", strings.Join(notes, " "))
			fmt.Fprintf(out, "intervals: %v\n", strings.Join(labels, " "))
			if flags.chords {
				var names []string
				for _, t := range chord.Triads(s) {
					names = append(names, t.Name)
				}
				fmt.Fprintf(out, "chords:    %v\n", strings.Join(names, " "))
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func warnIfShort(notes []string, labels []string) {
	if len(labels) < len(notes) {
		logger.GetProjectLogger().WithFields(logrus.Fields{
			"notes":  notes,
			"labels": labels,
		}).Warn("some notes could not be named")
	}
}
