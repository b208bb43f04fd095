package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/scaledex/scale"
	"github.com/spf13/cobra"
)

func newIntervalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intervals ROOT NOTE...",
		Short: "Names intervals",
		Long:  `Names the interval degree of each note relative to ROOT. Notes that can't be resolved are skipped.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes := args[1:]
			labels, err := scale.NameIntervals(notes, args[0])
			if err != nil {
				return err
			}
			warnIfShort(notes, labels)
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(labels, " "))
			return nil
		},
	}
}
