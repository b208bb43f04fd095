package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/scaledex/scale"
	"github.com/jsphweid/scaledex/util"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Lists scale types",
		Long:  `Lists known scale types and their formulas. Types marked with * get enharmonic normalization.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, scaleType := range scale.ScaleTypes() {
				steps := make([]string, 0, len(scale.Catalog[scaleType]))
				for _, step := range scale.Catalog[scaleType] {
					steps = append(steps, strconv.Itoa(step))
				}
				marker := " "
				if util.Contains(scale.NormalizedTypes, scaleType) {
					marker = "*"
				}
				fmt.Fprintf(out, "%v %-18v %v\n", marker, scaleType, strings.Join(steps, ","))
			}
		},
	}
}
