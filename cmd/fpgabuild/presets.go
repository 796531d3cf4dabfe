package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ja7ad/fpgabuild/pkg/estimate"
)

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List toolchains, CPUs, optimization levels and model coefficients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			coef := a.est.Coefficients()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintln(tw, "KIND\tCHOICE\tFACTOR")
			fmt.Fprintln(tw, "----\t------\t------")
			for _, t := range estimate.AllToolchains() {
				fmt.Fprintf(tw, "toolchain\t%s\t%.2f\n", t, t.Factor())
			}
			for _, c := range estimate.AllCPUs() {
				fmt.Fprintf(tw, "cpu\t%s\t%.2f\n", c, c.Factor())
			}
			for _, o := range estimate.AllOptLevels() {
				fmt.Fprintf(tw, "opt\t%s\t%.2f\n", o, float64(o.Index())*coef.OptStep+1)
			}
			fmt.Fprintln(tw)
			fmt.Fprintf(tw, "base\t(LUTs+FFs)/%g + DSPs/%g\t\n", coef.CellsPerUnit, coef.DSPsPerUnit)
			fmt.Fprintf(tw, "stage\tsynthesis\t%g min/unit\n", coef.Synthesis)
			fmt.Fprintf(tw, "stage\timplementation\t%g min/unit\n", coef.Implementation)
			fmt.Fprintf(tw, "stage\tbitstream\t%g min/unit\n", coef.Bitstream)
			return tw.Flush()
		},
	}
}
