package main

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ja7ad/fpgabuild/pkg/estimate"
	"github.com/ja7ad/fpgabuild/pkg/report"
)

func newSweepCmd(a *app) *cobra.Command {
	var sortByTotal bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Estimate one design under every toolchain, CPU and optimization level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := a.input(cmd)
			if err != nil {
				return err
			}
			rows := sweep(a.est, in)
			if sortByTotal {
				slices.SortStableFunc(rows, func(x, y report.Row) int {
					return cmp.Compare(x.Result.Total(), y.Result.Total())
				})
			}
			return a.emit(cmd.OutOrStdout(), rows)
		},
	}
	addDesignFlags(cmd.Flags(), a.o)
	cmd.Flags().BoolVar(&sortByTotal, "sort", false, "order rows by total build time, fastest first")
	return cmd
}

// sweep keeps the resource counts of in and varies every categorical choice.
func sweep(est *estimate.Estimator, in estimate.Input) []report.Row {
	var rows []report.Row
	for _, t := range estimate.AllToolchains() {
		for _, c := range estimate.AllCPUs() {
			for _, o := range estimate.AllOptLevels() {
				in.Toolchain, in.CPU, in.Opt = t, c, o
				rows = append(rows, report.NewRow(est, fmt.Sprintf("%s/%s/%s", t, c, o), in))
			}
		}
	}
	return rows
}
