package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ja7ad/fpgabuild/pkg/estimate"
	"github.com/ja7ad/fpgabuild/pkg/report"
)

// design is one entry of a batch file. Omitted fields keep the
// configured defaults.
type design struct {
	Name           string `yaml:"name"`
	estimate.Input `yaml:",inline"`
}

type batchFile struct {
	Designs []yaml.Node `yaml:"designs"`
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Estimate every design listed in a YAML file",
		Long: `Estimate every design listed in a YAML file ("-" reads stdin):

  designs:
    - name: soc-top
      toolchain: Vivado
      cpu: Threadripper 3970X
      opt: O3
      luts: 210000
      ffs: 260000
      dsps: 1400
    - name: sensor-bridge
      luts: 8000

Fields that are left out take the configured defaults.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("batch: read: %w", err)
			}

			designs, err := parseBatch(data, a.cfg.Defaults)
			if err != nil {
				return err
			}

			rows := make([]report.Row, 0, len(designs))
			for _, d := range designs {
				rows = append(rows, report.NewRow(a.est, d.Name, d.Input))
			}
			return a.emit(cmd.OutOrStdout(), rows)
		},
	}
}

func parseBatch(data []byte, defaults estimate.Input) ([]design, error) {
	var f batchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("batch: parse: %w", err)
	}
	if len(f.Designs) == 0 {
		return nil, fmt.Errorf("batch: no designs")
	}

	out := make([]design, 0, len(f.Designs))
	for i := range f.Designs {
		d := design{Input: defaults}
		if err := f.Designs[i].Decode(&d); err != nil {
			return nil, fmt.Errorf("batch: design %d: %w", i+1, err)
		}
		if d.Name == "" {
			d.Name = fmt.Sprintf("design-%d", i+1)
		}
		out = append(out, d)
	}
	return out, nil
}
