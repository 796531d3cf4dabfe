// Package report renders build-time estimates for terminals and files.
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/ja7ad/fpgabuild/pkg/estimate"
	"github.com/ja7ad/fpgabuild/pkg/system/util"
)

// ErrUnknownFormat indicates an output format this package cannot write.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names an output encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatXLSX Format = "xlsx"
)

// Row is one estimated design.
type Row struct {
	Name    string             `json:"name"`
	Input   estimate.Input     `json:"input"`
	Result  estimate.Result    `json:"result"`
	Factors estimate.Breakdown `json:"factors"`
}

// NewRow runs est on in and captures everything a report shows.
func NewRow(est *estimate.Estimator, name string, in estimate.Input) Row {
	return Row{
		Name:    name,
		Input:   in,
		Result:  est.Estimate(in),
		Factors: est.Factors(in),
	}
}

var header = []string{
	"name", "toolchain", "cpu", "opt", "luts", "ffs", "dsps",
	"synthesis_min", "implementation_min", "bitstream_min", "total_min",
}

func record(r Row) []string {
	return []string{
		r.Name,
		r.Input.Toolchain.String(),
		r.Input.CPU.String(),
		r.Input.Opt.String(),
		r.Input.LUTs.String(),
		r.Input.FFs.String(),
		r.Input.DSPs.String(),
		minutes(float64(r.Result.Synthesis)),
		minutes(float64(r.Result.Implementation)),
		minutes(float64(r.Result.Bitstream)),
		minutes(float64(r.Result.Total())),
	}
}

// minutes keeps two decimals and drops float noise such as 115.20000000000002.
func minutes(v float64) string {
	return util.FmtFloat(math.Round(v*100) / 100)
}

// Table writes an aligned table.
func Table(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DESIGN\tTOOLCHAIN\tCPU\tOPT\tLUTs\tFFs\tDSPs\tSYNTHESIS\tIMPLEMENTATION\tBITSTREAM\tTOTAL")
	fmt.Fprintln(tw, "------\t---------\t---\t---\t----\t---\t----\t---------\t--------------\t---------\t-----")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Name, r.Input.Toolchain, r.Input.CPU, r.Input.Opt,
			r.Input.LUTs.Humanized(), r.Input.FFs.Humanized(), r.Input.DSPs.Humanized(),
			r.Result.Synthesis, r.Result.Implementation, r.Result.Bitstream, r.Result.Total(),
		)
	}
	return tw.Flush()
}

// Lines writes one comma separated line per row, preceded by a comment header.
func Lines(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintln(w, "# "+strings.Join(header, ", ")); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s, %s, %s, %s, %d, %d, %d, %.1f, %.1f, %.1f, %.1f\n",
			r.Name, r.Input.Toolchain, r.Input.CPU, r.Input.Opt,
			uint64(r.Input.LUTs), uint64(r.Input.FFs), uint64(r.Input.DSPs),
			float64(r.Result.Synthesis), float64(r.Result.Implementation),
			float64(r.Result.Bitstream), float64(r.Result.Total()),
		); err != nil {
			return err
		}
	}
	return nil
}

// CSV writes rows with a header line.
func CSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// JSON writes rows as an indented array.
func JSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Write encodes rows in format f.
func Write(w io.Writer, f Format, rows []Row) error {
	switch f {
	case FormatCSV:
		return CSV(w, rows)
	case FormatJSON:
		return JSON(w, rows)
	case FormatHTML:
		return HTML(w, rows)
	case FormatXLSX:
		return XLSX(w, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// FormatFromPath infers the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch Format(ext) {
	case FormatCSV, FormatJSON, FormatHTML, FormatXLSX:
		return Format(ext), nil
	case "htm":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// WriteFile creates path (and its parent directories) and writes rows in format f.
func WriteFile(path string, f Format, rows []Row) (err error) {
	switch f {
	case FormatCSV, FormatJSON, FormatHTML, FormatXLSX:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("report: mkdir: %w", err)
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(fh, f, rows)
}
