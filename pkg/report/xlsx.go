package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Estimates"

// XLSX writes rows to a single-sheet workbook.
func XLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for n, r := range rows {
		values := []interface{}{
			r.Name,
			r.Input.Toolchain.String(),
			r.Input.CPU.String(),
			r.Input.Opt.String(),
			uint64(r.Input.LUTs),
			uint64(r.Input.FFs),
			uint64(r.Input.DSPs),
			float64(r.Result.Synthesis),
			float64(r.Result.Implementation),
			float64(r.Result.Bitstream),
			float64(r.Result.Total()),
		}
		cell, err := excelize.CoordinatesToCellName(1, n+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", n+1, err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "K", 16); err != nil {
		return fmt.Errorf("column width: %w", err)
	}

	_, err := f.WriteTo(w)
	return err
}
