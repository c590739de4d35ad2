package output

import (
	"fmt"
	"io"
	"time"

	"github.com/spiffcs/prreport/internal/constants"
	"github.com/spiffcs/prreport/internal/log"
	"github.com/spiffcs/prreport/internal/model"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize creates with a new workbook.
const defaultSheet = "Sheet1"

// ExcelWriter saves the report as a single-sheet workbook.
type ExcelWriter struct {
	Filename string
	Now      time.Time
	// Out receives the confirmation line. Nil suppresses it.
	Out io.Writer
}

// Write builds the workbook for prs and saves it to w.Filename.
func (w *ExcelWriter) Write(prs []model.PullRequest) (err error) {
	filename := w.Filename
	if filename == "" {
		filename = constants.DefaultFilename
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", cerr)
		}
	}()

	sheet := constants.SheetName
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	for i, r := range NewRows(prs, w.Now) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := r.Values()
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row for #%d: %w", r.Number, err)
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	log.Debug("wrote workbook", "path", filename, "rows", len(prs))

	if w.Out != nil {
		if _, err := fmt.Fprintf(w.Out, "Excel report saved as %s\n", filename); err != nil {
			return err
		}
	}
	return nil
}
