package excel

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/innoalumni/portalkit/internal/common"
	"github.com/xuri/excelize/v2"
)

// MIMEType is the content type attached to exported workbooks.
const MIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet;charset=UTF-8"

// Record is one flat row of the export: column name to cell value.
type Record map[string]any

// SaveFunc receives the finished workbook. name already carries the .xlsx
// suffix. The default implementation writes the file to the current
// directory; tests and embedders can substitute their own sink.
type SaveFunc func(name, mimeType string, data []byte) error

// Exporter converts uniform record sets into single-sheet xlsx workbooks.
type Exporter struct {
	// Save receives exactly one invocation per successful Export.
	Save SaveFunc
	// Columns fixes the column order. When empty, the sorted keys of the
	// first record are used.
	Columns []string
}

// New returns an Exporter that saves workbooks as files on disk.
func New() *Exporter {
	return &Exporter{Save: writeFile}
}

func writeFile(name, _ string, data []byte) error {
	return os.WriteFile(name, data, 0o600)
}

// Export builds a workbook with one sheet named fileName holding the records
// as rows under a header row, then hands <fileName>.xlsx to the save hook.
func (e *Exporter) Export(records []Record, fileName string) error {
	logger := common.GetLogger().WithComponent("excel")

	if fileName == "" {
		return fmt.Errorf("excel: empty file name")
	}

	cols := e.Columns
	if len(cols) == 0 && len(records) > 0 {
		cols = make([]string, 0, len(records[0]))
		for k := range records[0] {
			cols = append(cols, k)
		}
		sort.Strings(cols)
	}

	buf, err := buildWorkbook(fileName, cols, records)
	if err != nil {
		return err
	}

	name := fileName + ".xlsx"
	save := e.Save
	if save == nil {
		save = writeFile
	}
	if err := save(name, MIMEType, buf.Bytes()); err != nil {
		return fmt.Errorf("excel: save %s: %w", name, err)
	}

	logger.Info("exported workbook", "file", name, "rows", len(records), "columns", len(cols))
	return nil
}

func buildWorkbook(sheet string, cols []string, records []Record) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel: create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("excel: drop default sheet: %w", err)
		}
	}

	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return nil, err
	}

	for i, rec := range records {
		row := make([]any, len(cols))
		for j, c := range cols {
			row[j] = rec[c]
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serialize workbook: %w", err)
	}
	return buf, nil
}

func setRow(f *excelize.File, sheet string, n int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return fmt.Errorf("excel: row %d: %w", n, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("excel: write row %d: %w", n, err)
	}
	return nil
}
