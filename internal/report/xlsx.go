package report

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/xuri/excelize/v2"

	"ec2inventory/internal/models"
	"ec2inventory/pkg/logging"
)

const (
	// SheetName is the title of the only sheet in the workbook.
	SheetName = "EC2 Instances"

	headerRow    = 1
	blankRow     = 2
	firstDataRow = 3

	defaultSheet = "Sheet1"
	dirPerm      = 0o755
)

// FileName returns the report file name for the given clock reading,
// e.g. "October_INVENTORY_DATA_2026.xlsx".
func FileName(now time.Time) string {
	return fmt.Sprintf("%s_INVENTORY_DATA_%d.xlsx", now.Month().String(), now.Year())
}

// XLSXExporter writes inventories as Excel workbooks into a directory.
type XLSXExporter struct {
	outputDir string
	logger    logging.Logger
}

// NewXLSXExporter creates an exporter writing into outputDir
func NewXLSXExporter(outputDir string, logger logging.Logger) *XLSXExporter {
	return &XLSXExporter{
		outputDir: outputDir,
		logger:    logger,
	}
}

// Export writes the records to <outputDir>/<Month>_INVENTORY_DATA_<Year>.xlsx,
// overwriting any previous report for the same month, and returns the path.
func (e *XLSXExporter) Export(records []models.InstanceRecord, now time.Time) (string, error) {
	f, err := buildWorkbook(records)
	if err != nil {
		return "", &ExportError{Op: OpBuild, Err: err}
	}
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.Warn("Failed to close workbook: %v", err)
		}
	}()

	if err := os.MkdirAll(e.outputDir, dirPerm); err != nil {
		return "", &ExportError{Op: OpMkdir, Path: e.outputDir, Err: err}
	}

	path := filepath.Join(e.outputDir, FileName(now))
	if err := f.SaveAs(path); err != nil {
		return "", &ExportError{Op: OpSave, Path: path, Err: err}
	}

	e.logger.Info("Inventory Data Created Successfully in: %s", path)
	return path, nil
}

// buildWorkbook lays out the header row, the blank spacer row and one row
// per record.
func buildWorkbook(records []models.InstanceRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := writeRow(f, headerRow, models.Headers); err != nil {
		f.Close()
		return nil, err
	}

	// Spacer between the header and the data.
	spacer, err := excelize.CoordinatesToCellName(1, blankRow)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellValue(SheetName, spacer, ""); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write blank row: %w", err)
	}

	for i, record := range records {
		if err := writeRow(f, firstDataRow+i, record.Values()); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// writeRow writes values from column A onwards. Empty values leave the cell empty.
func writeRow(f *excelize.File, row int, values []string) error {
	for i, value := range values {
		if value == "" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(SheetName, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}

// ReadReport loads the records back from a workbook written by Export.
func ReadReport(path string) ([]models.InstanceRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ExportError{Op: OpOpen, Path: path, Err: err}
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, &ExportError{Op: OpRead, Path: path, Err: err}
	}

	if len(rows) < headerRow || !slices.Equal(rows[headerRow-1], models.Headers) {
		return nil, &ExportError{Op: OpRead, Path: path, Err: fmt.Errorf("sheet %q does not start with the inventory header", SheetName)}
	}

	records := make([]models.InstanceRecord, 0)
	for i := firstDataRow - 1; i < len(rows); i++ {
		record, err := models.RecordFromValues(rows[i])
		if err != nil {
			return nil, &ExportError{Op: OpRead, Path: path, Err: fmt.Errorf("row %d: %w", i+1, err)}
		}
		records = append(records, record)
	}

	return records, nil
}
