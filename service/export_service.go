package service

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/3madMostafa/test-json-ocr/dto"
)

const exportSheet = "Extracted_Data"

// ExportService renders processed records as downloadable artifacts.
// One row per record, columns fixed by dto.FieldColumns.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// WriteXLSX returns an XLSX workbook as bytes.
func (s *ExportService) WriteXLSX(records []dto.RecordResult) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for i, column := range dto.FieldColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, column)
	}

	for r, record := range records {
		for c, column := range dto.FieldColumns {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(exportSheet, cell, record.Fields[column])
		}
	}

	// Widen the identifier and free-text columns
	_ = f.SetColWidth(exportSheet, "A", "C", 24)
	_ = f.SetColWidth(exportSheet, "T", "V", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteCSV returns the same rows as UTF-8 CSV.
func (s *ExportService) WriteCSV(records []dto.RecordResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(dto.FieldColumns); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}

	row := make([]string, len(dto.FieldColumns))
	for _, record := range records {
		for i, column := range dto.FieldColumns {
			row[i] = record.Fields[column]
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv write: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}
