package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	"github.com/3madMostafa/test-json-ocr/dto"
)

func exportFixture() []dto.RecordResult {
	fields := dto.Fields{}
	for _, column := range dto.FieldColumns {
		fields[column] = ""
	}
	fields["filename"] = "a.json"
	fields["uuid"] = "ABC123UUID"
	fields["PO number"] = "173417"
	fields["PO source"] = "json (arabic-meals)"

	return []dto.RecordResult{{Filename: "a.json", Fields: fields}}
}

func TestWriteCSV(t *testing.T) {
	svc := NewExportService()

	data, err := svc.WriteCSV(exportFixture())
	assert.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, dto.FieldColumns, rows[0])

	row := rows[1]
	assert.Equal(t, "a.json", row[0])
	for i, column := range dto.FieldColumns {
		if column == "PO number" {
			assert.Equal(t, "173417", row[i])
		}
	}
}

func TestWriteXLSX(t *testing.T) {
	svc := NewExportService()

	data, err := svc.WriteXLSX(exportFixture())
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(exportSheet, "A1")
	assert.NoError(t, err)
	assert.Equal(t, "filename", header)

	value, err := f.GetCellValue(exportSheet, "A2")
	assert.NoError(t, err)
	assert.Equal(t, "a.json", value)

	// the PO number column keeps its fixed position
	for i, column := range dto.FieldColumns {
		if column != "PO number" {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		assert.NoError(t, err)
		value, err = f.GetCellValue(exportSheet, cell)
		assert.NoError(t, err)
		assert.Equal(t, "173417", value)
	}
}
