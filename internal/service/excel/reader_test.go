package excel_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/service/excel"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	wb := excelize.NewFile()
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := wb.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf
}

func TestReadRowsSkipsHeader(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"ID", "Block", "", "", "Area", "", "Price"},
		{"A-101", "B1", "", "", "350", "", "500000"},
		{"A-102", "B1", "", "", "420", "", "610000"},
	})

	rows, err := excel.ReadRowsFrom(buf)
	if err != nil {
		t.Fatalf("ReadRowsFrom failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][0] != "A-101" {
		t.Errorf("first data row id = %q, want A-101", rows[0][0])
	}
}

func TestReadRowsEmptySheet(t *testing.T) {
	buf := buildWorkbook(t, [][]interface{}{
		{"ID", "Block"},
	})

	rows, err := excel.ReadRowsFrom(buf)
	if err != nil {
		t.Fatalf("ReadRowsFrom failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0 for header-only sheet", len(rows))
	}
}

func TestReadRowsMissingFile(t *testing.T) {
	if _, err := excel.ReadRows("does-not-exist.xlsx"); err == nil {
		t.Error("ReadRows should fail for a missing workbook")
	}
}
