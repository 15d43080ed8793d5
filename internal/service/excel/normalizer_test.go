package excel_test

import (
	"errors"
	"testing"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/service/excel"
)

func TestNormalizeRow(t *testing.T) {
	n := excel.NewNormalizer(excel.DefaultSchema())

	row := []string{" A-101 ", "B3", "x", "x", "350.5", "x", "12,500.00"}
	rec, err := n.NormalizeRow(row)
	if err != nil {
		t.Fatalf("NormalizeRow failed: %v", err)
	}
	if rec.ID != "A-101" {
		t.Errorf("ID = %q, want A-101", rec.ID)
	}
	if rec.Block != "B3" {
		t.Errorf("Block = %q, want B3", rec.Block)
	}
	if rec.Area != "350.5" {
		t.Errorf("Area = %q, want 350.5", rec.Area)
	}
	// Digit runs are concatenated before parsing: "12,500.00" -> "1250000".
	if rec.Price != 1250000.0 {
		t.Errorf("Price = %v, want 1250000.0", rec.Price)
	}
}

func TestNormalizeRowEmptyID(t *testing.T) {
	n := excel.NewNormalizer(excel.DefaultSchema())

	for _, row := range [][]string{
		{},
		{""},
		{"   ", "B1", "", "", "100", "", "5000"},
	} {
		_, err := n.NormalizeRow(row)
		if !errors.Is(err, excel.ErrNoID) {
			t.Errorf("NormalizeRow(%v) err = %v, want ErrNoID", row, err)
		}
	}
}

func TestNormalizeRowBlockAreaPassThrough(t *testing.T) {
	n := excel.NewNormalizer(excel.DefaultSchema())

	// Only the id is trimmed; block and area are opaque display strings.
	rec, err := n.NormalizeRow([]string{" A-5 ", " B 3 ", "", "", " 350.5 ", "", "100"})
	if err != nil {
		t.Fatalf("NormalizeRow failed: %v", err)
	}
	if rec.ID != "A-5" {
		t.Errorf("ID = %q, want A-5", rec.ID)
	}
	if rec.Block != " B 3 " {
		t.Errorf("Block = %q, want the raw cell kept", rec.Block)
	}
	if rec.Area != " 350.5 " {
		t.Errorf("Area = %q, want the raw cell kept", rec.Area)
	}
}

func TestNormalizeRowShortRow(t *testing.T) {
	n := excel.NewNormalizer(excel.DefaultSchema())

	rec, err := n.NormalizeRow([]string{"A-7", "B1"})
	if err != nil {
		t.Fatalf("NormalizeRow failed: %v", err)
	}
	if rec.Price != 0.0 {
		t.Errorf("Price = %v, want 0.0 for missing price cell", rec.Price)
	}
	if rec.Area != "" {
		t.Errorf("Area = %q, want empty for missing area cell", rec.Area)
	}
}

func TestNormalizeRowPriceWithoutDigits(t *testing.T) {
	n := excel.NewNormalizer(excel.DefaultSchema())

	rec, err := n.NormalizeRow([]string{"A-8", "B1", "", "", "90", "", "TBD"})
	if err != nil {
		t.Fatalf("NormalizeRow failed: %v", err)
	}
	if rec.Price != 0.0 {
		t.Errorf("Price = %v, want 0.0 for non-numeric cell", rec.Price)
	}
}

func TestNormalizeRowIdempotent(t *testing.T) {
	n := excel.NewNormalizer(excel.DefaultSchema())

	row := []string{"A-9", "B2", "", "", "120", "", "SAR 1,000.50"}
	first, err := n.NormalizeRow(row)
	if err != nil {
		t.Fatalf("NormalizeRow failed: %v", err)
	}
	second, err := n.NormalizeRow(row)
	if err != nil {
		t.Fatalf("NormalizeRow failed: %v", err)
	}
	if first != second {
		t.Errorf("NormalizeRow not idempotent: %+v vs %+v", first, second)
	}
}
