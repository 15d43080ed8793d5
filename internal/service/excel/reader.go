package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadRows opens the workbook at path and returns the data rows of every
// sheet in order. The first row of each sheet is treated as a header and
// skipped, matching the layout of the sales workbooks.
func ReadRows(path string) ([][]string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer file.Close()

	return collectRows(file)
}

// ReadRowsFrom reads data rows from an already-open stream, for callers
// that hold the workbook in memory.
func ReadRowsFrom(reader io.Reader) ([][]string, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()

	return collectRows(file)
}

func collectRows(file *excelize.File) ([][]string, error) {
	var result [][]string
	for _, sheet := range file.GetSheetList() {
		rows, err := file.GetRows(sheet)
		if err != nil {
			continue
		}
		if len(rows) <= 1 {
			continue
		}
		result = append(result, rows[1:]...)
	}
	return result, nil
}
