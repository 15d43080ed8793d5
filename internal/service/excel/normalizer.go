package excel

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/model"
)

// ErrNoID marks a row without a usable unit id. Such rows are filtered
// out by the builder, they are not reported as parse failures.
var ErrNoID = errors.New("row has no unit id")

var digitRun = regexp.MustCompile(`\d+`)

// Normalizer turns raw workbook rows into UnitRecord fragments
// according to a positional column schema.
type Normalizer struct {
	schema ColumnSchema
}

// NewNormalizer creates a normalizer for the given schema.
func NewNormalizer(schema ColumnSchema) *Normalizer {
	return &Normalizer{schema: schema}
}

// NormalizeRow extracts id, block, area and price from one raw row.
// The returned record carries no status; the inventory builder assigns
// it from the source role.
//
// Rules preserved from the sales workbooks:
//   - the id is trimmed; an empty id returns ErrNoID
//   - block and area pass through untouched as display strings
//   - the price is the concatenation of every digit run in the cell,
//     parsed as a whole number of currency units; decimal points and
//     separators are discarded, so "12,500.00" parses as 1250000
//   - short rows or an absent price cell yield price 0.0
func (n *Normalizer) NormalizeRow(row []string) (model.UnitRecord, error) {
	id := strings.TrimSpace(cellAt(row, n.schema.IDCol))
	if id == "" {
		return model.UnitRecord{}, ErrNoID
	}

	return model.UnitRecord{
		ID:    id,
		Block: cellAt(row, n.schema.BlockCol),
		Area:  cellAt(row, n.schema.AreaCol),
		Price: parsePrice(cellAt(row, n.schema.PriceCol)),
	}, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parsePrice joins every digit run in the raw cell and parses the result.
// Anything without digits is worth 0.
func parsePrice(raw string) float64 {
	digits := strings.Join(digitRun.FindAllString(raw, -1), "")
	if digits == "" {
		return 0.0
	}
	price, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0.0
	}
	return price
}
