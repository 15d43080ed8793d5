package excel

// ColumnSchema maps positional columns in a source workbook to unit fields.
// The sales workbooks carry no reliable headers, so the mapping is by fixed
// column offsets; this type is the single place that convention lives.
type ColumnSchema struct {
	IDCol    int
	BlockCol int
	AreaCol  int
	PriceCol int
}

// DefaultSchema is the layout used by every observed sales workbook:
// column A holds the unit id, B the block, E the area and G the price.
func DefaultSchema() ColumnSchema {
	return ColumnSchema{
		IDCol:    0,
		BlockCol: 1,
		AreaCol:  4,
		PriceCol: 6,
	}
}
