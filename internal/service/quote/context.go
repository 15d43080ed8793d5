// Package quote turns a resolved unit and a pricing result into a
// downloadable quote document.
package quote

import (
	"fmt"
	"strings"
	"time"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/model"
)

// BuildContext flattens a quote into the named fields the document
// template consumes. Money fields always use Western digits with comma
// grouping and two fraction digits: the rendered document is RTL text,
// but its numerals must not be localized.
func BuildContext(unit model.UnitRecord, res model.QuoteResult, customer string, now time.Time) map[string]string {
	return map[string]string{
		"date":  now.Format("2006/01/02"),
		"name":  customer,
		"id":    unit.ID,
		"blk":   unit.Block,
		"area":  unit.Area,
		"price": FormatMoney(res.Net),
		"fees":  FormatMoney(res.Fees),
		"total": FormatMoney(res.Total),
		"desc":  unit.Description(),
	}
}

// FormatMoney renders an amount as "1,234,567.89".
func FormatMoney(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
