package pricing_test

import (
	"testing"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/service/pricing"
)

func TestQuote(t *testing.T) {
	res := pricing.Quote(100000, 10, 2000)
	if res.Net != 90000 {
		t.Errorf("Net = %v, want 90000", res.Net)
	}
	if res.Total != 92000 {
		t.Errorf("Total = %v, want 92000", res.Total)
	}
}

func TestQuoteFullDiscount(t *testing.T) {
	res := pricing.Quote(100000, 100, 2000)
	if res.Net != 0 {
		t.Errorf("Net = %v, want 0", res.Net)
	}
	if res.Total != 2000 {
		t.Errorf("Total = %v, want the fee alone", res.Total)
	}
}

func TestQuoteZeroBasePrice(t *testing.T) {
	// An unparsed price flows through unguarded: the quote is the fee.
	res := pricing.Quote(0, 25, 2000)
	if res.Net != 0 {
		t.Errorf("Net = %v, want 0", res.Net)
	}
	if res.Total != 2000 {
		t.Errorf("Total = %v, want 2000", res.Total)
	}
}

func TestNetNoDiscount(t *testing.T) {
	if got := pricing.Net(523500, 0); got != 523500 {
		t.Errorf("Net = %v, want 523500", got)
	}
}
