package model

import (
	"fmt"
	"strings"
)

// Status is the sale status of a unit.
type Status string

const (
	StatusAvailable Status = "available"
	StatusReserved  Status = "reserved"
	StatusSold      Status = "sold"
)

// ParseStatus maps a raw status string to a Status.
// Matching is case-insensitive and whitespace-tolerant.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "available":
		return StatusAvailable, nil
	case "reserved":
		return StatusReserved, nil
	case "sold":
		return StatusSold, nil
	}
	return "", fmt.Errorf("unknown status %q", raw)
}

// UnitRecord is one sellable parcel as resolved from the tabular sources.
// Records are immutable once built into an inventory snapshot.
type UnitRecord struct {
	ID     string  `json:"id"`
	Block  string  `json:"block"` // display string, not validated
	Area   string  `json:"area"`  // display string, unit m²
	Price  float64 `json:"price"` // base price in currency units
	Status Status  `json:"status"`
}

// Description is the one-line summary embedded in quote documents.
func (u *UnitRecord) Description() string {
	return fmt.Sprintf("unit %s in block %s with area %s m²", u.ID, u.Block, u.Area)
}
