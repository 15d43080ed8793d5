package model

// SourceRole tags a tabular source with how its rows contribute to the inventory.
type SourceRole string

const (
	// RoleMaster defines the full catalogue; rows first seen here default to Sold.
	RoleMaster SourceRole = "master"
	// RoleVacancy lists currently sellable units; rows here become Available.
	RoleVacancy SourceRole = "vacancy"
	// RoleLegacy is the single-file fallback where every row defaults to Available.
	RoleLegacy SourceRole = "legacy"
)

// Source is one discovered tabular workbook.
type Source struct {
	Path string     `json:"path"`
	Role SourceRole `json:"role"`
}
