package dto

import "strings"

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Limit   int    `json:"limit"   validate:"omitempty,gte=0"`
	SortBy  string `json:"sortBy"  validate:"omitempty"`
	SortDir string `json:"sortDir" validate:"omitempty,oneof=ASC DESC"`
}

// SortedBy returns QueryParams ordering by column in the given direction.
// Column names are never taken from user input.
func SortedBy(column, dir string) QueryParams {
	return QueryParams{SortBy: column, SortDir: normalizeDir(dir)}
}

func normalizeDir(dir string) string {
	if strings.ToUpper(dir) == SortDirDesc {
		return SortDirDesc
	}

	return SortDirAsc
}
