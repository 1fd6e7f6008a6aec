package query

import "strings"

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Sort is a validated ordering request. Field is always one of the
// resource's allowed fields.
type Sort struct {
	Field     string
	Direction Direction
}

// SortFields maps accepted sort values (including legacy aliases) to
// canonical field names.
type SortFields map[string]string

// ParseSort resolves a requested field against the allow-list, silently
// falling back to fallback, and accepts asc/desc in any case.
func ParseSort(field, direction string, allowed SortFields, fallback string) Sort {
	s := Sort{Field: fallback, Direction: Asc}

	if canonical, ok := allowed[strings.TrimSpace(field)]; ok {
		s.Field = canonical
	}
	if strings.EqualFold(strings.TrimSpace(direction), "desc") {
		s.Direction = Desc
	}
	return s
}
