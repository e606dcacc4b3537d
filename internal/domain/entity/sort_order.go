package entity

import "strings"

// SortOrder is the direction used when ordering employees by name
type SortOrder string

const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)

// ParseSortOrder accepts ASC or DESC in any case. An empty value means ascending.
func ParseSortOrder(value string) (SortOrder, bool) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "", string(SortAscending):
		return SortAscending, true
	case string(SortDescending):
		return SortDescending, true
	default:
		return "", false
	}
}

func (o SortOrder) Desc() bool {
	return o == SortDescending
}
