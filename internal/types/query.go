//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// SortKey selects the field a view is ordered by.
type SortKey string

// Supported sort keys. SortNone preserves source order.
const (
	SortNone     SortKey = ""
	SortTitle    SortKey = "title"
	SortLocation SortKey = "location"
	SortCompany  SortKey = "company"
)

// ParseSortKey maps a user-supplied key onto a SortKey.
// Anything unrecognized, including the empty string, is SortNone.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortTitle, SortLocation, SortCompany:
		return k
	default:
		return SortNone
	}
}

// Query holds the active filter and sort parameters of the job browser.
type Query struct {
	Search   string  `json:"search,omitempty"`   // Matched against title and company
	Location string  `json:"location,omitempty"` // Matched against location
	Sort     SortKey `json:"sort,omitempty"`
}

// IsZero reports whether the query neither filters nor sorts.
func (q Query) IsZero() bool {
	return q.Search == "" && q.Location == "" && ParseSortKey(string(q.Sort)) == SortNone
}

// DerivedView is the result of applying a Query to a catalog.
// Applied distinguishes "nothing matched" from "no query yet".
type DerivedView struct {
	Jobs    []Job `json:"jobs"`
	Count   int   `json:"count"`
	Applied bool  `json:"applied"`
	Query   Query `json:"query"`
}
