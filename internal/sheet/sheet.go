// Package sheet holds the identity and record types shared by every store in
// the data layer.
package sheet

import (
	"fmt"
	"strings"
)

// Provenance tags where a sheet comes from. Remote sheets are reported as
// ProvenanceDefault to match the favorites wire format.
type Provenance string

const (
	ProvenanceCustom  Provenance = "custom"
	ProvenanceDefault Provenance = "default"
)

// FilterType narrows a merged list by provenance.
type FilterType string

const (
	FilterAll     FilterType = "all"
	FilterCustom  FilterType = "custom"
	FilterDefault FilterType = "default"
)

func ParseFilterType(s string) (FilterType, error) {
	switch FilterType(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterCustom:
		return FilterCustom, nil
	case FilterDefault:
		return FilterDefault, nil
	default:
		return "", fmt.Errorf("invalid type: %q. Valid options are all, custom and default", s)
	}
}

// Includes reports whether sheets of provenance p pass the filter.
func (f FilterType) Includes(p Provenance) bool {
	switch f {
	case FilterCustom:
		return p == ProvenanceCustom
	case FilterDefault:
		return p == ProvenanceDefault
	default:
		return true
	}
}

// MatchType records which field satisfied a search query.
type MatchType string

const (
	MatchTitle       MatchType = "title"
	MatchContent     MatchType = "content"
	MatchTag         MatchType = "tag"
	MatchDescription MatchType = "description"
)
