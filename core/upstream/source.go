package upstream

import (
	"fmt"
	"strings"

	"count-diff/core/utils"
)

// Source identifies one listing endpoint on one server.
type Source struct {
	// Domain is the upstream host, e.g. www.dentons.com.
	Domain string
	// Kind selects the listing service.
	Kind Kind
	// Filter is the opaque data parameter, passed through unchanged.
	Filter string
}

// String renders the source for logs and error messages.
func (s Source) String() string {
	return s.Domain + "/" + string(s.Kind)
}

// CacheKey identifies the source and filter combination.
func (s Source) CacheKey() string {
	return s.Domain + "|" + string(s.Kind) + "|" + s.Filter
}

// PeopleFilter builds the colon-separated data parameter understood by the
// people search service.
type PeopleFilter struct {
	Keywords string
	Names    string
	Alpha    string
	// Page is embedded in the filter when positive.
	Page int
}

// Encode renders the filter as the upstream data parameter.
func (f PeopleFilter) Encode() string {
	parts := []string{"sectorid=", "practiceid=", "positionid=", "languageid=", "inpid=", "countryid="}
	if f.Keywords != "" {
		parts = append(parts, "Keywords="+f.Keywords)
	}
	if f.Names != "" {
		parts = append(parts, "NAMES="+f.Names)
	}
	if f.Alpha != "" {
		parts = append(parts, "ALPHA="+f.Alpha)
	}
	if f.Page > 0 {
		parts = append(parts, fmt.Sprintf("page=%d", f.Page))
	}
	return strings.Join(parts, ":")
}

// IsZero reports whether no search term is set.
func (f PeopleFilter) IsZero() bool {
	return f.Keywords == "" && f.Names == "" && f.Alpha == ""
}

// ResolveFilter returns the data parameter for a request. An explicit data
// value wins; otherwise people searches encode their terms.
func ResolveFilter(kind Kind, data string, people PeopleFilter) string {
	if kind != KindPeople || people.IsZero() {
		return data
	}
	return utils.FirstNonEmpty(data, people.Encode())
}
