package upstream

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Kind selects one of the upstream listing services.
type Kind string

const (
	KindInsights Kind = "insights"
	KindPeople   Kind = "people"
	KindNews     Kind = "news"
)

// ErrUnknownKind is returned by ParseKind for unsupported service names.
var ErrUnknownKind = errors.New("unknown service")

type kindSpec struct {
	path    string
	field   string
	extract func(payload map[string]any, field string) []Record
	format  func(r Record) DisplayRecord
}

var kindTable = map[Kind]kindSpec{
	KindInsights: {
		path:    "/DentonsServices/DentonsInsightSearch.asmx/InsightSearchData",
		field:   "tabData",
		extract: extractWithLinkFallback,
		format:  formatContent,
	},
	KindPeople: {
		path:    "/DentonsServices/DentonsPeopleSearch.asmx/SearchResultData",
		field:   "persons",
		extract: extractField,
		format:  formatPerson,
	},
	KindNews: {
		path:    "/DentonsServices/DentonsNewsSearch.asmx/NewsSearchData",
		field:   "NewsData",
		extract: extractField,
		format:  formatContent,
	},
}

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindInsights, KindPeople, KindNews}
}

// ParseKind validates a service name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kindTable[k]
	return ok
}

// Path returns the listing endpoint path for the kind.
func (k Kind) Path() string {
	return kindTable[k].path
}

// Field returns the payload field holding the record array.
func (k Kind) Field() string {
	return kindTable[k].field
}

// Extract pulls the record array out of a decoded payload.
func (k Kind) Extract(payload map[string]any) []Record {
	spec, ok := kindTable[k]
	if !ok || payload == nil {
		return nil
	}
	return spec.extract(payload, spec.field)
}

// Format trims a record to the fields shown to operators.
func (k Kind) Format(r Record) DisplayRecord {
	spec, ok := kindTable[k]
	if !ok {
		return DisplayRecord{Link: r.Link()}
	}
	return spec.format(r)
}

func extractField(payload map[string]any, field string) []Record {
	return toRecords(payload[field])
}

// extractWithLinkFallback prefers the named field and otherwise takes the
// first array whose first element carries a link.
func extractWithLinkFallback(payload map[string]any, field string) []Record {
	if recs := toRecords(payload[field]); len(recs) > 0 {
		return recs
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		recs := toRecords(payload[key])
		if len(recs) > 0 && recs[0].Link() != "" {
			return recs
		}
	}
	return nil
}

func toRecords(v any) []Record {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

func formatContent(r Record) DisplayRecord {
	return DisplayRecord{
		Heading: r.Field("heading"),
		Date:    r.Field("date"),
		Link:    r.Link(),
	}
}

func formatPerson(r Record) DisplayRecord {
	return DisplayRecord{
		Name:     strings.TrimSpace(r.Field("firstName") + " " + r.Field("lastName")),
		JobTitle: r.Field("jobTitle"),
		Office:   r.Field("officeDetails"),
		Link:     r.Link(),
	}
}
