package upstream

import (
	"strings"

	"count-diff/core/utils"
)

// Record is one listing item. Only the link field is guaranteed.
type Record map[string]any

// Link returns the record's locator, or "" when it has none.
func (r Record) Link() string {
	return strings.TrimSpace(r.Field("link"))
}

// Field returns a display field as a string.
func (r Record) Field(name string) string {
	return utils.ToString(r[name])
}

// DisplayRecord is the trimmed view of a record returned to callers.
type DisplayRecord struct {
	Heading  string `json:"heading,omitempty"`
	Date     string `json:"date,omitempty"`
	Name     string `json:"name,omitempty"`
	JobTitle string `json:"jobTitle,omitempty"`
	Office   string `json:"office,omitempty"`
	Link     string `json:"link"`
}

// Page is one decoded listing response.
type Page struct {
	// Total is the server-reported total for the source and filter.
	Total int `json:"totalResult"`
	// Records holds up to pageSize records; servers may return fewer.
	Records []Record `json:"records"`
}
