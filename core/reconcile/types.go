package reconcile

import (
	"encoding/json"

	"count-diff/core/upstream"
)

// Mode selects how pages are scanned once totals differ.
type Mode string

const (
	// ModeFull materializes both sources completely, then diffs once.
	ModeFull Mode = "full"
	// ModeIncremental diffs after every page and stops once the delta is explained.
	ModeIncremental Mode = "incremental"
)

// Status classifies a comparison outcome.
type Status string

const (
	StatusMatch       Status = "match"
	StatusExplained   Status = "explained"
	StatusDuplicate   Status = "duplicate"
	StatusUnexplained Status = "unexplained"
)

// Side names the source holding a duplicate listing.
type Side string

const (
	SideNone  Side = ""
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// MarshalJSON encodes SideNone as null.
func (s Side) MarshalJSON() ([]byte, error) {
	if s == SideNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON accepts null, "left" and "right".
func (s *Side) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = SideNone
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Side(v)
	return nil
}

// State is a step of a single comparison.
type State string

const (
	StateInit          State = "init"
	StateTotalsFetched State = "totals_fetched"
	StateMatched       State = "matched"
	StateScanning      State = "scanning"
	StateConverged     State = "converged"
	StateCapped        State = "capped"
	StateDone          State = "done"
)

// ProgressEvent is delivered to Options.Progress as a comparison advances.
type ProgressEvent struct {
	State        State
	Total1       int
	Total2       int
	PagesScanned int
	OnlyIn1      int
	OnlyIn2      int
}

// ProgressFunc receives progress events on the comparing goroutine.
type ProgressFunc func(ProgressEvent)

// Options tunes a single comparison. Zero values take the engine defaults.
type Options struct {
	Mode Mode
	// BatchSize is the page size used by incremental scans.
	BatchSize int
	// MaxPages caps the pages scanned per side by incremental scans.
	MaxPages int
	// Progress, if set, is called for every state change and scanned page.
	Progress ProgressFunc
}

// SideReport describes how one source was loaded.
type SideReport struct {
	// Source is the domain/kind being reported.
	Source string `json:"source"`
	// Total is the server-reported total.
	Total int `json:"total"`
	// Unique is the number of distinct keys materialized.
	Unique int `json:"unique"`
	// Duplicates is the number of records dropped as repeated keys.
	Duplicates int `json:"duplicates"`
	// PageSize is the page size that produced the records.
	PageSize int `json:"pageSize"`
	// FailedPages lists pages that failed every retry.
	FailedPages []int `json:"failedPages"`
	// Loaded is false when the source reported records but none could be listed.
	Loaded bool `json:"loaded"`
	// Attempts lists the page sizes tried, in order.
	Attempts []Attempt `json:"attempts,omitempty"`
}

// Result is the outcome of comparing two sources.
type Result struct {
	// Service is the kind that was compared.
	Service upstream.Kind `json:"service"`
	// Mode is the scanning strategy used.
	Mode Mode `json:"mode"`
	// Total1 is the total reported by the first source.
	Total1 int `json:"total1"`
	// Total2 is the total reported by the second source.
	Total2 int `json:"total2"`
	// Difference is Total1 - Total2.
	Difference int `json:"difference"`
	// OnlyIn1 lists records only the first source has, capped for display.
	OnlyIn1 []upstream.DisplayRecord `json:"onlyIn1"`
	// OnlyIn2 lists records only the second source has, capped for display.
	OnlyIn2 []upstream.DisplayRecord `json:"onlyIn2"`
	// OnlyIn1Count is the full number of records only the first source has.
	OnlyIn1Count int `json:"onlyIn1Count"`
	// OnlyIn2Count is the full number of records only the second source has.
	OnlyIn2Count int `json:"onlyIn2Count"`
	// DuplicateHint names the side whose total counts a duplicate listing.
	DuplicateHint Side `json:"duplicateHint"`
	// DuplicateSample is the repeated record backing DuplicateHint.
	DuplicateSample *upstream.DisplayRecord `json:"duplicateSample"`
	// PagesScanned counts page requests issued after the totals.
	PagesScanned int `json:"pagesScanned"`
	// ItemsScanned counts linked records observed on both sides.
	ItemsScanned int `json:"itemsScanned"`
	// Complete is false when the scan stopped at the page cap.
	Complete bool `json:"complete"`
	// Status classifies the outcome.
	Status Status `json:"status"`
	// Explanation is a short operator-facing summary.
	Explanation string `json:"explanation"`
	// Left reports how the first source was loaded.
	Left SideReport `json:"left"`
	// Right reports how the second source was loaded.
	Right SideReport `json:"right"`
}
