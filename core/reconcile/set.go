package reconcile

import "count-diff/core/upstream"

// MaterializedSet maps record keys to the first record seen with that key.
// It is owned by a single comparison and only written by its coordinator.
type MaterializedSet struct {
	// Records holds one record per normalized key.
	Records map[string]upstream.Record
	// DuplicateSample is the first record whose key was already present.
	DuplicateSample upstream.Record
	// Duplicates counts records dropped because their key was already present.
	Duplicates int
	// Skipped counts records without a usable link.
	Skipped int
	// PageSize is the page size the records were fetched with.
	PageSize int
	// PagesFetched counts pages that returned successfully.
	PagesFetched int
	// FailedPages lists pages that failed every retry.
	FailedPages []int
	// Attempts records each page size tried by the negotiator.
	Attempts []Attempt
	// Degraded is set when every candidate page size came back empty.
	Degraded bool
}

// Attempt summarizes one negotiation pass at a single page size.
type Attempt struct {
	PageSize int `json:"pageSize"`
	Pages    int `json:"pages"`
	Failed   int `json:"failed"`
	Records  int `json:"records"`
}

// pageResult is the immutable output of one page fetch inside a batch.
type pageResult struct {
	page    int
	records []upstream.Record
	err     error
}

// NewMaterializedSet creates an empty set.
func NewMaterializedSet(pageSize int) *MaterializedSet {
	return &MaterializedSet{
		Records:  make(map[string]upstream.Record),
		PageSize: pageSize,
	}
}

// Add inserts records by normalized key. Existing keys are never overwritten.
func (s *MaterializedSet) Add(records []upstream.Record) {
	for _, r := range records {
		link := r.Link()
		if link == "" {
			s.Skipped++
			continue
		}
		key := NormalizeKey(link)
		if _, exists := s.Records[key]; exists {
			s.Duplicates++
			if s.DuplicateSample == nil {
				s.DuplicateSample = r
			}
			continue
		}
		s.Records[key] = r
	}
}

// Len returns the number of distinct keys.
func (s *MaterializedSet) Len() int {
	return len(s.Records)
}

// ItemsSeen returns the number of linked records observed, duplicates included.
func (s *MaterializedSet) ItemsSeen() int {
	return len(s.Records) + s.Duplicates
}

// PagesRequested returns the number of pages asked for, failed ones included.
func (s *MaterializedSet) PagesRequested() int {
	return s.PagesFetched + len(s.FailedPages)
}

func (s *MaterializedSet) mergePage(r pageResult) {
	if r.err != nil {
		s.FailedPages = append(s.FailedPages, r.page)
		return
	}
	s.PagesFetched++
	s.Add(r.records)
}

func (s *MaterializedSet) merge(results []pageResult) {
	for _, r := range results {
		s.mergePage(r)
	}
}
