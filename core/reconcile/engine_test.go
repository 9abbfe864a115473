package reconcile

import (
	"context"
	"testing"

	"count-diff/core/upstream"
	"count-diff/core/upstream/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	leftSrc  = upstream.Source{Domain: "a.example", Kind: upstream.KindNews}
	rightSrc = upstream.Source{Domain: "b.example", Kind: upstream.KindNews}
)

// TestCompare_ZeroDelta tests that equal totals return a match after only the two totals calls.
func TestCompare_ZeroDelta(t *testing.T) {
	for _, mode := range []Mode{ModeFull, ModeIncremental} {
		t.Run(string(mode), func(t *testing.T) {
			f := new(mocks.Fetcher)
			f.On("Fetch", mock.Anything, leftSrc, 1, 1).Return(&upstream.Page{Total: 4200}, nil).Once()
			f.On("Fetch", mock.Anything, rightSrc, 1, 1).Return(&upstream.Page{Total: 4200}, nil).Once()

			res, err := NewEngine(f, testConfig(), nil).Compare(context.Background(), leftSrc, rightSrc, Options{Mode: mode})
			require.NoError(t, err)

			assert.Equal(t, 0, res.Difference)
			assert.Empty(t, res.OnlyIn1)
			assert.Empty(t, res.OnlyIn2)
			assert.NotNil(t, res.OnlyIn1)
			assert.True(t, res.Complete)
			assert.Equal(t, 0, res.PagesScanned)
			assert.Equal(t, StatusMatch, res.Status)
			f.AssertExpectations(t)
			f.AssertNumberOfCalls(t, "Fetch", 2)
		})
	}
}

// TestCompare_DuplicateClassification tests that 101 listings over 100 unique keys are blamed on the left side.
func TestCompare_DuplicateClassification(t *testing.T) {
	f := newFakeFetcher(map[string]*dataset{
		"a.example": {links: append(paths("/p", 1, 100), "/p/50")},
		"b.example": {links: paths("/p", 1, 100)},
	})

	res, err := NewEngine(f, testConfig(), nil).Compare(context.Background(), leftSrc, rightSrc, Options{})
	require.NoError(t, err)

	assert.Equal(t, 101, res.Total1)
	assert.Equal(t, 100, res.Total2)
	assert.Equal(t, 1, res.Difference)
	assert.Empty(t, res.OnlyIn1)
	assert.Empty(t, res.OnlyIn2)
	assert.Equal(t, SideLeft, res.DuplicateHint)
	require.NotNil(t, res.DuplicateSample)
	assert.Equal(t, "https://a.example/p/50", res.DuplicateSample.Link)
	assert.Equal(t, StatusDuplicate, res.Status)
	assert.True(t, res.Complete)
	assert.Equal(t, 1, res.Left.Duplicates)
}

// TestCompare_TrueGap tests that a record missing on the right is reported.
func TestCompare_TrueGap(t *testing.T) {
	f := newFakeFetcher(map[string]*dataset{
		"a.example": {links: paths("/k", 1, 10)},
		"b.example": {links: paths("/k", 1, 9)},
	})

	var states []State
	opts := Options{Progress: func(ev ProgressEvent) { states = append(states, ev.State) }}

	res, err := NewEngine(f, testConfig(), nil).Compare(context.Background(), leftSrc, rightSrc, opts)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Difference)
	require.Len(t, res.OnlyIn1, 1)
	assert.Equal(t, "https://a.example/k/10", res.OnlyIn1[0].Link)
	assert.Equal(t, "Item /k/10", res.OnlyIn1[0].Heading)
	assert.Empty(t, res.OnlyIn2)
	assert.Equal(t, SideNone, res.DuplicateHint)
	assert.Equal(t, StatusExplained, res.Status)
	assert.Equal(t, 2, res.PagesScanned)
	assert.Equal(t, 19, res.ItemsScanned)
	assert.Equal(t, []State{StateInit, StateTotalsFetched, StateScanning, StateConverged, StateDone}, states)
}

// TestCompare_IncrementalEarlyExit tests that the scan stops on the page that explains the delta.
func TestCompare_IncrementalEarlyExit(t *testing.T) {
	page1 := paths("/c", 1, 10)
	page2 := paths("/c", 11, 20)
	f := newFakeFetcher(map[string]*dataset{
		"a.example": {pages: [][]string{append(page1, "/extra"), page2, paths("/c", 21, 30)}, total: 31},
		"b.example": {pages: [][]string{page1, page2, paths("/c", 21, 30)}, total: 30},
	})

	res, err := NewEngine(f, testConfig(), nil).Compare(context.Background(), leftSrc, rightSrc,
		Options{Mode: ModeIncremental, BatchSize: 11})
	require.NoError(t, err)

	assert.Equal(t, 1, res.PagesScanned)
	assert.True(t, res.Complete)
	require.Len(t, res.OnlyIn1, 1)
	assert.Equal(t, "https://a.example/extra", res.OnlyIn1[0].Link)
	assert.Empty(t, res.OnlyIn2)
	assert.Equal(t, StatusExplained, res.Status)
}

// TestCompare_IncrementalCap tests that a non-converging scan stops at MaxPages.
func TestCompare_IncrementalCap(t *testing.T) {
	f := newFakeFetcher(map[string]*dataset{
		"a.example": {links: append(paths("/p", 1, 50), "/late")},
		"b.example": {links: paths("/p", 1, 50)},
	})

	var last ProgressEvent
	res, err := NewEngine(f, testConfig(), nil).Compare(context.Background(), leftSrc, rightSrc,
		Options{Mode: ModeIncremental, BatchSize: 10, MaxPages: 3, Progress: func(ev ProgressEvent) {
			if ev.State == StateCapped {
				last = ev
			}
		}})
	require.NoError(t, err)

	assert.Equal(t, 3, res.PagesScanned)
	assert.False(t, res.Complete)
	assert.Equal(t, SideNone, res.DuplicateHint)
	assert.Equal(t, StatusUnexplained, res.Status)
	assert.Contains(t, res.Explanation, "scan stopped after 3 pages")
	assert.Equal(t, StateCapped, last.State)
	assert.LessOrEqual(t, f.callsFor("a.example", 4), 0)
}

// TestCompare_IncrementalCapsCallerLimits tests that batch size and page cap are clamped.
func TestCompare_IncrementalCapsCallerLimits(t *testing.T) {
	cfg := testConfig()
	opts := cfg.resolve(Options{BatchSize: 5000, MaxPages: 9000})

	assert.Equal(t, ModeFull, opts.Mode)
	assert.Equal(t, cfg.MaxBatchSize, opts.BatchSize)
	assert.Equal(t, cfg.MaxPagesLimit, opts.MaxPages)
}

// TestCompare_TotalsError tests that a failed totals fetch aborts the comparison.
func TestCompare_TotalsError(t *testing.T) {
	f := newFakeFetcher(map[string]*dataset{
		"a.example": {links: paths("/p", 1, 3)},
		"b.example": {links: paths("/p", 1, 3), failTotals: true},
	})

	res, err := NewEngine(f, testConfig(), nil).Compare(context.Background(), leftSrc, rightSrc, Options{})

	assert.Nil(t, res)
	var te *TotalsError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "b.example/news", te.Source)
	var fe *upstream.FetchError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, 0, f.contentCalls())
}

// TestCompare_UnloadableSide tests that a source listing nothing at any page size is flagged.
func TestCompare_UnloadableSide(t *testing.T) {
	f := newFakeFetcher(map[string]*dataset{
		"a.example": {links: paths("/p", 1, 5), emptySizes: map[int]bool{100: true, 50: true, 20: true}},
		"b.example": {links: paths("/p", 1, 4)},
	})

	res, err := NewEngine(f, testConfig(), nil).Compare(context.Background(), leftSrc, rightSrc, Options{})
	require.NoError(t, err)

	assert.False(t, res.Left.Loaded)
	assert.True(t, res.Right.Loaded)
	assert.Len(t, res.OnlyIn2, 4)
	assert.Contains(t, res.Explanation, "items could not be loaded from a.example/news")
}

// TestCompare_NeitherSideLoaded tests that two empty scans never claim a duplicate listing.
func TestCompare_NeitherSideLoaded(t *testing.T) {
	empty := map[int]bool{100: true, 50: true, 20: true}
	f := newFakeFetcher(map[string]*dataset{
		"a.example": {total: 30, emptySizes: empty},
		"b.example": {total: 20, emptySizes: empty},
	})

	res, err := NewEngine(f, testConfig(), nil).Compare(context.Background(), leftSrc, rightSrc, Options{})
	require.NoError(t, err)

	assert.False(t, res.Left.Loaded)
	assert.False(t, res.Right.Loaded)
	assert.Equal(t, StatusUnexplained, res.Status)
	assert.Equal(t, SideNone, res.DuplicateHint)
	assert.Nil(t, res.DuplicateSample)
	assert.NotContains(t, res.Explanation, "duplicate")
	assert.Contains(t, res.Explanation, "items could not be loaded from b.example/news")
}

// TestCompare_DisplayLimit tests that display lists are capped while counts stay complete.
func TestCompare_DisplayLimit(t *testing.T) {
	f := newFakeFetcher(map[string]*dataset{
		"a.example": {links: paths("/p", 1, 10)},
		"b.example": {},
	})
	cfg := testConfig()
	cfg.DisplayLimit = 2

	res, err := NewEngine(f, cfg, nil).Compare(context.Background(), leftSrc, rightSrc, Options{})
	require.NoError(t, err)

	assert.Equal(t, 10, res.Difference)
	assert.Equal(t, 10, res.OnlyIn1Count)
	assert.Len(t, res.OnlyIn1, 2)
	assert.True(t, res.Right.Loaded)
	assert.Equal(t, StatusExplained, res.Status)
}

// TestCompare_KindMismatch tests that sources of different kinds are rejected.
func TestCompare_KindMismatch(t *testing.T) {
	f := new(mocks.Fetcher)
	other := upstream.Source{Domain: "b.example", Kind: upstream.KindPeople}

	_, err := NewEngine(f, testConfig(), nil).Compare(context.Background(), leftSrc, other, Options{})

	assert.ErrorIs(t, err, ErrKindMismatch)
	f.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
