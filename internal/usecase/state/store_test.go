package state

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(t *testing.T) (*Store, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := NewStore(cache.NewMemoryStore(0, cache.WithClock(clock.Now)), 3*time.Second, nil)
	t.Cleanup(store.Close)
	return store, clock
}

func TestStore_ProcessLifecycle(t *testing.T) {
	store, _ := newTestStore(t)

	seq := store.Next(StreamProcess)
	store.Apply(ProcessStarted{Seq: seq, TargetLabel: "Meeting Processing Coordinator"})

	snap := store.Snapshot()
	assert.True(t, snap.Processing)
	assert.Equal(t, "Meeting Processing Coordinator", snap.ActiveTarget)

	record := &entities.AnalysisRecord{Summary: "S"}
	require.True(t, store.Apply(ProcessSucceeded{Seq: seq, Record: record}))

	snap = store.Snapshot()
	assert.False(t, snap.Processing)
	assert.Empty(t, snap.ActiveTarget)
	assert.Equal(t, record, snap.Analysis)
	assert.Empty(t, snap.ProcessError)
}

func TestStore_FailureKeepsActiveAnalysis(t *testing.T) {
	store, _ := newTestStore(t)

	seq := store.Next(StreamProcess)
	store.Apply(ProcessStarted{Seq: seq})
	store.Apply(ProcessSucceeded{Seq: seq, Record: &entities.AnalysisRecord{Summary: "first"}})

	seq = store.Next(StreamProcess)
	store.Apply(ProcessStarted{Seq: seq})
	store.Apply(ProcessFailed{Seq: seq, Message: "Network error during processing."})

	snap := store.Snapshot()
	assert.Equal(t, "first", snap.Analysis.Summary)
	assert.Equal(t, "Network error during processing.", snap.ProcessError)

	// next start clears the error
	seq = store.Next(StreamProcess)
	store.Apply(ProcessStarted{Seq: seq})
	assert.Empty(t, store.Snapshot().ProcessError)
}

func TestStore_FencesSupersededResults(t *testing.T) {
	store, _ := newTestStore(t)

	older := store.Next(StreamProcess)
	store.Apply(ProcessStarted{Seq: older, TargetLabel: "old"})
	newer := store.Next(StreamProcess)
	store.Apply(ProcessStarted{Seq: newer, TargetLabel: "new"})

	assert.Equal(t, "new", store.Snapshot().ActiveTarget)

	require.True(t, store.Apply(ProcessSucceeded{Seq: newer, Record: &entities.AnalysisRecord{Summary: "new"}}))
	assert.True(t, store.Snapshot().Processing, "older request still in flight")

	assert.False(t, store.Apply(ProcessSucceeded{Seq: older, Record: &entities.AnalysisRecord{Summary: "old"}}))
	assert.False(t, store.Apply(ProcessFailed{Seq: older, Message: "late failure"}))

	snap := store.Snapshot()
	assert.Equal(t, "new", snap.Analysis.Summary)
	assert.Empty(t, snap.ProcessError)
	assert.False(t, snap.Processing)
}

func TestStore_SearchLifecycle(t *testing.T) {
	store, _ := newTestStore(t)

	first := store.Next(StreamSearch)
	store.Apply(SearchStarted{Seq: first, Query: "budget"})
	store.Apply(SearchSucceeded{Seq: first, Results: &entities.SearchResultSet{
		Query:                "budget",
		SuggestedRefinements: []string{"budget Q3"},
	}})

	second := store.Next(StreamSearch)
	store.Apply(SearchStarted{Seq: second, Query: "hiring"})

	snap := store.Snapshot()
	assert.True(t, snap.Search.Searching)
	assert.Nil(t, snap.Search.Results, "starting a search clears previous results")
	assert.Equal(t, "hiring", snap.Search.Query)

	store.Apply(SearchFailed{Seq: second, Message: "Search failed. Please try again."})
	snap = store.Snapshot()
	assert.False(t, snap.Search.Searching)
	assert.Equal(t, "Search failed. Please try again.", snap.Search.Error)

	store.Apply(ErrorCleared{Kind: ErrorSearch})
	assert.Empty(t, store.Snapshot().Search.Error)

	store.Apply(QueryChanged{Query: "budget Q3"})
	assert.Equal(t, "budget Q3", store.Snapshot().Search.Query)
}

func TestStore_Documents(t *testing.T) {
	store, _ := newTestStore(t)

	store.Apply(DocumentsLoading{})
	assert.True(t, store.Snapshot().DocumentsLoading)

	store.Apply(DocumentsReloaded{OK: true, Documents: []entities.Document{
		{FileName: "a.pdf", Status: "ready"},
		{FileName: "b.pdf", Status: "ready"},
	}})
	store.Apply(DocumentRemoved{FileName: "a.pdf"})

	snap := store.Snapshot()
	assert.False(t, snap.DocumentsLoading)
	assert.Equal(t, []entities.Document{{FileName: "b.pdf", Status: "ready"}}, snap.Documents)

	// failed listing keeps the cache
	store.Apply(DocumentsLoading{})
	store.Apply(DocumentsReloaded{OK: false})
	assert.Len(t, store.Documents(), 1)
}

func TestStore_UploadMessagesExpire(t *testing.T) {
	store, clock := newTestStore(t)

	store.Apply(UploadStarted{Status: "Uploading..."})
	clock.Advance(time.Minute)
	assert.Equal(t, "Uploading...", store.Snapshot().UploadStatus, "in-flight status does not expire")

	store.Apply(UploadSucceeded{Status: "Upload successful. Document is being processed."})
	assert.Equal(t, "Upload successful. Document is being processed.", store.Snapshot().UploadStatus)

	clock.Advance(4 * time.Second)
	assert.Empty(t, store.Snapshot().UploadStatus)

	store.Apply(UploadFailed{Message: "Upload failed."})
	snap := store.Snapshot()
	assert.Equal(t, "Upload failed.", snap.UploadError)
	assert.Empty(t, snap.UploadStatus)

	clock.Advance(4 * time.Second)
	assert.Empty(t, store.Snapshot().UploadError)
}

func TestErrorKindValid(t *testing.T) {
	assert.True(t, ErrorProcess.Valid())
	assert.True(t, ErrorUpload.Valid())
	assert.False(t, ErrorKind("documents").Valid())
}
