package state

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-notes/pkg/metrics"
)

// Stream identifies a family of requests whose results replace each other
type Stream string

const (
	StreamProcess Stream = "process"
	StreamSearch  Stream = "search"
)

const (
	keyUploadStatus = "upload_status"
	keyUploadError  = "upload_error"
)

// DefaultFlashTTL is how long upload status and error messages stay visible
const DefaultFlashTTL = 3 * time.Second

// SearchView is the search part of the consumer surface
type SearchView struct {
	Query     string                    `json:"query"`
	Searching bool                      `json:"searching"`
	Results   *entities.SearchResultSet `json:"results,omitempty"`
	Error     string                    `json:"error,omitempty"`
}

// Snapshot is a point-in-time copy of everything a consumer renders
type Snapshot struct {
	Processing       bool                     `json:"processing"`
	ActiveTarget     string                   `json:"active_target,omitempty"`
	Analysis         *entities.AnalysisRecord `json:"analysis,omitempty"`
	ProcessError     string                   `json:"process_error,omitempty"`
	Search           SearchView               `json:"search"`
	Documents        []entities.Document      `json:"documents"`
	DocumentsLoading bool                     `json:"documents_loading"`
	UploadStatus     string                   `json:"upload_status,omitempty"`
	UploadError      string                   `json:"upload_error,omitempty"`
}

// Store holds application state. Operations describe changes as transition
// values; Apply executes them one at a time.
type Store struct {
	mu     sync.Mutex
	logger *zap.Logger

	counter uint64
	latest  map[Stream]uint64

	// in-flight requests per stream, seq -> target label
	inflight map[Stream]map[uint64]string

	analysis     *entities.AnalysisRecord
	processError string

	search SearchView

	documents        []entities.Document
	documentsLoading bool

	flash    *cache.MemoryStore
	flashTTL time.Duration
}

// NewStore creates an empty store. flash holds the expiring upload messages.
func NewStore(flash *cache.MemoryStore, flashTTL time.Duration, logger *zap.Logger) *Store {
	if flash == nil {
		flash = cache.NewMemoryStore(time.Minute)
	}
	if flashTTL <= 0 {
		flashTTL = DefaultFlashTTL
	}
	return &Store{
		logger:   logger,
		latest:   make(map[Stream]uint64),
		inflight: map[Stream]map[uint64]string{StreamProcess: {}, StreamSearch: {}},
		flash:    flash,
		flashTTL: flashTTL,
	}
}

// Next issues a new sequence number for the stream. Only results carrying the
// greatest number issued for their stream are applied.
func (s *Store) Next(stream Stream) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	s.latest[stream] = s.counter
	return s.counter
}

// Apply executes a transition. It returns false when the transition carried a
// superseded sequence number and its result was discarded.
func (s *Store) Apply(t Transition) bool {
	s.mu.Lock()
	applied := t.apply(s)
	s.mu.Unlock()

	if !applied {
		if f, ok := t.(fenced); ok {
			stream, seq := f.fence()
			metrics.RecordStaleResult(string(stream))
			if s.logger != nil {
				s.logger.Info("⏭️ Discarded superseded result",
					zap.String("stream", string(stream)),
					zap.Uint64("seq", seq),
				)
			}
		}
	}
	return applied
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Processing:       len(s.inflight[StreamProcess]) > 0,
		ActiveTarget:     s.activeTarget(),
		Analysis:         s.analysis,
		ProcessError:     s.processError,
		Search:           s.search,
		Documents:        append([]entities.Document(nil), s.documents...),
		DocumentsLoading: s.documentsLoading,
	}
	snap.Search.Searching = len(s.inflight[StreamSearch]) > 0
	if snap.Documents == nil {
		snap.Documents = []entities.Document{}
	}
	snap.UploadStatus, _ = s.flash.Get(keyUploadStatus)
	snap.UploadError, _ = s.flash.Get(keyUploadError)
	return snap
}

// Documents returns a copy of the cached corpus listing
func (s *Store) Documents() []entities.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entities.Document(nil), s.documents...)
}

// Close releases the flash store
func (s *Store) Close() {
	s.flash.Close()
}

func (s *Store) isLatest(stream Stream, seq uint64) bool {
	return s.latest[stream] == seq
}

// activeTarget is the label of the newest in-flight processing request
func (s *Store) activeTarget() string {
	pending := s.inflight[StreamProcess]
	if len(pending) == 0 {
		return ""
	}
	seqs := make([]uint64, 0, len(pending))
	for seq := range pending {
		seqs = append(seqs, seq)
	}
	sort.Slice(seqs, func(i, j int) bool { return seqs[i] > seqs[j] })
	return pending[seqs[0]]
}
