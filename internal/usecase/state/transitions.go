package state

import (
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// Transition is a state change produced by an operation
type Transition interface {
	apply(s *Store) bool
}

// fenced transitions carry a sequence number and are dropped when superseded
type fenced interface {
	fence() (Stream, uint64)
}

// ProcessStarted marks a processing request as in flight and clears the previous error
type ProcessStarted struct {
	Seq         uint64
	TargetLabel string
}

func (t ProcessStarted) apply(s *Store) bool {
	s.inflight[StreamProcess][t.Seq] = t.TargetLabel
	if s.isLatest(StreamProcess, t.Seq) {
		s.processError = ""
	}
	return true
}

// ProcessSucceeded publishes a normalized analysis record
type ProcessSucceeded struct {
	Seq    uint64
	Record *entities.AnalysisRecord
}

func (t ProcessSucceeded) apply(s *Store) bool {
	delete(s.inflight[StreamProcess], t.Seq)
	if !s.isLatest(StreamProcess, t.Seq) {
		return false
	}
	s.analysis = t.Record
	s.processError = ""
	return true
}

func (t ProcessSucceeded) fence() (Stream, uint64) { return StreamProcess, t.Seq }

// ProcessFailed surfaces a processing error; the active analysis is kept
type ProcessFailed struct {
	Seq     uint64
	Message string
}

func (t ProcessFailed) apply(s *Store) bool {
	delete(s.inflight[StreamProcess], t.Seq)
	if !s.isLatest(StreamProcess, t.Seq) {
		return false
	}
	s.processError = t.Message
	return true
}

func (t ProcessFailed) fence() (Stream, uint64) { return StreamProcess, t.Seq }

// SearchStarted clears the previous results and error
type SearchStarted struct {
	Seq   uint64
	Query string
}

func (t SearchStarted) apply(s *Store) bool {
	s.inflight[StreamSearch][t.Seq] = t.Query
	if s.isLatest(StreamSearch, t.Seq) {
		s.search.Query = t.Query
		s.search.Results = nil
		s.search.Error = ""
	}
	return true
}

// SearchSucceeded replaces the result set wholesale
type SearchSucceeded struct {
	Seq     uint64
	Results *entities.SearchResultSet
}

func (t SearchSucceeded) apply(s *Store) bool {
	delete(s.inflight[StreamSearch], t.Seq)
	if !s.isLatest(StreamSearch, t.Seq) {
		return false
	}
	s.search.Results = t.Results
	s.search.Error = ""
	return true
}

func (t SearchSucceeded) fence() (Stream, uint64) { return StreamSearch, t.Seq }

// SearchFailed surfaces a search error
type SearchFailed struct {
	Seq     uint64
	Message string
}

func (t SearchFailed) apply(s *Store) bool {
	delete(s.inflight[StreamSearch], t.Seq)
	if !s.isLatest(StreamSearch, t.Seq) {
		return false
	}
	s.search.Error = t.Message
	return true
}

func (t SearchFailed) fence() (Stream, uint64) { return StreamSearch, t.Seq }

// QueryChanged sets the search input without searching
type QueryChanged struct {
	Query string
}

func (t QueryChanged) apply(s *Store) bool {
	s.search.Query = t.Query
	return true
}

// DocumentsLoading marks a corpus listing as in flight
type DocumentsLoading struct{}

func (DocumentsLoading) apply(s *Store) bool {
	s.documentsLoading = true
	return true
}

// DocumentsReloaded ends a listing. With OK set the cache is replaced wholesale;
// otherwise it is left as it was.
type DocumentsReloaded struct {
	OK        bool
	Documents []entities.Document
}

func (t DocumentsReloaded) apply(s *Store) bool {
	s.documentsLoading = false
	if t.OK {
		s.documents = append([]entities.Document(nil), t.Documents...)
	}
	return true
}

// DocumentRemoved drops a file from the cache after a confirmed delete
type DocumentRemoved struct {
	FileName string
}

func (t DocumentRemoved) apply(s *Store) bool {
	kept := s.documents[:0:0]
	for _, d := range s.documents {
		if d.FileName != t.FileName {
			kept = append(kept, d)
		}
	}
	s.documents = kept
	return true
}

// UploadStarted shows the in-progress status until the upload completes
type UploadStarted struct {
	Status string
}

func (t UploadStarted) apply(s *Store) bool {
	s.flash.Delete(keyUploadError)
	s.flash.Set(keyUploadStatus, t.Status, 0)
	return true
}

// UploadSucceeded shows a success status for the display window
type UploadSucceeded struct {
	Status string
}

func (t UploadSucceeded) apply(s *Store) bool {
	s.flash.Delete(keyUploadError)
	s.flash.Set(keyUploadStatus, t.Status, s.flashTTL)
	return true
}

// UploadFailed shows an error for the display window
type UploadFailed struct {
	Message string
}

func (t UploadFailed) apply(s *Store) bool {
	s.flash.Delete(keyUploadStatus)
	s.flash.Set(keyUploadError, t.Message, s.flashTTL)
	return true
}

// ErrorKind names a dismissable error slot
type ErrorKind string

const (
	ErrorProcess ErrorKind = "process"
	ErrorSearch  ErrorKind = "search"
	ErrorUpload  ErrorKind = "upload"
)

// Valid reports whether k names a known error slot
func (k ErrorKind) Valid() bool {
	switch k {
	case ErrorProcess, ErrorSearch, ErrorUpload:
		return true
	}
	return false
}

// ErrorCleared dismisses one error slot
type ErrorCleared struct {
	Kind ErrorKind
}

func (t ErrorCleared) apply(s *Store) bool {
	switch t.Kind {
	case ErrorProcess:
		s.processError = ""
	case ErrorSearch:
		s.search.Error = ""
	case ErrorUpload:
		s.flash.Delete(keyUploadError)
	}
	return true
}
