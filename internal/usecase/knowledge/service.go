package knowledge

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/gateways"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	"github.com/johnquangdev/meeting-notes/internal/usecase/state"
	"github.com/johnquangdev/meeting-notes/pkg/metrics"
)

// Upload status and error messages
const (
	StatusUploading     = "Uploading..."
	StatusUploaded      = "Upload successful. Document is being processed."
	MsgUploadFailed     = "Upload failed."
	MsgUploadNetworkErr = "Upload failed due to network error."
)

// Service defines the interface for the knowledge-base synchronizer
type Service interface {
	// List reloads the corpus listing into the cache. Failures are logged, not returned.
	List(ctx context.Context) []entities.Document
	// Cached returns the current cache without contacting the corpus
	Cached(ctx context.Context) []entities.Document
	// Upload sends exactly one file to the corpus
	Upload(ctx context.Context, files []*entities.DocumentFile) (*UploadOutput, error)
	// Delete removes a file from the corpus; the cache changes only on success
	Delete(ctx context.Context, fileName string) (bool, error)
}

// UploadOutput describes one upload attempt
type UploadOutput struct {
	Success bool
	Status  string
	Error   string
}

type knowledgeService struct {
	transport gateways.DocumentTransport
	corpusID  string
	store     *state.Store
	group     singleflight.Group
	logger    *zap.Logger

	// listings are numbered when they start; one that finishes after a newer
	// listing was applied is dropped
	mu          sync.Mutex
	listIssued  uint64
	listApplied uint64
}

// NewKnowledgeService creates the synchronizer for a fixed corpus
func NewKnowledgeService(transport gateways.DocumentTransport, corpusID string, store *state.Store, logger *zap.Logger) Service {
	return &knowledgeService{
		transport: transport,
		corpusID:  corpusID,
		store:     store,
		logger:    logger,
	}
}

// List replaces the cache with the corpus listing. Concurrent calls share one
// transport round trip, detached from any single caller's cancellation.
func (s *knowledgeService) List(ctx context.Context) []entities.Document {
	shared := context.WithoutCancel(ctx)
	v, _, _ := s.group.Do(s.corpusID, func() (interface{}, error) {
		s.reload(shared)
		return s.store.Documents(), nil
	})
	docs, _ := v.([]entities.Document)
	return docs
}

func (s *knowledgeService) reload(ctx context.Context) {
	s.mu.Lock()
	s.listIssued++
	seq := s.listIssued
	s.mu.Unlock()

	s.store.Apply(state.DocumentsLoading{})

	res, err := s.transport.ListDocuments(ctx, s.corpusID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.listApplied {
		metrics.RecordKnowledgeBaseOp("list", "superseded")
		if s.logger != nil {
			s.logger.Info("⏭️ Discarding superseded document listing",
				zap.String("corpus_id", s.corpusID),
				zap.Uint64("sequence", seq),
				zap.Uint64("applied", s.listApplied),
			)
		}
		return
	}
	s.listApplied = seq

	switch {
	case err != nil:
		metrics.RecordKnowledgeBaseOp("list", "error")
		if s.logger != nil {
			s.logger.Warn("⚠️ Failed to list documents", zap.String("corpus_id", s.corpusID), zap.Error(err))
		}
		s.store.Apply(state.DocumentsReloaded{OK: false})
	case res == nil || !res.Success || res.Documents == nil:
		metrics.RecordKnowledgeBaseOp("list", "failed")
		if s.logger != nil {
			reason := ""
			if res != nil {
				reason = res.Error
			}
			s.logger.Warn("⚠️ Document listing was not successful",
				zap.String("corpus_id", s.corpusID),
				zap.String("reason", reason),
			)
		}
		s.store.Apply(state.DocumentsReloaded{OK: false})
	default:
		metrics.RecordKnowledgeBaseOp("list", "success")
		s.store.Apply(state.DocumentsReloaded{OK: true, Documents: res.Documents})
	}
}

// Cached returns the cached listing
func (s *knowledgeService) Cached(ctx context.Context) []entities.Document {
	return s.store.Documents()
}

// Upload sends a single file. On reported success the cache is reloaded from
// the corpus rather than patched locally.
func (s *knowledgeService) Upload(ctx context.Context, files []*entities.DocumentFile) (*UploadOutput, error) {
	if len(files) != 1 || files[0] == nil || files[0].Content == nil {
		return nil, usecaseErrors.ErrNoFile
	}
	file := files[0]
	if strings.TrimSpace(file.Name) == "" {
		return nil, usecaseErrors.ErrEmptyFileName
	}

	s.store.Apply(state.UploadStarted{Status: StatusUploading})

	res, err := s.transport.Upload(ctx, s.corpusID, file)
	if err != nil {
		metrics.RecordKnowledgeBaseOp("upload", "error")
		if s.logger != nil {
			s.logger.Error("❌ Document upload failed",
				zap.String("file_name", file.Name),
				zap.Error(err),
			)
		}
		s.store.Apply(state.UploadFailed{Message: MsgUploadNetworkErr})
		return &UploadOutput{Error: MsgUploadNetworkErr}, nil
	}

	if res == nil || !res.Success {
		msg := MsgUploadFailed
		if res != nil && res.Error != "" {
			msg = res.Error
		}
		metrics.RecordKnowledgeBaseOp("upload", "failed")
		s.store.Apply(state.UploadFailed{Message: msg})
		return &UploadOutput{Error: msg}, nil
	}

	metrics.RecordKnowledgeBaseOp("upload", "success")
	s.store.Apply(state.UploadSucceeded{Status: StatusUploaded})
	if s.logger != nil {
		s.logger.Info("📚 Document uploaded",
			zap.String("file_name", file.Name),
			zap.Int64("size", file.Size),
		)
	}

	// a listing already in flight may predate the upload, so the resync gets
	// its own round trip
	s.group.Forget(s.corpusID)
	s.reload(ctx)
	return &UploadOutput{Success: true, Status: StatusUploaded}, nil
}

// Delete removes fileName from the corpus. A confirmed delete drops it from the
// cache without reloading; anything else leaves the cache as it was.
func (s *knowledgeService) Delete(ctx context.Context, fileName string) (bool, error) {
	if strings.TrimSpace(fileName) == "" {
		return false, usecaseErrors.ErrEmptyFileName
	}

	res, err := s.transport.Delete(ctx, s.corpusID, []string{fileName})
	if err != nil || res == nil || !res.Success {
		status := "failed"
		if err != nil {
			status = "error"
		}
		metrics.RecordKnowledgeBaseOp("delete", status)
		if s.logger != nil {
			s.logger.Warn("⚠️ Document delete was not applied",
				zap.String("file_name", fileName),
				zap.Error(err),
			)
		}
		return false, nil
	}

	metrics.RecordKnowledgeBaseOp("delete", "success")
	s.store.Apply(state.DocumentRemoved{FileName: fileName})
	return true, nil
}
