package gateways

import (
	"context"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// DocumentTransport talks to the remote knowledge-base corpus
type DocumentTransport interface {
	ListDocuments(ctx context.Context, corpusID string) (*entities.DocumentListResult, error)
	Upload(ctx context.Context, corpusID string, file *entities.DocumentFile) (*entities.DocumentOpResult, error)
	Delete(ctx context.Context, corpusID string, fileNames []string) (*entities.DocumentOpResult, error)
}
