package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/domain/gateways"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/jobcontext"
)

// DocumentStatusReady is reported for every stored object
const DocumentStatusReady = "ready"

// MinIOClient keeps a knowledge-base corpus in a bucket. A corpus id is an
// object prefix; each file is one object under it.
type MinIOClient struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

var _ gateways.DocumentTransport = (*MinIOClient)(nil)

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists
func NewMinIOClient(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client: minioClient,
		bucket: cfg.BucketName,
		logger: logger,
	}

	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the bucket if missing. MinIO often comes up after the
// API in compose setups, so transient failures are retried.
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	ensureFn := func() error {
		exists, err := m.client.BucketExists(ctx, m.bucket)
		if err != nil {
			if jobcontext.IsRetryableError(err) {
				if m.logger != nil {
					m.logger.Warn("⏳ MinIO not ready, retrying", zap.Error(err))
				}
				return err
			}
			return backoff.Permanent(fmt.Errorf("failed to check bucket existence: %w", err))
		}
		if exists {
			return nil
		}

		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create bucket: %w", err))
		}
		if m.logger != nil {
			m.logger.Info("🪣 Created knowledge-base bucket", zap.String("bucket", m.bucket))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	return backoff.Retry(ensureFn, backoff.WithContext(bo, ctx))
}

// ListDocuments lists the objects directly under the corpus prefix. Upload and
// Delete address objects by base name, so nested keys are not documents.
func (m *MinIOClient) ListDocuments(ctx context.Context, corpusID string) (*entities.DocumentListResult, error) {
	prefix := corpusPrefix(corpusID)
	documents := make([]entities.Document, 0)

	objectCh := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("error listing objects: %w", object.Err)
		}
		name := fileNameFromKey(prefix, object.Key)
		if name == "" {
			continue
		}
		documents = append(documents, entities.Document{FileName: name, Status: DocumentStatusReady})
	}

	return &entities.DocumentListResult{Success: true, Documents: documents}, nil
}

// Upload stores the file under the corpus prefix. Store-side rejections are
// reported failures; transport problems are errors.
func (m *MinIOClient) Upload(ctx context.Context, corpusID string, file *entities.DocumentFile) (*entities.DocumentOpResult, error) {
	key, err := objectName(corpusID, file.Name)
	if err != nil {
		return &entities.DocumentOpResult{Success: false, Error: err.Error()}, nil
	}

	size := file.Size
	if size <= 0 {
		size = -1
	}
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = m.client.PutObject(ctx, m.bucket, key, file.Content, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return reportOrFail(err)
	}

	if m.logger != nil {
		m.logger.Info("📤 Stored knowledge-base document",
			zap.String("corpus_id", corpusID),
			zap.String("file_name", file.Name),
		)
	}
	return &entities.DocumentOpResult{Success: true}, nil
}

// Delete removes the named objects. Missing objects are not an error for S3.
func (m *MinIOClient) Delete(ctx context.Context, corpusID string, fileNames []string) (*entities.DocumentOpResult, error) {
	for _, name := range fileNames {
		key, err := objectName(corpusID, name)
		if err != nil {
			return &entities.DocumentOpResult{Success: false, Error: err.Error()}, nil
		}
		if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
			return reportOrFail(err)
		}
	}
	return &entities.DocumentOpResult{Success: true}, nil
}

// reportOrFail maps S3 error responses to reported failures
func reportOrFail(err error) (*entities.DocumentOpResult, error) {
	resp := minio.ToErrorResponse(err)
	if resp.Code != "" {
		msg := resp.Message
		if msg == "" {
			msg = resp.Code
		}
		return &entities.DocumentOpResult{Success: false, Error: msg}, nil
	}
	return nil, err
}

func corpusPrefix(corpusID string) string {
	return strings.Trim(corpusID, "/") + "/"
}

func objectName(corpusID, fileName string) (string, error) {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == "" || base == ".." {
		return "", fmt.Errorf("invalid file name %q", fileName)
	}
	return corpusPrefix(corpusID) + base, nil
}

func fileNameFromKey(prefix, key string) string {
	name := strings.TrimPrefix(key, prefix)
	if name == "" || strings.Contains(name, "/") {
		return ""
	}
	return name
}
