package handler

import (
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	dtodocument "github.com/johnquangdev/meeting-notes/internal/adapter/dto/document"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/usecase/knowledge"
)

// maxUploadMemory is the multipart memory budget before spilling to disk
const maxUploadMemory = 32 << 20

// Document handles knowledge-base document endpoints
type Document struct {
	svc    knowledge.Service
	logger *zap.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(svc knowledge.Service, logger *zap.Logger) *Document {
	return &Document{svc: svc, logger: logger}
}

// ListDocuments returns the cached corpus listing
// @Summary      List documents
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=dtodocument.DocumentListResponse}
// @Router       /documents [get]
func (h *Document) ListDocuments(c echo.Context) error {
	return HandleSuccess(h.logger, c, presenter.ToDocumentListResponse(h.svc.Cached(c.Request().Context())))
}

// RefreshDocuments reloads the listing from the corpus
// @Summary      Refresh documents
// @Description  Reloads the listing. A failed reload keeps the previous listing.
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=dtodocument.DocumentListResponse}
// @Router       /documents/refresh [post]
func (h *Document) RefreshDocuments(c echo.Context) error {
	return HandleSuccess(h.logger, c, presenter.ToDocumentListResponse(h.svc.List(c.Request().Context())))
}

// UploadDocument adds one file to the corpus
// @Summary      Upload document
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Document"
// @Success      200   {object}  common.SuccessResponse{data=dtodocument.UploadResponse}
// @Failure      400   {object}  common.ErrorResponse
// @Failure      500   {object}  common.ErrorResponse
// @Failure      502   {object}  common.ErrorResponse
// @Router       /documents [post]
func (h *Document) UploadDocument(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrKBInvalidFile("multipart form with a file is required"))
	}
	defer form.RemoveAll()

	headers := form.File["file"]
	files := make([]*entities.DocumentFile, 0, len(headers))
	for _, fh := range headers {
		f, err := openPart(fh)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrStorageFailed("open uploaded file", err))
		}
		defer f.Close()
		files = append(files, &entities.DocumentFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Size:        fh.Size,
			Content:     f,
		})
	}

	out, err := h.svc.Upload(c.Request().Context(), files)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	if !out.Success {
		return HandleError(h.logger, c, errors.ErrKBUploadFailed(out.Error))
	}

	return HandleSuccess(h.logger, c, dtodocument.UploadResponse{
		Status:    out.Status,
		Documents: presenter.ToDocumentListResponse(h.svc.Cached(c.Request().Context())),
	})
}

// DeleteDocument removes a file from the corpus
// @Summary      Delete document
// @Description  The listing changes only when the corpus confirms the delete; otherwise deleted is false.
// @Tags         Documents
// @Produce      json
// @Param        name  path      string  true  "File name"
// @Success      200   {object}  common.SuccessResponse{data=dtodocument.DeleteResponse}
// @Failure      400   {object}  common.ErrorResponse
// @Router       /documents/{name} [delete]
func (h *Document) DeleteDocument(c echo.Context) error {
	var req dtodocument.DeleteDocumentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	name := req.Name
	// Echo routes on RawPath when the path holds escapes such as %2F, and the
	// param is then still encoded
	if c.Request().URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}

	deleted, err := h.svc.Delete(c.Request().Context(), name)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dtodocument.DeleteResponse{FileName: name, Deleted: deleted})
}

func openPart(fh *multipart.FileHeader) (multipart.File, error) {
	if fh == nil {
		return nil, http.ErrMissingFile
	}
	return fh.Open()
}
