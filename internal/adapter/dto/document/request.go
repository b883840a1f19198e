package document

// DeleteDocumentRequest identifies a document by file name
type DeleteDocumentRequest struct {
	Name string `param:"name" validate:"required,max=1024"`
}
