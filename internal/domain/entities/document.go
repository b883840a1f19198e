package entities

import "io"

// Document is an entry of the knowledge-base corpus
type Document struct {
	FileName string `json:"fileName"`
	Status   string `json:"status"`
}

// DocumentFile is a single file handed to the knowledge base for upload
type DocumentFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// DocumentListResult is what the document transport reports for a listing
type DocumentListResult struct {
	Success   bool       `json:"success"`
	Documents []Document `json:"documents,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// DocumentOpResult is what the document transport reports for upload/delete
type DocumentOpResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
