package document

// DocumentResponse represents a knowledge-base document
type DocumentResponse struct {
	FileName string `json:"file_name"`
	Status   string `json:"status"`
}

// DocumentListResponse represents the cached corpus listing
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int                `json:"total"`
}

// UploadResponse represents an accepted upload
type UploadResponse struct {
	Status    string               `json:"status"`
	Documents DocumentListResponse `json:"documents"`
}

// DeleteResponse reports whether the corpus confirmed the delete
type DeleteResponse struct {
	FileName string `json:"file_name"`
	Deleted  bool   `json:"deleted"`
}
