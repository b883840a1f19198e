package state

import (
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/document"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/search"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// StateResponse represents everything a client renders
type StateResponse struct {
	Processing       bool                        `json:"processing"`
	ActiveAgent      string                      `json:"active_agent,omitempty"`
	Analysis         *entities.AnalysisRecord    `json:"analysis,omitempty"`
	ProcessError     string                      `json:"process_error,omitempty"`
	Search           search.SearchViewResponse   `json:"search"`
	Documents        []document.DocumentResponse `json:"documents"`
	DocumentsLoading bool                        `json:"documents_loading"`
	UploadStatus     string                      `json:"upload_status,omitempty"`
	UploadError      string                      `json:"upload_error,omitempty"`
}

// AgentResponse represents a configured remote agent
type AgentResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}
