package presenter

import (
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/document"
	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/search"
	dtostate "github.com/johnquangdev/meeting-notes/internal/adapter/dto/state"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	searchuse "github.com/johnquangdev/meeting-notes/internal/usecase/search"
	"github.com/johnquangdev/meeting-notes/internal/usecase/state"
)

// ToStateResponse converts a state snapshot
func ToStateResponse(snap state.Snapshot) *dtostate.StateResponse {
	return &dtostate.StateResponse{
		Processing:       snap.Processing,
		ActiveAgent:      snap.ActiveTarget,
		Analysis:         snap.Analysis,
		ProcessError:     snap.ProcessError,
		Search:           ToSearchViewResponse(snap.Search),
		Documents:        ToDocumentListResponse(snap.Documents).Documents,
		DocumentsLoading: snap.DocumentsLoading,
		UploadStatus:     snap.UploadStatus,
		UploadError:      snap.UploadError,
	}
}

// ToSearchViewResponse converts the search view
func ToSearchViewResponse(v state.SearchView) search.SearchViewResponse {
	return search.SearchViewResponse{
		Query:     v.Query,
		Searching: v.Searching,
		Results:   v.Results,
		Error:     v.Error,
	}
}

// ToSearchResponse converts a completed search
func ToSearchResponse(out *searchuse.Output) *search.SearchResponse {
	return &search.SearchResponse{
		RequestID:  out.RequestID,
		Sequence:   out.Sequence,
		Query:      out.Query,
		Skipped:    out.Skipped,
		Superseded: out.Superseded,
		Results:    out.Results,
	}
}

// ToDocumentListResponse converts the cached corpus listing
func ToDocumentListResponse(docs []entities.Document) document.DocumentListResponse {
	resp := document.DocumentListResponse{
		Documents: make([]document.DocumentResponse, 0, len(docs)),
		Total:     len(docs),
	}
	for _, d := range docs {
		resp.Documents = append(resp.Documents, document.DocumentResponse{FileName: d.FileName, Status: d.Status})
	}
	return resp
}

// ToAgentResponses converts the agent catalog
func ToAgentResponses(targets []entities.AgentTarget) []dtostate.AgentResponse {
	out := make([]dtostate.AgentResponse, len(targets))
	for i, t := range targets {
		out[i] = dtostate.AgentResponse{ID: t.ID, Name: t.Name, Purpose: t.Purpose}
	}
	return out
}
