package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	dtosearch "github.com/johnquangdev/meeting-notes/internal/adapter/dto/search"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/usecase/search"
)

// Search handles meeting search endpoints
type Search struct {
	svc    search.Service
	logger *zap.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc search.Service, logger *zap.Logger) *Search {
	return &Search{svc: svc, logger: logger}
}

// Search runs a discovery query
// @Summary      Search meetings
// @Description  Sends the query to the search agent. A blank query does nothing and is reported as skipped.
// @Tags         Search
// @Accept       json
// @Produce      json
// @Param        request  body      dtosearch.SearchRequest  true  "Query"
// @Success      200      {object}  common.SuccessResponse{data=dtosearch.SearchResponse}
// @Failure      502      {object}  common.ErrorResponse
// @Router       /search [post]
func (h *Search) Search(c echo.Context) error {
	var req dtosearch.SearchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	out := h.svc.Search(c.Request().Context(), req.Query)
	if out.Failed() {
		return HandleError(h.logger, c, dispatchError(out.ErrorKind, out.Error, out.RequestID, errors.ErrSearchFailed))
	}
	return HandleSuccess(h.logger, c, presenter.ToSearchResponse(out))
}

// Current returns the search view
// @Summary      Current search view
// @Tags         Search
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=dtosearch.SearchViewResponse}
// @Router       /search [get]
func (h *Search) Current(c echo.Context) error {
	return HandleSuccess(h.logger, c, presenter.ToSearchViewResponse(h.svc.Current(c.Request().Context())))
}

// SelectRefinement copies a suggested refinement into the query input
// @Summary      Select refinement
// @Tags         Search
// @Produce      json
// @Param        index  path      int  true  "Refinement position"
// @Success      200    {object}  common.SuccessResponse{data=dtosearch.RefinementResponse}
// @Failure      400    {object}  common.ErrorResponse
// @Failure      404    {object}  common.ErrorResponse
// @Router       /search/refinements/{index} [post]
func (h *Search) SelectRefinement(c echo.Context) error {
	var req dtosearch.SelectRefinementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	query, err := h.svc.SelectRefinement(c.Request().Context(), req.Index)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, dtosearch.RefinementResponse{Query: query})
}
