package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	dtostate "github.com/johnquangdev/meeting-notes/internal/adapter/dto/state"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/usecase/state"
)

// State exposes the application state and the agent catalog
type State struct {
	store  *state.Store
	agents entities.AgentCatalog
	logger *zap.Logger
}

// NewStateHandler creates a new state handler
func NewStateHandler(store *state.Store, agents entities.AgentCatalog, logger *zap.Logger) *State {
	return &State{store: store, agents: agents, logger: logger}
}

// GetState returns a snapshot of the application state
// @Summary      Application state
// @Tags         State
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=dtostate.StateResponse}
// @Router       /state [get]
func (h *State) GetState(c echo.Context) error {
	return HandleSuccess(h.logger, c, presenter.ToStateResponse(h.store.Snapshot()))
}

// ClearError dismisses the process, search or upload error
// @Summary      Clear error
// @Tags         State
// @Produce      json
// @Param        kind  path      string  true  "process, search or upload"
// @Success      200   {object}  common.SuccessResponse{data=dtostate.StateResponse}
// @Failure      400   {object}  common.ErrorResponse
// @Router       /state/errors/{kind} [delete]
func (h *State) ClearError(c echo.Context) error {
	var req dtostate.ClearErrorRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	h.store.Apply(state.ErrorCleared{Kind: state.ErrorKind(req.Kind)})
	return HandleSuccess(h.logger, c, presenter.ToStateResponse(h.store.Snapshot()))
}

// ListAgents returns the configured agents
// @Summary      List agents
// @Tags         Agents
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=[]dtostate.AgentResponse}
// @Router       /agents [get]
func (h *State) ListAgents(c echo.Context) error {
	return HandleSuccess(h.logger, c, presenter.ToAgentResponses(h.agents.All()))
}
