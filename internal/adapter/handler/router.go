package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-notes/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	meetingHandler  *Meeting
	searchHandler   *Search
	documentHandler *Document
	stateHandler    *State
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, searchHandler *Search, documentHandler *Document, stateHandler *State) *Router {
	return &Router{
		cfg:             cfg,
		meetingHandler:  meetingHandler,
		searchHandler:   searchHandler,
		documentHandler: documentHandler,
		stateHandler:    stateHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupSearchRoutes(v1)
	rt.setupDocumentRoutes(v1)
	rt.setupStateRoutes(v1)
}

func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	if rt.meetingHandler == nil {
		g.Any("/meetings*", rt.notImplemented)
		return
	}

	meetings := g.Group("/meetings")
	meetings.GET("", rt.meetingHandler.ListMeetings)
	meetings.POST("/custom", rt.meetingHandler.ProcessCustom)
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)
	meetings.POST("/:id/process", rt.meetingHandler.ProcessMeeting)

	g.GET("/notes", rt.meetingHandler.ListNotes)
}

func (rt *Router) setupSearchRoutes(g *echo.Group) {
	if rt.searchHandler == nil {
		g.Any("/search*", rt.notImplemented)
		return
	}

	search := g.Group("/search")
	search.POST("", rt.searchHandler.Search)
	search.GET("", rt.searchHandler.Current)
	search.POST("/refinements/:index", rt.searchHandler.SelectRefinement)
}

func (rt *Router) setupDocumentRoutes(g *echo.Group) {
	if rt.documentHandler == nil {
		g.Any("/documents*", rt.notImplemented)
		return
	}

	docs := g.Group("/documents")
	docs.GET("", rt.documentHandler.ListDocuments)
	docs.POST("", rt.documentHandler.UploadDocument)
	docs.POST("/refresh", rt.documentHandler.RefreshDocuments)
	docs.DELETE("/:name", rt.documentHandler.DeleteDocument)
}

func (rt *Router) setupStateRoutes(g *echo.Group) {
	if rt.stateHandler == nil {
		g.Any("/state*", rt.notImplemented)
		return
	}

	g.GET("/state", rt.stateHandler.GetState)
	g.DELETE("/state/errors/:kind", rt.stateHandler.ClearError)
	g.GET("/agents", rt.stateHandler.ListAgents)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: env,
	})
}
