package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-notes/docs"
	"github.com/johnquangdev/meeting-notes/internal/adapter/handler"
	"github.com/johnquangdev/meeting-notes/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/cache"
	httpmw "github.com/johnquangdev/meeting-notes/internal/infrastructure/http/middleware"
	aiuse "github.com/johnquangdev/meeting-notes/internal/usecase/ai"
	"github.com/johnquangdev/meeting-notes/internal/usecase/knowledge"
	"github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-notes/internal/usecase/search"
	"github.com/johnquangdev/meeting-notes/internal/usecase/state"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-notes/pkg/validator"
)

// @title           Meeting Notes API
// @version         1.0
// @description     Processes meetings into structured notes through remote agents, searches past notes and manages the knowledge-base corpus.

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpmw.RequestID())
	e.Use(httpmw.RequestLogger(zlog))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
		ExposeHeaders: []string{echo.HeaderXRequestID},
	}))

	ctx := context.Background()
	zlog.Info("🔧 Initializing dependencies...")

	// Transports
	agentTransport, err := newAgentTransport(cfg)
	if err != nil {
		zlog.Fatal("Failed to initialize agent transport", zap.Error(err))
	}
	zlog.Info("🤖 Agent transport ready", zap.String("provider", cfg.Agent.Provider))

	documentTransport, err := newDocumentTransport(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("Failed to initialize knowledge-base transport", zap.Error(err))
	}
	zlog.Info("📚 Knowledge-base transport ready",
		zap.String("provider", cfg.KnowledgeBase.Provider),
		zap.String("corpus_id", cfg.KnowledgeBase.CorpusID),
	)

	agents := entities.NewAgentCatalog(
		cfg.Agent.ManagerID,
		cfg.Agent.CalendarID,
		cfg.Agent.TranscriptID,
		cfg.Agent.AnalystID,
		cfg.Agent.SearchID,
	)

	// State and registry
	store := state.NewStore(cache.NewMemoryStore(time.Second), cfg.State.FlashTTL, zlog)
	defer store.Close()
	meetingRepo := repository.NewMeetingRepository()

	// Use cases
	dispatcher := aiuse.NewDispatcher(agentTransport, zlog)
	meetingService := meeting.NewMeetingService(meetingRepo, dispatcher, store, agents.Manager, zlog)
	searchService := search.NewSearchService(dispatcher, store, agents.Search, zlog)
	knowledgeService := knowledge.NewKnowledgeService(documentTransport, cfg.KnowledgeBase.CorpusID, store, zlog)

	if cfg.Meetings.SeedFile != "" {
		seed, err := repository.LoadSeedFile(cfg.Meetings.SeedFile)
		if err != nil {
			zlog.Fatal("Failed to load meeting seed file", zap.String("path", cfg.Meetings.SeedFile), zap.Error(err))
		}
		if err := meetingService.Seed(ctx, seed); err != nil {
			zlog.Fatal("Failed to seed meetings", zap.Error(err))
		}
	}

	// Initial corpus listing; failures are logged and the cache stays empty
	go knowledgeService.List(ctx)

	router := handler.NewRouter(
		cfg,
		handler.NewMeetingHandler(meetingService, zlog),
		handler.NewSearchHandler(searchService, zlog),
		handler.NewDocumentHandler(knowledgeService, zlog),
		handler.NewStateHandler(store, agents, zlog),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Addr()
		zlog.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zlog.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	zlog.Info("✅ Server stopped gracefully")
}
