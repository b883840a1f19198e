package main

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/gateways"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/storage"
	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/rag"
)

// newAgentTransport selects the agent transport named by AGENT_PROVIDER
func newAgentTransport(cfg *config.Config) (gateways.AgentTransport, error) {
	switch strings.ToLower(cfg.Agent.Provider) {
	case config.ProviderHTTP:
		return pkgai.NewAgentClient(&cfg.Agent), nil
	case config.ProviderOpenAI:
		prompts := map[string]string{
			cfg.Agent.ManagerID: pkgai.ProcessingPrompt,
			cfg.Agent.SearchID:  pkgai.SearchPrompt,
		}
		return pkgai.NewOpenAIClient(&cfg.OpenAI, cfg.Agent.Timeout, prompts), nil
	}
	return nil, fmt.Errorf("unsupported AGENT_PROVIDER %q", cfg.Agent.Provider)
}

// newDocumentTransport selects the knowledge-base transport named by KB_PROVIDER
func newDocumentTransport(ctx context.Context, cfg *config.Config, logger *zap.Logger) (gateways.DocumentTransport, error) {
	switch strings.ToLower(cfg.KnowledgeBase.Provider) {
	case config.ProviderHTTP:
		kbCfg := cfg.KnowledgeBase
		if kbCfg.APIKey == "" {
			kbCfg.APIKey = cfg.Agent.APIKey
		}
		return rag.NewClient(&kbCfg), nil
	case config.ProviderMinIO:
		return storage.NewMinIOClient(ctx, &cfg.Storage, logger)
	}
	return nil, fmt.Errorf("unsupported KB_PROVIDER %q", cfg.KnowledgeBase.Provider)
}
