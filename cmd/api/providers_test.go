package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgai "github.com/johnquangdev/meeting-notes/pkg/ai"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	"github.com/johnquangdev/meeting-notes/pkg/rag"
)

func TestNewAgentTransport(t *testing.T) {
	cfg := &config.Config{Agent: config.AgentConfig{Provider: "HTTP", BaseURL: "http://agents", APIKey: "k"}}
	transport, err := newAgentTransport(cfg)
	require.NoError(t, err)
	assert.IsType(t, &pkgai.AgentClient{}, transport)

	cfg.Agent.Provider = config.ProviderOpenAI
	cfg.OpenAI.APIKey = "sk-test"
	transport, err = newAgentTransport(cfg)
	require.NoError(t, err)
	assert.IsType(t, &pkgai.OpenAIClient{}, transport)

	cfg.Agent.Provider = "carrier-pigeon"
	_, err = newAgentTransport(cfg)
	assert.Error(t, err)
}

func TestNewDocumentTransport(t *testing.T) {
	cfg := &config.Config{KnowledgeBase: config.KnowledgeBaseConfig{Provider: config.ProviderHTTP, BaseURL: "http://kb"}}
	transport, err := newDocumentTransport(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &rag.Client{}, transport)

	cfg.KnowledgeBase.Provider = "ftp"
	_, err = newDocumentTransport(context.Background(), cfg, nil)
	assert.Error(t, err)
}
