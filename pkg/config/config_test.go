package config

import (
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessDefaults(t *testing.T) {
	t.Setenv("AGENT_API_KEY", "key")
	t.Setenv("HOST", "0.0.0.0")

	cfg := &Config{}
	require.NoError(t, envconfig.Process("", cfg))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, ProviderHTTP, cfg.Agent.Provider)
	assert.Equal(t, "699959a07929f75fa2684eb4", cfg.Agent.ManagerID)
	assert.Equal(t, "69995926e12ce168202fcc11", cfg.KnowledgeBase.CorpusID)
	assert.Equal(t, 3*time.Second, cfg.State.FlashTTL)
	assert.Equal(t, 120*time.Second, cfg.Agent.Timeout)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestProcessOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AGENT_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("KB_PROVIDER", "minio")
	t.Setenv("UPLOAD_STATUS_TTL", "5s")
	t.Setenv("ENVIRONMENT", "production")

	cfg := &Config{}
	require.NoError(t, envconfig.Process("", cfg))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, ProviderOpenAI, cfg.Agent.Provider)
	assert.Equal(t, ProviderMinIO, cfg.KnowledgeBase.Provider)
	assert.Equal(t, 5*time.Second, cfg.State.FlashTTL)
	assert.True(t, cfg.IsProduction())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "http agent without key",
			mutate:  func(c *Config) { c.Agent.APIKey = "" },
			wantErr: "AGENT_API_KEY is required",
		},
		{
			name:    "openai without key",
			mutate:  func(c *Config) { c.Agent.Provider = ProviderOpenAI },
			wantErr: "OPENAI_API_KEY is required",
		},
		{
			name:    "unknown agent provider",
			mutate:  func(c *Config) { c.Agent.Provider = "grpc" },
			wantErr: "unsupported AGENT_PROVIDER",
		},
		{
			name:    "unknown kb provider",
			mutate:  func(c *Config) { c.KnowledgeBase.Provider = "s3" },
			wantErr: "unsupported KB_PROVIDER",
		},
		{
			name:    "missing corpus",
			mutate:  func(c *Config) { c.KnowledgeBase.CorpusID = "" },
			wantErr: "KB_CORPUS_ID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Agent: AgentConfig{
					Provider:  ProviderHTTP,
					BaseURL:   "http://agents",
					APIKey:    "key",
					ManagerID: "m",
					SearchID:  "s",
				},
				KnowledgeBase: KnowledgeBaseConfig{
					Provider: ProviderHTTP,
					BaseURL:  "http://kb",
					CorpusID: "c",
				},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
