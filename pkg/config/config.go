package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Agent and knowledge-base provider names
const (
	ProviderHTTP   = "http"
	ProviderOpenAI = "openai"
	ProviderMinIO  = "minio"
)

// Config holds application configuration
type Config struct {
	Server        ServerConfig
	Log           LogConfig
	Agent         AgentConfig
	OpenAI        OpenAIConfig
	KnowledgeBase KnowledgeBaseConfig
	Storage       StorageConfig
	State         StateConfig
	Meetings      MeetingsConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"100"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
	MaxAgeDays int    `envconfig:"LOG_MAX_AGE_DAYS" default:"30"`
}

// AgentConfig holds the agent transport settings and target ids
type AgentConfig struct {
	Provider     string        `envconfig:"AGENT_PROVIDER" default:"http"`
	BaseURL      string        `envconfig:"AGENT_BASE_URL" default:"https://agent-prod.studio.lyzr.ai"`
	APIKey       string        `envconfig:"AGENT_API_KEY"`
	Timeout      time.Duration `envconfig:"AGENT_TIMEOUT" default:"120s"`
	ManagerID    string        `envconfig:"AGENT_MANAGER_ID" default:"699959a07929f75fa2684eb4"`
	CalendarID   string        `envconfig:"AGENT_CALENDAR_ID" default:"699959877929f75fa2684ea8"`
	TranscriptID string        `envconfig:"AGENT_TRANSCRIPT_ID" default:"699959887929f75fa2684eac"`
	AnalystID    string        `envconfig:"AGENT_ANALYST_ID" default:"69995988db37e68c87a52d60"`
	SearchID     string        `envconfig:"AGENT_SEARCH_ID" default:"699959b17929f75fa2684eb9"`
}

// OpenAIConfig holds settings for the OpenAI-compatible agent transport
type OpenAIConfig struct {
	APIKey  string `envconfig:"OPENAI_API_KEY"`
	BaseURL string `envconfig:"OPENAI_BASE_URL"`
	Model   string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
}

// KnowledgeBaseConfig holds the document transport settings
type KnowledgeBaseConfig struct {
	Provider string        `envconfig:"KB_PROVIDER" default:"http"`
	BaseURL  string        `envconfig:"KB_BASE_URL" default:"https://rag-prod.studio.lyzr.ai"`
	APIKey   string        `envconfig:"KB_API_KEY"`
	CorpusID string        `envconfig:"KB_CORPUS_ID" default:"69995926e12ce168202fcc11"`
	Timeout  time.Duration `envconfig:"KB_TIMEOUT" default:"60s"`
}

// StorageConfig holds MinIO configuration for the object-store knowledge base
type StorageConfig struct {
	Endpoint        string `envconfig:"STORAGE_ENDPOINT" default:"localhost:9000"`
	AccessKeyID     string `envconfig:"STORAGE_ACCESS_KEY" default:"minioadmin"`
	SecretAccessKey string `envconfig:"STORAGE_SECRET_KEY" default:"minioadmin"`
	BucketName      string `envconfig:"STORAGE_BUCKET" default:"meeting-notes"`
	UseSSL          bool   `envconfig:"STORAGE_USE_SSL" default:"false"`
}

// StateConfig holds consumer-surface settings
type StateConfig struct {
	FlashTTL time.Duration `envconfig:"UPLOAD_STATUS_TTL" default:"3s"`
}

// MeetingsConfig points at the optional meeting seed list
type MeetingsConfig struct {
	SeedFile string `envconfig:"MEETINGS_SEED_FILE"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	if err := envconfig.Process("", config); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch strings.ToLower(c.Agent.Provider) {
	case ProviderHTTP:
		if c.Agent.BaseURL == "" {
			return fmt.Errorf("AGENT_BASE_URL is required")
		}
		if c.Agent.APIKey == "" {
			return fmt.Errorf("AGENT_API_KEY is required")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unsupported AGENT_PROVIDER %q", c.Agent.Provider)
	}

	switch strings.ToLower(c.KnowledgeBase.Provider) {
	case ProviderHTTP:
		if c.KnowledgeBase.BaseURL == "" {
			return fmt.Errorf("KB_BASE_URL is required")
		}
	case ProviderMinIO:
		if c.Storage.Endpoint == "" || c.Storage.BucketName == "" {
			return fmt.Errorf("STORAGE_ENDPOINT and STORAGE_BUCKET are required")
		}
	default:
		return fmt.Errorf("unsupported KB_PROVIDER %q", c.KnowledgeBase.Provider)
	}

	if c.KnowledgeBase.CorpusID == "" {
		return fmt.Errorf("KB_CORPUS_ID is required")
	}
	if c.Agent.ManagerID == "" || c.Agent.SearchID == "" {
		return fmt.Errorf("AGENT_MANAGER_ID and AGENT_SEARCH_ID are required")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
