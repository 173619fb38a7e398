package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	ImagesDir      string   `yaml:"images_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig contains connection details for the recipe database.
type DatabaseConfig struct {
	Path            string `yaml:"path"`
	BusyTimeoutMsec int    `yaml:"busy_timeout_msec"`
}

// AssistantConfig configures the recipe question-answering pipeline.
type AssistantConfig struct {
	GenerationModel string `yaml:"generation_model"`
	EmbeddingModel  string `yaml:"embedding_model"`
	TopK            int    `yaml:"top_k"`
	MaxWebResults   int    `yaml:"max_web_results"`
	CallTimeoutSecs int    `yaml:"call_timeout_secs"`
}

// Credentials holds the API keys for external providers. All of them are
// optional; an empty key disables the corresponding capability.
type Credentials struct {
	GoogleAPIKey      string `yaml:"google_api_key"`
	TavilyAPIKey      string `yaml:"tavily_api_key"`
	FirebaseWebAPIKey string `yaml:"firebase_web_api_key"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Server      ServerConfig    `yaml:"server"`
	Database    DatabaseConfig  `yaml:"database"`
	Assistant   AssistantConfig `yaml:"assistant"`
	Credentials Credentials     `yaml:"credentials"`
	LogLevel    string          `yaml:"log_level"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults. Environment variables override the credentials section
// so keys never have to live in the config file.
func Load(path string) (*AppConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(cfg)
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr:           ":8000",
			ImagesDir:      "images",
			AllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{Path: "recipes.db", BusyTimeoutMsec: 5000},
		Assistant: AssistantConfig{
			GenerationModel: "gemini-2.5-flash-lite",
			EmbeddingModel:  "embedding-001",
			TopK:            5,
			MaxWebResults:   5,
			CallTimeoutSecs: 30,
		},
		LogLevel: "info",
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8000"
	}
	if cfg.Server.ImagesDir == "" {
		cfg.Server.ImagesDir = "images"
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "recipes.db"
	}
	if cfg.Database.BusyTimeoutMsec == 0 {
		cfg.Database.BusyTimeoutMsec = 5000
	}
	if cfg.Assistant.GenerationModel == "" {
		cfg.Assistant.GenerationModel = "gemini-2.5-flash-lite"
	}
	if cfg.Assistant.EmbeddingModel == "" {
		cfg.Assistant.EmbeddingModel = "embedding-001"
	}
	if cfg.Assistant.TopK == 0 {
		cfg.Assistant.TopK = 5
	}
	if cfg.Assistant.MaxWebResults == 0 {
		cfg.Assistant.MaxWebResults = 5
	}
	if cfg.Assistant.CallTimeoutSecs == 0 {
		cfg.Assistant.CallTimeoutSecs = 30
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("GOOGLE_API_KEY"); v != "" {
		cfg.Credentials.GoogleAPIKey = v
	}
	if v := os.Getenv("TAVILY_API_KEY"); v != "" {
		cfg.Credentials.TavilyAPIKey = v
	}
	if v := os.Getenv("FIREBASE_WEB_API_KEY"); v != "" {
		cfg.Credentials.FirebaseWebAPIKey = v
	}
}
