package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	DB          DBConfig          `mapstructure:"db"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Log         LogConfig         `mapstructure:"log"`
	App         AppConfig         `mapstructure:"app"`
	Seed        SeedConfig        `mapstructure:"seed"`
	Assistant   AssistantConfig   `mapstructure:"assistant"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Port string `mapstructure:"port" validate:"required"`
}

// DBConfig holds the embedded database configuration.
type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite sqlite3"` // "sqlite" (pure Go) or "sqlite3" (cgo)
	Path   string `mapstructure:"path" validate:"required"`
}

// CacheConfig holds the response cache configuration.
type CacheConfig struct {
	FilePath string `mapstructure:"file_path" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string `mapstructure:"level"`  // e.g., "debug", "info", "warn", "error"
	Format     string `mapstructure:"format"` // e.g., "json", "console"
	File       string `mapstructure:"file"`   // optional rotating log file
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// AppConfig holds application defaults.
type AppConfig struct {
	DefaultLanguage string `mapstructure:"default_language" validate:"oneof=tr en es"`
}

// SeedConfig controls topic catalog seeding at startup.
type SeedConfig struct {
	Force bool `mapstructure:"force"`
}

// AssistantConfig holds the chat-completion client configuration.
type AssistantConfig struct {
	Endpoint    string        `mapstructure:"endpoint" validate:"required,url"`
	Model       string        `mapstructure:"model" validate:"required"`
	Temperature float64       `mapstructure:"temperature" validate:"gte=0,lte=2"`
	Timeout     time.Duration `mapstructure:"timeout"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

// CredentialsConfig selects and configures the credential store.
type CredentialsConfig struct {
	Backend string            `mapstructure:"backend" validate:"oneof=static vault"`
	Static  map[string]string `mapstructure:"static"`
	Vault   VaultConfig       `mapstructure:"vault"`
}

// VaultConfig holds HashiCorp Vault KV-v2 settings. Address and token fall back
// to VAULT_ADDR and VAULT_TOKEN when empty.
type VaultConfig struct {
	Address  string        `mapstructure:"address"`
	Token    string        `mapstructure:"token"`
	Mount    string        `mapstructure:"mount"`
	Path     string        `mapstructure:"path"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// LoadConfig reads configuration from a .env file, a config file and environment variables.
func LoadConfig() (*Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()

	// Set default values
	v.SetDefault("server.port", "8080")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "vivo.db")
	v.SetDefault("cache.file_path", "vivo-cache.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 7)
	v.SetDefault("log.max_age_days", 14)
	v.SetDefault("app.default_language", "en")
	v.SetDefault("seed.force", false)
	v.SetDefault("assistant.endpoint", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("assistant.model", "gpt-4o")
	v.SetDefault("assistant.temperature", 0.7)
	v.SetDefault("assistant.timeout", 60*time.Second)
	v.SetDefault("assistant.cache_ttl", 0)
	v.SetDefault("credentials.backend", "static")
	v.SetDefault("credentials.vault.mount", "secret")
	v.SetDefault("credentials.vault.path", "vivo")
	v.SetDefault("credentials.vault.cache_ttl", 5*time.Minute)

	// Set up viper to read from config file
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/vivo/")
	v.AddConfigPath("$HOME/.vivo")

	// Attempt to read the config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, err
		}
		// Config file not found; proceed with defaults and env vars
	}

	// Set up viper to read from environment variables
	v.SetEnvPrefix("VIVO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal the config into the Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// The API key is commonly provided as a plain environment variable.
	if key := v.GetString("credentials.static.openai_api_key"); key != "" {
		if cfg.Credentials.Static == nil {
			cfg.Credentials.Static = make(map[string]string)
		}
		cfg.Credentials.Static["openai_api_key"] = key
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct-level constraints of cfg.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
