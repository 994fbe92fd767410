// Package config loads application configuration for the tempo CLI and
// server. Settings come from an optional YAML file, overridable through
// TEMPO_* environment variables; library callers can ignore this package and
// construct tempo.Options directly.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/benhorvath/tempo-tfidf/pkg/tempo/bucket"
)

// Config holds all settings for the tempo binaries.
type Config struct {
	Scoring ScoringConfig `mapstructure:"scoring"`
	Archive ArchiveConfig `mapstructure:"archive"`
	Render  RenderConfig  `mapstructure:"render"`
	Server  ServerConfig  `mapstructure:"server"`
}

// ScoringConfig selects how documents are tokenized and bucketed.
type ScoringConfig struct {
	Granularity      string `mapstructure:"granularity"`
	DateLayout       string `mapstructure:"date_layout"`
	DefaultStopwords bool   `mapstructure:"default_stopwords"`
	StoplistPath     string `mapstructure:"stoplist_path"`
	SynonymsPath     string `mapstructure:"synonyms_path"`
	Stemming         bool   `mapstructure:"stemming"`
}

func (c ScoringConfig) Validate() error {
	if _, err := bucket.ParseGranularity(c.Granularity); err != nil {
		return fmt.Errorf("scoring.granularity: %w", err)
	}
	if strings.TrimSpace(c.DateLayout) == "" {
		return fmt.Errorf("scoring.date_layout is required")
	}
	return nil
}

// ArchiveConfig locates the document archive.
type ArchiveConfig struct {
	// Path of the SQLite archive file. Empty selects the in-memory store,
	// which lives only as long as the process.
	Path string `mapstructure:"path"`
}

// RenderConfig bounds report output.
type RenderConfig struct {
	Title       string `mapstructure:"title"`
	TopK        int    `mapstructure:"top_k"`
	MaxFontSize int    `mapstructure:"max_font_size"`
}

func (c RenderConfig) Validate() error {
	if c.TopK <= 0 {
		return fmt.Errorf("render.top_k must be > 0")
	}
	if c.MaxFontSize <= 0 {
		return fmt.Errorf("render.max_font_size must be > 0")
	}
	return nil
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

func (c ServerConfig) Validate() error {
	if strings.TrimSpace(c.Address) == "" {
		return fmt.Errorf("server.address is required")
	}
	return nil
}

// Load reads configuration from path. An empty path searches the working
// directory and ./config for tempo.yaml and falls back to defaults when no
// file exists; an explicit path must exist. Environment variables override
// file values (scoring.granularity becomes TEMPO_SCORING_GRANULARITY).
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("tempo")
	v.SetConfigType("yaml")

	v.SetDefault("scoring.granularity", string(bucket.Month))
	v.SetDefault("scoring.date_layout", bucket.DateLayout)
	v.SetDefault("scoring.default_stopwords", true)
	v.SetDefault("render.top_k", 25)
	v.SetDefault("render.max_font_size", 100)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("archive.path", "tempo.db")

	if path == "" {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("TEMPO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Defaults suffice when no file was asked for and none was found.
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Scoring.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Render.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
