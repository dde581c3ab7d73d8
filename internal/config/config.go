// Package config provides configuration loading and structs for the Sousuo server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/heritagecraft/sousuo/internal/ranking"
)

// Config holds all configuration for the application.
type Config struct {
	Debug       bool              `yaml:"debug"`
	Server      ServerConfig      `yaml:"server"`
	Languages   LanguageConfig    `yaml:"languages"`
	Search      SearchConfig      `yaml:"search"`
	Ranking     ranking.Config    `yaml:"ranking"`
	Suggestions SuggestionsConfig `yaml:"suggestions"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LanguageConfig declares the supported languages and the fallback default.
// The declared order is the language-fallback resolution order.
type LanguageConfig struct {
	Supported []string `yaml:"supported"`
	Default   string   `yaml:"default"`
}

// SearchConfig holds search, snippet, and scoring-concurrency settings.
type SearchConfig struct {
	DescriptionSnippetLength int `yaml:"description_snippet_length"`
	BodySnippetLength        int `yaml:"body_snippet_length"`
	// ParallelScoreThreshold is the candidate count at which per-candidate
	// scoring moves onto the worker pool. 0 uses the default; negative
	// disables parallel scoring.
	ParallelScoreThreshold int `yaml:"parallel_score_threshold"`
}

// SuggestionsConfig holds the curated suggestion vocabulary, in declaration
// order. Entries may mix languages.
type SuggestionsConfig struct {
	Vocabulary []string `yaml:"vocabulary"`
}

// Default returns the default configuration.
func Default() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8384,
		},
		Languages: LanguageConfig{
			Supported: []string{"en", "zh-HK", "zh-CN"},
			Default:   "en",
		},
		Search: SearchConfig{
			DescriptionSnippetLength: 200,
			BodySnippetLength:        300,
			ParallelScoreThreshold:   256,
		},
		Ranking:     *ranking.DefaultConfig(),
		Suggestions: SuggestionsConfig{Vocabulary: DefaultVocabulary()},
	}
	return cfg
}

// Load reads and parses the config file at path and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ApplyDefaults fills in unset values with defaults.
func ApplyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Server.Host == "" {
		cfg.Server.Host = defaults.Server.Host
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaults.Server.Port
	}
	if len(cfg.Languages.Supported) == 0 {
		cfg.Languages.Supported = defaults.Languages.Supported
	}
	if cfg.Languages.Default == "" {
		cfg.Languages.Default = cfg.Languages.Supported[0]
	}
	if cfg.Search.DescriptionSnippetLength == 0 {
		cfg.Search.DescriptionSnippetLength = defaults.Search.DescriptionSnippetLength
	}
	if cfg.Search.BodySnippetLength == 0 {
		cfg.Search.BodySnippetLength = defaults.Search.BodySnippetLength
	}
	if cfg.Search.ParallelScoreThreshold == 0 {
		cfg.Search.ParallelScoreThreshold = defaults.Search.ParallelScoreThreshold
	}
	cfg.Ranking.ApplyDefaults()
	if len(cfg.Suggestions.Vocabulary) == 0 {
		cfg.Suggestions.Vocabulary = defaults.Suggestions.Vocabulary
	}
}
