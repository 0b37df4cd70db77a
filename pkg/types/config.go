// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "advice-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ResearchConfig holds settings for the research aggregation stage.
type ResearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// PubMedAPIKey is an optional NCBI E-utilities key for higher rate limits.
	PubMedAPIKey string `json:"pubmed_api_key,omitempty" yaml:"pubmed_api_key,omitempty"`

	// PerQueryResults caps results per primary sub-query (default 2).
	PerQueryResults int `json:"per_query_results" yaml:"per_query_results"`

	// SecondaryResults caps results from the secondary source (default 3).
	SecondaryResults int `json:"secondary_results" yaml:"secondary_results"`

	// CuratedResults caps results from the curated table (default 4).
	CuratedResults int `json:"curated_results" yaml:"curated_results"`

	// MaxSources caps the final ranked result set (default 6).
	MaxSources int `json:"max_sources" yaml:"max_sources"`
}

// ChatConfig holds settings for the conversation stage.
type ChatConfig struct {
	// Model is the completion model identifier (e.g. "gpt-4").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the completion API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxTokens bounds the completion length (default 1500).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// Temperature is the sampling temperature (default 0.7).
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// StoreConfig holds settings for the article store.
type StoreConfig struct {
	// Backend selects the store implementation: "memory" or "sqlite".
	Backend string `json:"backend" yaml:"backend"`

	// Path is the SQLite database file, used only by the sqlite backend.
	Path string `json:"path" yaml:"path"`

	// Seed controls whether an empty store is populated with sample articles.
	Seed bool `json:"seed" yaml:"seed"`
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`
}

// EngineConfig groups all stage configurations.
type EngineConfig struct {
	Research ResearchConfig `json:"research" yaml:"research"`
	Chat     ChatConfig     `json:"chat" yaml:"chat"`
	Store    StoreConfig    `json:"store" yaml:"store"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}
