// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"time"

	"github.com/spf13/viper"

	"github.com/mdmze/advice-engine/internal/research"
	"github.com/mdmze/advice-engine/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "advice-engine/0.1"
)

// researchConfig assembles the aggregation configuration from viper and
// the loaded secrets.
func researchConfig() types.ResearchConfig {
	timeout := viper.GetDuration("research.timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return types.ResearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		PubMedAPIKey:     secretDefault("ncbi-api-key", viper.GetString("research.pubmed_api_key")),
		PerQueryResults:  viper.GetInt("research.per_query_results"),
		SecondaryResults: viper.GetInt("research.secondary_results"),
		CuratedResults:   viper.GetInt("research.curated_results"),
		MaxSources:       viper.GetInt("research.max_sources"),
	}
}

// newAggregator wires the three research sources behind one Aggregator.
func newAggregator(cfg types.ResearchConfig) *research.Aggregator {
	client := &http.Client{Timeout: cfg.Timeout}
	return &research.Aggregator{
		Primary:   &research.PubMedAdapter{Client: client, APIKey: cfg.PubMedAPIKey, UserAgent: cfg.UserAgent},
		Secondary: &research.DOAJAdapter{Client: client, UserAgent: cfg.UserAgent},
		Curated:   &research.CuratedAdapter{},
		Config:    cfg,
	}
}
