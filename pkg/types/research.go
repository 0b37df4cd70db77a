// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the advice-engine
// pipeline: research records, assessments, articles, and stage
// configuration.
package types

// Record represents a candidate research article returned by a
// bibliographic source query. Records from all sources are normalized to
// this shape on ingestion; after normalization provenance survives only in
// the identifier.
type Record struct {
	// Identifier is the source-qualified unique ID (PMID, DOAJ article id,
	// or a curated-table id). It is the dedup key across sources.
	Identifier string `json:"identifier" yaml:"identifier"`

	// Title is the article title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Abstract is the article abstract or summary.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Authors is a display string ("First Last, First Last").
	Authors string `json:"authors" yaml:"authors"`

	// Journal is the publishing journal or institution.
	Journal string `json:"journal" yaml:"journal"`

	// Year is the publication year as reported by the source.
	Year string `json:"year" yaml:"year"`

	// DOI is the digital object identifier, when the source reports one.
	DOI string `json:"doi,omitempty" yaml:"doi,omitempty"`

	// URL points at the article landing page or full text.
	URL string `json:"url" yaml:"url"`
}
