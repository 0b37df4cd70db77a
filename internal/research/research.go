// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research queries bibliographic APIs and returns a deduplicated,
// relevance-filtered, capped set of parenting research records.
package research

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mdmze/advice-engine/pkg/types"
)

// Adapter fetches candidate records for a query from a single source. Each
// source (PubMed, DOAJ, the curated table) implements this interface per the
// Strategy pattern. Adapters fail independently; a failed adapter degrades
// to an empty contribution.
type Adapter interface {
	Name() string
	Search(ctx context.Context, query string, max int) ([]types.Record, error)
}

// subQueryQualifiers are prepended to the user's question to focus the
// full-text search APIs on parenting and child development literature.
var subQueryQualifiers = []string{
	"parenting AND child behavior AND ",
	"child development AND parenting AND ",
	"family psychology AND ",
	"pediatric psychology AND ",
	"early childhood AND parenting AND ",
	"parent-child interaction AND ",
	"child behavior management AND ",
}

// SubQueries derives the focused sub-queries for a user question.
func SubQueries(query string) []string {
	out := make([]string, len(subQueryQualifiers))
	for i, q := range subQueryQualifiers {
		out[i] = q + query
	}
	return out
}

// Output holds the ranked result set and aggregation statistics.
type Output struct {
	Records       []types.Record
	DupsRemoved   int
	FilteredOut   int
	AdapterErrors []string

	// Fallback carries the advisory text returned when no record survives
	// the relevance filter. Empty when Records is non-empty.
	Fallback string
}

// Aggregator fans a question out over the configured sources and reduces
// the responses to a single ranked set. All fields are read-only after
// construction; an Aggregator is safe for concurrent use.
type Aggregator struct {
	Primary   Adapter
	Secondary Adapter
	Curated   Adapter
	Config    types.ResearchConfig

	// Vocabulary drives the relevance filter. Zero value means
	// DefaultVocabulary.
	Vocabulary Vocabulary
}

const (
	defaultPerQueryResults  = 2
	defaultSecondaryResults = 3
	defaultCuratedResults   = 4
	defaultMaxSources       = 6
)

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Search runs the full aggregation: sub-query expansion, concurrent
// fan-out, priority-ordered merge, dedup, relevance filter, and cap.
// Adapter failures are reported as warnings on w and never abort the
// aggregation; the only error condition is an empty query.
func (a *Aggregator) Search(ctx context.Context, query string, w io.Writer) (Output, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Output{}, fmt.Errorf("query is empty: provide a question")
	}

	subs := SubQueries(query)

	// One slot per adapter call, in merge-priority order: primary per
	// sub-query, then secondary, then curated. Calls run concurrently but
	// the merge order is fixed by slot index, not completion time.
	type call struct {
		adapter Adapter
		query   string
		max     int
	}
	calls := make([]call, 0, len(subs)+2)
	if a.Primary != nil {
		for _, sub := range subs {
			calls = append(calls, call{a.Primary, sub, orDefault(a.Config.PerQueryResults, defaultPerQueryResults)})
		}
	}
	if a.Secondary != nil {
		calls = append(calls, call{a.Secondary, subs[0], orDefault(a.Config.SecondaryResults, defaultSecondaryResults)})
	}
	if a.Curated != nil {
		calls = append(calls, call{a.Curated, query, orDefault(a.Config.CuratedResults, defaultCuratedResults)})
	}

	slots := make([][]types.Record, len(calls))
	errs := make([]error, len(calls))

	var wg sync.WaitGroup
	for i, c := range calls {
		wg.Add(1)
		go func(i int, c call) {
			defer wg.Done()
			records, err := c.adapter.Search(ctx, c.query, c.max)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", c.adapter.Name(), err)
				return
			}
			slots[i] = records
		}(i, c)
	}
	wg.Wait()

	var merged []types.Record
	var adapterErrors []string
	for i := range calls {
		if errs[i] != nil {
			adapterErrors = append(adapterErrors, errs[i].Error())
			fmt.Fprintf(w, "warning: source %v\n", errs[i])
			continue
		}
		merged = append(merged, slots[i]...)
	}

	deduped, removed := dedupe(merged)

	vocab := a.Vocabulary
	if vocab.IsZero() {
		vocab = DefaultVocabulary()
	}
	relevant := vocab.Filter(deduped, query)
	filteredOut := len(deduped) - len(relevant)

	maxSources := orDefault(a.Config.MaxSources, defaultMaxSources)
	if len(relevant) > maxSources {
		relevant = relevant[:maxSources]
	}

	out := Output{
		Records:       relevant,
		DupsRemoved:   removed,
		FilteredOut:   filteredOut,
		AdapterErrors: adapterErrors,
	}
	if len(relevant) == 0 {
		out.Fallback = FallbackAdvisory(query)
	}
	return out, nil
}

// dedupe keeps the first occurrence of each identifier and drops later
// duplicates whole. Fields are never merged across sources; the
// first-encountered record wins in its entirety.
func dedupe(records []types.Record) ([]types.Record, int) {
	seen := make(map[string]bool, len(records))
	deduped := records[:0:0]
	removed := 0
	for _, r := range records {
		if seen[r.Identifier] {
			removed++
			continue
		}
		seen[r.Identifier] = true
		deduped = append(deduped, r)
	}
	return deduped, removed
}

// FallbackAdvisory is the static advisory returned when no research record
// survives filtering. It is a designed degrade path, not an error.
func FallbackAdvisory(query string) string {
	return fmt.Sprintf(`I couldn't find specific research articles related to %q. This might be because:

1. The topic is very specific or new
2. The research databases are temporarily unavailable
3. The question needs to be more specific

Here are some general evidence-based parenting principles that might help:

**For general parenting questions:**
- Consistent routines and boundaries are crucial for child development
- Positive reinforcement is more effective than punishment
- Age-appropriate expectations are important
- Open communication builds trust

**For behavioral issues:**
- Understanding the underlying cause is key
- Prevention is better than reaction
- Consistency across caregivers is essential
- Professional help may be needed for persistent issues

Would you like to try rephrasing your question or asking about a more specific aspect of parenting or child development?`, query)
}

// FormatTable writes the result set as a human-readable table to w.
func FormatTable(out Output, w io.Writer) {
	if len(out.Records) == 0 {
		if out.Fallback != "" {
			fmt.Fprintln(w, out.Fallback)
		} else {
			fmt.Fprintln(w, "No results found.")
		}
		return
	}

	fmt.Fprintf(w, "%-4s  %-55s  %-24s  %-4s  %s\n",
		"Rank", "Title", "Authors", "Year", "Journal")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, r := range out.Records {
		fmt.Fprintf(w, "%-4d  %-55s  %-24s  %-4s  %s\n",
			i+1, truncate(r.Title, 55), truncate(r.Authors, 24), r.Year, truncate(r.Journal, 30))
	}

	fmt.Fprintf(w, "\n%d sources", len(out.Records))
	if out.DupsRemoved > 0 {
		fmt.Fprintf(w, " (%d duplicates removed)", out.DupsRemoved)
	}
	if out.FilteredOut > 0 {
		fmt.Fprintf(w, " (%d filtered as off-topic)", out.FilteredOut)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the result set as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Records)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
