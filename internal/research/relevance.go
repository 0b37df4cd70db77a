// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import (
	"strings"

	"github.com/mdmze/advice-engine/pkg/types"
)

// Vocabulary holds the term lists driving the relevance filter. Both lists
// are matched as case-insensitive substrings of title+abstract, not as
// tokenized words; that is inherited behavior and kept deliberately.
type Vocabulary struct {
	// Allow marks a record as topically in-scope when any term appears.
	Allow []string

	// Deny rejects a record outright when any term appears, regardless of
	// allow-list or query-term hits.
	Deny []string
}

// IsZero reports whether the vocabulary carries no terms.
func (v Vocabulary) IsZero() bool {
	return len(v.Allow) == 0 && len(v.Deny) == 0
}

// allowTerms is the parenting/child-development vocabulary.
var allowTerms = []string{
	"parent", "child", "children", "infant", "toddler", "adolescent", "teen",
	"family", "maternal", "paternal", "caregiver", "guardian",
	"development", "behavior", "behavioral", "psychology", "psychological",
	"education", "learning", "cognitive", "emotional", "social",
	"discipline", "punishment", "reward", "reinforcement",
	"sleep", "bedtime", "routine", "schedule",
	"screen", "digital", "media", "technology",
	"nutrition", "feeding", "eating", "meal",
	"safety", "injury", "prevention",
	"health", "wellness", "mental health",
	"school", "academic", "achievement",
	"play", "toys", "activities",
	"communication", "language", "speech",
	"autism", "adhd", "special needs",
	"tantrum", "temper", "anger", "aggression",
	"anxiety", "depression", "stress",
	"attachment", "bonding", "relationship",
}

// denyTerms is clinical/medical vocabulary that marks a record as outside
// the parenting scope.
var denyTerms = []string{
	"cancer", "tumor", "carcinoma", "metastasis",
	"diabetes", "hypertension", "cardiovascular",
	"surgery", "surgical", "operation",
	"drug", "pharmaceutical", "medication",
	"virus", "bacterial", "infection",
	"congenital", "genetic", "chromosomal",
	"disease", "disorder", "syndrome",
	"treatment", "therapy", "intervention",
	"mortality", "death", "fatal",
}

// DefaultVocabulary returns the standard allow/deny term lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{Allow: allowTerms, Deny: denyTerms}
}

// Relevant reports whether the record passes the filter for the given user
// query: an allow-list term or a query word of three or more characters
// must appear in title+abstract, and no deny-list term may appear. The
// predicate is pure; each record is judged on its own text alone.
func (v Vocabulary) Relevant(r types.Record, query string) bool {
	text := strings.ToLower(r.Title + " " + r.Abstract)

	hit := false
	for _, term := range v.Allow {
		if strings.Contains(text, strings.ToLower(term)) {
			hit = true
			break
		}
	}
	if !hit {
		for _, word := range strings.Fields(strings.ToLower(query)) {
			if len(word) > 2 && strings.Contains(text, word) {
				hit = true
				break
			}
		}
	}
	if !hit {
		return false
	}

	for _, term := range v.Deny {
		if strings.Contains(text, strings.ToLower(term)) {
			return false
		}
	}
	return true
}

// Filter returns the records that pass Relevant, preserving order.
func (v Vocabulary) Filter(records []types.Record, query string) []types.Record {
	kept := records[:0:0]
	for _, r := range records {
		if v.Relevant(r, query) {
			kept = append(kept, r)
		}
	}
	return kept
}
