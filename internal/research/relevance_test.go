package research

import (
	"testing"

	"github.com/mdmze/advice-engine/pkg/types"
)

func TestRelevant(t *testing.T) {
	vocab := DefaultVocabulary()

	tests := []struct {
		name   string
		record types.Record
		query  string
		want   bool
	}{
		{
			name:   "allow term in title",
			record: types.Record{Title: "Toddler Sleep Patterns", Abstract: "A longitudinal study."},
			query:  "unrelated",
			want:   true,
		},
		{
			name:   "allow term in abstract only",
			record: types.Record{Title: "A Longitudinal Study", Abstract: "Outcomes of parenting style."},
			query:  "unrelated",
			want:   true,
		},
		{
			name:   "case insensitive allow match",
			record: types.Record{Title: "TANTRUM Frequency", Abstract: "Observed in cohort."},
			query:  "unrelated",
			want:   true,
		},
		{
			name:   "query term rescues record without allow hit",
			record: types.Record{Title: "Montessori classrooms", Abstract: "Observed outcomes."},
			query:  "montessori methods",
			want:   true,
		},
		{
			name:   "short query words never match",
			record: types.Record{Title: "On it", Abstract: "it is so"},
			query:  "it is so",
			want:   false,
		},
		{
			name:   "deny term rejects despite allow hit",
			record: types.Record{Title: "Childhood cancer outcomes", Abstract: "Pediatric oncology."},
			query:  "child health",
			want:   false,
		},
		{
			name:   "deny term rejects despite query hit",
			record: types.Record{Title: "Chemotherapy drug trials", Abstract: "Trial design."},
			query:  "chemotherapy research",
			want:   false,
		},
		{
			name:   "no hit at all",
			record: types.Record{Title: "Quarterly earnings report", Abstract: "Fiscal year summary."},
			query:  "q3",
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vocab.Relevant(tt.record, tt.query); got != tt.want {
				t.Errorf("Relevant(%q, %q) = %v, want %v", tt.record.Title, tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterPreservesOrderAndIsIdempotent(t *testing.T) {
	vocab := DefaultVocabulary()
	records := []types.Record{
		{Identifier: "a", Title: "Parenting styles", Abstract: "survey"},
		{Identifier: "b", Title: "Tumor biology", Abstract: "lab study"},
		{Identifier: "c", Title: "Toddler bedtime routines", Abstract: "trial"},
	}

	once := vocab.Filter(records, "question")
	if len(once) != 2 || once[0].Identifier != "a" || once[1].Identifier != "c" {
		t.Fatalf("Filter = %+v", once)
	}

	twice := vocab.Filter(once, "question")
	if len(twice) != len(once) {
		t.Errorf("second Filter pass changed the set: %+v", twice)
	}
}

func TestVocabularyIsZero(t *testing.T) {
	if !(Vocabulary{}).IsZero() {
		t.Error("empty vocabulary should be zero")
	}
	if (Vocabulary{Deny: []string{"x"}}).IsZero() {
		t.Error("vocabulary with deny terms is not zero")
	}
}
