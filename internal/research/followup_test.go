package research

import (
	"strings"
	"testing"
)

func TestIsPersonal(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"My toddler won't sleep through the night", true},
		{"What should I do about biting?", true},
		{"How can I help with homework battles?", true},
		{"our family struggles with mornings", true},
		{"effects of screen time on children", false},
		{"tantrum research findings", false},
	}
	for _, tt := range tests {
		if got := IsPersonal(tt.query); got != tt.want {
			t.Errorf("IsPersonal(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFollowUpsPersonalOverridesTopic(t *testing.T) {
	// A personal sleep question gets the supportive set, not the sleep set.
	got := FollowUps("My toddler won't sleep", true)
	if len(got) != maxFollowUps {
		t.Fatalf("len = %d, want %d", len(got), maxFollowUps)
	}
	for _, q := range got {
		if strings.Contains(strings.ToLower(q), "sleep") {
			t.Errorf("personal follow-ups should not be topic-routed, got %q", q)
		}
	}
	if got[0] != "Can you help me with a specific situation?" {
		t.Errorf("got[0] = %q", got[0])
	}
}

func TestFollowUpsTopicRouting(t *testing.T) {
	tests := []struct {
		query string
		want  string // expected first follow-up
	}{
		{"handling temper tantrums", "What are the warning signs before a tantrum starts?"},
		{"bedtime struggles", "How much sleep does my child need at different ages?"},
		{"digital media limits", "What are the recommended screen time limits by age?"},
		{"discipline without yelling", "What's the difference between discipline and punishment?"},
		{"early learning activities", "What are the key developmental milestones?"},
		{"picky eating", "What does the latest research say about this?"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := FollowUps(tt.query, false)
			if len(got) == 0 || got[0] != tt.want {
				t.Errorf("FollowUps(%q)[0] = %v, want %q", tt.query, got, tt.want)
			}
			if len(got) > maxFollowUps {
				t.Errorf("len = %d, exceeds cap", len(got))
			}
		})
	}
}

func TestFollowUpsFirstTopicGroupWins(t *testing.T) {
	// Both tantrum and sleep keywords present; tantrum is checked first.
	got := FollowUps("tantrums at bedtime", false)
	if got[0] != "What are the warning signs before a tantrum starts?" {
		t.Errorf("got[0] = %q, want the tantrum set", got[0])
	}
}

func TestFollowUpsReturnsCopy(t *testing.T) {
	got := FollowUps("generic question", false)
	got[0] = "mutated"
	again := FollowUps("generic question", false)
	if again[0] == "mutated" {
		t.Error("FollowUps must not expose the shared backing array")
	}
}
