// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Option is one selectable answer for a question: a numeric value and its
// display label.
type Option struct {
	Value int    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Question is a single assessment item. Question order matters only for
// display; scoring is keyed by ID.
type Question struct {
	ID      string   `json:"id" yaml:"id"`
	Text    string   `json:"text" yaml:"text"`
	Options []Option `json:"options" yaml:"options"`
}

// ScoringRange maps an inclusive total-score interval to a severity band.
// An assessment's ranges must cover the reachable score space with no gaps
// and no overlaps.
type ScoringRange struct {
	Min         int    `json:"min" yaml:"min"`
	Max         int    `json:"max" yaml:"max"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
}

// Subscale names a subset of an assessment's questions that is scored
// separately from the overall total. The group score is the raw sum of the
// member answers times the multiplier.
type Subscale struct {
	Name        string   `json:"name" yaml:"name"`
	QuestionIDs []string `json:"question_ids" yaml:"question_ids"`
	Multiplier  int      `json:"multiplier" yaml:"multiplier"`
}

// Assessment is an immutable questionnaire definition, created once at
// startup or loaded from a definition file.
type Assessment struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Questions   []Question     `json:"questions" yaml:"questions"`
	Ranges      []ScoringRange `json:"ranges" yaml:"ranges"`

	// Subscales is present only for definitions that score named groups
	// (DASS-21 depression/anxiety/stress); nil otherwise.
	Subscales []Subscale `json:"subscales,omitempty" yaml:"subscales,omitempty"`
}

// AnswerSet maps question IDs to the chosen option value. A set is complete
// when every question in the definition has exactly one entry.
type AnswerSet map[string]int

// AssessmentResult is the derived outcome of scoring a complete AnswerSet.
// Results are computed on demand and never persisted.
type AssessmentResult struct {
	AssessmentID string `json:"assessment_id" yaml:"assessment_id"`
	Title        string `json:"title" yaml:"title"`

	// TotalScore is the sum of all answer values.
	TotalScore int `json:"total_score" yaml:"total_score"`

	// MaxScore is questionCount x 5, used for display only.
	MaxScore int `json:"max_score" yaml:"max_score"`

	// Band is the scoring range the total fell into.
	Band ScoringRange `json:"band" yaml:"band"`

	// SubscaleScores holds per-group scores, keyed by subscale name.
	// Present only when the definition declares subscales.
	SubscaleScores map[string]int `json:"subscale_scores,omitempty" yaml:"subscale_scores,omitempty"`
}
