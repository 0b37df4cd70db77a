// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assessment scores self-assessment questionnaires: a total score,
// a severity band, and optional named subscale scores.
package assessment

import (
	"errors"
	"fmt"

	"github.com/mdmze/advice-engine/pkg/types"
)

// maxOptionValue is the option ceiling used for the display denominator.
// Every definition's options fit within it.
const maxOptionValue = 5

var (
	// ErrIncompleteAnswers indicates the answer set is missing an entry for
	// at least one question in the definition.
	ErrIncompleteAnswers = errors.New("answer set is incomplete")

	// ErrInvalidAnswer indicates an answer value that is not one of the
	// declared options for its question.
	ErrInvalidAnswer = errors.New("answer value not among question options")

	// ErrNoMatchingBand indicates a total score that falls outside every
	// scoring range. The ranges are malformed; this is a definition defect,
	// not bad user input.
	ErrNoMatchingBand = errors.New("no scoring range matches total score")
)

// Score computes the result for a complete answer set against def.
//
// The answer set must hold exactly one declared option value per question;
// a missing or out-of-range entry is rejected up front rather than producing
// a silently under-counted total. A total that matches no scoring range
// means def's ranges have a gap and surfaces as ErrNoMatchingBand.
func Score(def types.Assessment, answers types.AnswerSet) (types.AssessmentResult, error) {
	total := 0
	for _, q := range def.Questions {
		v, ok := answers[q.ID]
		if !ok {
			return types.AssessmentResult{}, fmt.Errorf("question %s: %w", q.ID, ErrIncompleteAnswers)
		}
		if !optionDeclared(q, v) {
			return types.AssessmentResult{}, fmt.Errorf("question %s: value %d: %w", q.ID, v, ErrInvalidAnswer)
		}
		total += v
	}

	band, err := findBand(def.Ranges, total)
	if err != nil {
		return types.AssessmentResult{}, fmt.Errorf("assessment %s: %w", def.ID, err)
	}

	result := types.AssessmentResult{
		AssessmentID: def.ID,
		Title:        def.Title,
		TotalScore:   total,
		MaxScore:     len(def.Questions) * maxOptionValue,
		Band:         band,
	}

	if len(def.Subscales) > 0 {
		result.SubscaleScores = make(map[string]int, len(def.Subscales))
		for _, sub := range def.Subscales {
			sum := 0
			for _, id := range sub.QuestionIDs {
				sum += answers[id]
			}
			result.SubscaleScores[sub.Name] = sum * sub.Multiplier
		}
	}

	return result, nil
}

// findBand returns the scoring range containing total.
func findBand(ranges []types.ScoringRange, total int) (types.ScoringRange, error) {
	for _, r := range ranges {
		if total >= r.Min && total <= r.Max {
			return r, nil
		}
	}
	return types.ScoringRange{}, fmt.Errorf("total %d: %w", total, ErrNoMatchingBand)
}

// optionDeclared reports whether v is one of q's option values.
func optionDeclared(q types.Question, v int) bool {
	for _, opt := range q.Options {
		if opt.Value == v {
			return true
		}
	}
	return false
}

// ValidateRanges checks that def's scoring ranges cover every reachable
// total score exactly once. Reachable totals run from the sum of the
// minimum option values to the sum of the maximums.
func ValidateRanges(def types.Assessment) error {
	lo, hi := 0, 0
	for _, q := range def.Questions {
		if len(q.Options) == 0 {
			return fmt.Errorf("question %s has no options", q.ID)
		}
		qlo, qhi := q.Options[0].Value, q.Options[0].Value
		for _, opt := range q.Options[1:] {
			if opt.Value < qlo {
				qlo = opt.Value
			}
			if opt.Value > qhi {
				qhi = opt.Value
			}
		}
		lo += qlo
		hi += qhi
	}

	for total := lo; total <= hi; total++ {
		matches := 0
		for _, r := range def.Ranges {
			if total >= r.Min && total <= r.Max {
				matches++
			}
		}
		if matches != 1 {
			return fmt.Errorf("assessment %s: score %d matched by %d ranges, want exactly 1", def.ID, total, matches)
		}
	}
	return nil
}
