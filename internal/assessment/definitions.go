// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assessment

import (
	"fmt"

	"github.com/mdmze/advice-engine/pkg/types"
)

// builtins holds the questionnaire definitions shipped with the engine,
// in display order.
var builtins = []types.Assessment{dass21, parentingStress, relationshipSatisfaction}

// Builtins returns the shipped assessment definitions.
func Builtins() []types.Assessment {
	return builtins
}

// ByID returns the builtin definition with the given id.
func ByID(id string) (types.Assessment, error) {
	for _, def := range builtins {
		if def.ID == id {
			return def, nil
		}
	}
	return types.Assessment{}, fmt.Errorf("unknown assessment %q", id)
}

// dassOptions is the shared 0-3 frequency scale used by every DASS-21 item.
func dassOptions() []types.Option {
	return []types.Option{
		{Value: 0, Label: "Did not apply to me at all"},
		{Value: 1, Label: "Applied to me to some degree, or some of the time"},
		{Value: 2, Label: "Applied to me to a considerable degree, or a good part of the time"},
		{Value: 3, Label: "Applied to me very much, or most of the time"},
	}
}

func dassQuestions() []types.Question {
	texts := []string{
		"I found it hard to wind down",
		"I was aware of dryness of my mouth",
		"I couldn't seem to experience any positive feeling at all",
		"I experienced breathing difficulty (e.g., excessively rapid breathing, breathlessness in the absence of physical exertion)",
		"I found it difficult to work up the initiative to do things",
		"I tended to over-react to situations",
		"I experienced trembling (e.g., in the hands)",
		"I felt that I was using a lot of nervous energy",
		"I was worried about situations in which I might panic and make a fool of myself",
		"I felt that I had nothing to look forward to",
		"I found myself getting agitated",
		"I found it difficult to relax",
		"I felt down-hearted and blue",
		"I was intolerant of anything that kept me from getting on with what I was doing",
		"I felt I was close to panic",
		"I was unable to become enthusiastic about anything",
		"I felt I wasn't worth much as a person",
		"I felt that I was rather touchy",
		"I was aware of the action of my heart in the absence of physical exertion (e.g., sense of heart rate increase, heart missing a beat)",
		"I felt scared without any good reason",
		"I felt that life was meaningless",
	}
	questions := make([]types.Question, len(texts))
	for i, text := range texts {
		questions[i] = types.Question{
			ID:      fmt.Sprintf("q%d", i+1),
			Text:    text,
			Options: dassOptions(),
		}
	}
	return questions
}

// dass21 is the Depression, Anxiety & Stress Scale. The raw 0-3 sums per
// subscale are doubled to land on the clinical 0-42 DASS-21 scale; the
// multiplier is part of the instrument, not a tunable.
var dass21 = types.Assessment{
	ID:          "dass-21",
	Title:       "DASS-21: Depression, Anxiety & Stress Scale",
	Description: "A validated 21-item scale to assess depression, anxiety, and stress levels. This is a widely used clinical assessment tool.",
	Questions:   dassQuestions(),
	Ranges: []types.ScoringRange{
		{Min: 0, Max: 9, Label: "Normal", Description: "Your depression, anxiety, and stress levels are within normal range."},
		{Min: 10, Max: 13, Label: "Mild", Description: "You may be experiencing mild symptoms. Consider self-care strategies and monitoring."},
		{Min: 14, Max: 20, Label: "Moderate", Description: "You are experiencing moderate symptoms. Professional support may be beneficial."},
		{Min: 21, Max: 27, Label: "Severe", Description: "You are experiencing severe symptoms. Professional support is recommended."},
		// The published DASS-21 bands are open-ended at the top ("28+");
		// the max reachable raw total is 63.
		{Min: 28, Max: 63, Label: "Extremely Severe", Description: "You are experiencing extremely severe symptoms. Immediate professional support is strongly recommended."},
	},
	Subscales: []types.Subscale{
		{Name: "depression", QuestionIDs: []string{"q3", "q5", "q9", "q10", "q13", "q16", "q17", "q20", "q21"}, Multiplier: 2},
		{Name: "anxiety", QuestionIDs: []string{"q2", "q4", "q7", "q8", "q11", "q12", "q15", "q19"}, Multiplier: 2},
		{Name: "stress", QuestionIDs: []string{"q1", "q6", "q14", "q18"}, Multiplier: 2},
	},
}

var parentingStress = types.Assessment{
	ID:          "parenting-stress",
	Title:       "Parenting Stress Assessment",
	Description: "Evaluate your current stress levels related to parenting and identify areas for support.",
	Questions: []types.Question{
		{
			ID:   "q1",
			Text: "How often do you feel overwhelmed by your parenting responsibilities?",
			Options: []types.Option{
				{Value: 1, Label: "Never"},
				{Value: 2, Label: "Rarely"},
				{Value: 3, Label: "Sometimes"},
				{Value: 4, Label: "Often"},
				{Value: 5, Label: "Always"},
			},
		},
		{
			ID:   "q2",
			Text: "How confident do you feel in your parenting decisions?",
			Options: []types.Option{
				{Value: 5, Label: "Very confident"},
				{Value: 4, Label: "Somewhat confident"},
				{Value: 3, Label: "Neutral"},
				{Value: 2, Label: "Somewhat uncertain"},
				{Value: 1, Label: "Very uncertain"},
			},
		},
		{
			ID:   "q3",
			Text: "How often do you feel supported in your parenting role?",
			Options: []types.Option{
				{Value: 5, Label: "Always"},
				{Value: 4, Label: "Often"},
				{Value: 3, Label: "Sometimes"},
				{Value: 2, Label: "Rarely"},
				{Value: 1, Label: "Never"},
			},
		},
		{
			ID:   "q4",
			Text: "How well do you manage work-life balance as a parent?",
			Options: []types.Option{
				{Value: 5, Label: "Very well"},
				{Value: 4, Label: "Well"},
				{Value: 3, Label: "Neutral"},
				{Value: 2, Label: "Poorly"},
				{Value: 1, Label: "Very poorly"},
			},
		},
		{
			ID:   "q5",
			Text: "How often do you feel guilty about your parenting?",
			Options: []types.Option{
				{Value: 1, Label: "Never"},
				{Value: 2, Label: "Rarely"},
				{Value: 3, Label: "Sometimes"},
				{Value: 4, Label: "Often"},
				{Value: 5, Label: "Always"},
			},
		},
	},
	Ranges: []types.ScoringRange{
		{Min: 5, Max: 10, Label: "Low Stress", Description: "You're managing parenting stress well. Continue your current strategies."},
		{Min: 11, Max: 15, Label: "Moderate Stress", Description: "You may benefit from additional support and stress management techniques."},
		{Min: 16, Max: 20, Label: "High Stress", Description: "Consider seeking professional support and implementing stress reduction strategies."},
		{Min: 21, Max: 25, Label: "Very High Stress", Description: "Professional support is strongly recommended to help manage your stress levels."},
	},
}

var relationshipSatisfaction = types.Assessment{
	ID:          "relationship-satisfaction",
	Title:       "Relationship Satisfaction Scale",
	Description: "Assess the quality of your relationship and identify areas for improvement.",
	Questions: []types.Question{
		{
			ID:   "q1",
			Text: "How satisfied are you with your current relationship?",
			Options: []types.Option{
				{Value: 5, Label: "Very satisfied"},
				{Value: 4, Label: "Satisfied"},
				{Value: 3, Label: "Neutral"},
				{Value: 2, Label: "Dissatisfied"},
				{Value: 1, Label: "Very dissatisfied"},
			},
		},
		{
			ID:   "q2",
			Text: "How well do you communicate with your partner?",
			Options: []types.Option{
				{Value: 5, Label: "Very well"},
				{Value: 4, Label: "Well"},
				{Value: 3, Label: "Neutral"},
				{Value: 2, Label: "Poorly"},
				{Value: 1, Label: "Very poorly"},
			},
		},
		{
			ID:   "q3",
			Text: "How often do you feel supported by your partner?",
			Options: []types.Option{
				{Value: 5, Label: "Always"},
				{Value: 4, Label: "Often"},
				{Value: 3, Label: "Sometimes"},
				{Value: 2, Label: "Rarely"},
				{Value: 1, Label: "Never"},
			},
		},
		{
			ID:   "q4",
			Text: "How well do you resolve conflicts together?",
			Options: []types.Option{
				{Value: 5, Label: "Very well"},
				{Value: 4, Label: "Well"},
				{Value: 3, Label: "Neutral"},
				{Value: 2, Label: "Poorly"},
				{Value: 1, Label: "Very poorly"},
			},
		},
		{
			ID:   "q5",
			Text: "How much do you trust your partner?",
			Options: []types.Option{
				{Value: 5, Label: "Completely"},
				{Value: 4, Label: "Mostly"},
				{Value: 3, Label: "Somewhat"},
				{Value: 2, Label: "A little"},
				{Value: 1, Label: "Not at all"},
			},
		},
	},
	Ranges: []types.ScoringRange{
		{Min: 5, Max: 10, Label: "Low Satisfaction", Description: "Your relationship may benefit from professional counseling and communication work."},
		{Min: 11, Max: 15, Label: "Moderate Satisfaction", Description: "There are areas for improvement. Consider relationship counseling or workshops."},
		{Min: 16, Max: 20, Label: "Good Satisfaction", Description: "Your relationship is generally healthy with room for continued growth."},
		{Min: 21, Max: 25, Label: "High Satisfaction", Description: "You have a strong, healthy relationship. Keep nurturing it!"},
	},
}
