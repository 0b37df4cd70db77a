// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package research

import "strings"

// maxFollowUps caps the follow-up question list shown after an answer.
const maxFollowUps = 4

// personalPhrases flag a question as describing the asker's own family
// situation rather than a general topic. Matched case-insensitively.
var personalPhrases = []string{
	"my child", "my son", "my daughter",
	"i have", "i am", "we are", "our family",
	"my situation", "my experience",
	"what should i do", "how can i help",
	"my kid", "my toddler", "my baby",
}

// IsPersonal reports whether the query reads as a first-person family
// question.
func IsPersonal(query string) bool {
	q := strings.ToLower(query)
	for _, phrase := range personalPhrases {
		if strings.Contains(q, phrase) {
			return true
		}
	}
	return false
}

// personalFollowUps are the supportive meta-questions offered after a
// personal question, regardless of topic.
var personalFollowUps = []string{
	"Can you help me with a specific situation?",
	"What if this approach doesn't work for my family?",
	"How do I know if I'm on the right track?",
	"What should I do if things get worse?",
	"Can you give me more specific steps?",
	"What if my partner has a different approach?",
	"How do I stay consistent with this?",
	"What are some warning signs to watch for?",
}

// topicGroup routes a general question to its follow-up set. Groups are
// checked in order; the first keyword hit wins.
type topicGroup struct {
	keywords  []string
	followUps []string
}

var topicGroups = []topicGroup{
	{
		keywords: []string{"tantrum", "temper"},
		followUps: []string{
			"What are the warning signs before a tantrum starts?",
			"How can I prevent tantrums in public places?",
			"When should I seek professional help for tantrums?",
			"What's the difference between normal and concerning tantrum behavior?",
		},
	},
	{
		keywords: []string{"sleep", "bedtime"},
		followUps: []string{
			"How much sleep does my child need at different ages?",
			"What if my child refuses to go to bed?",
			"How can I handle night wakings?",
			"What are the effects of insufficient sleep on children?",
		},
	},
	{
		keywords: []string{"screen", "digital"},
		followUps: []string{
			"What are the recommended screen time limits by age?",
			"How can I make screen time more educational?",
			"What are the signs of screen addiction in children?",
			"How does screen time affect sleep and behavior?",
		},
	},
	{
		keywords: []string{"discipline", "behavior"},
		followUps: []string{
			"What's the difference between discipline and punishment?",
			"How can I use positive reinforcement effectively?",
			"What are age-appropriate consequences?",
			"How do I handle aggressive behavior in children?",
		},
	},
	{
		keywords: []string{"development", "learning"},
		followUps: []string{
			"What are the key developmental milestones?",
			"How can I support my child's learning at home?",
			"What are signs of developmental delays?",
			"How does play contribute to development?",
		},
	},
}

// genericFollowUps are offered when no topic group matches.
var genericFollowUps = []string{
	"What does the latest research say about this?",
	"Are there any age-specific considerations?",
	"What are common mistakes parents make?",
	"When should I consult a professional?",
}

// FollowUps selects up to four follow-up questions for a query. Personal
// questions get the supportive set; general questions are routed by topic
// keyword, falling back to the generic set. Pure table lookup, no ranking.
func FollowUps(query string, personal bool) []string {
	if personal {
		return clip(personalFollowUps)
	}
	q := strings.ToLower(query)
	for _, group := range topicGroups {
		for _, kw := range group.keywords {
			if strings.Contains(q, kw) {
				return clip(group.followUps)
			}
		}
	}
	return clip(genericFollowUps)
}

func clip(qs []string) []string {
	if len(qs) > maxFollowUps {
		qs = qs[:maxFollowUps]
	}
	out := make([]string, len(qs))
	copy(out, qs)
	return out
}
