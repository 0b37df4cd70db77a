// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"time"

	"github.com/mdmze/advice-engine/pkg/types"
)

// SeedArticles returns the development sample content: two featured
// articles with one reference each.
func SeedArticles() []types.Article {
	return []types.Article{
		{
			ID:    "sample_1",
			Title: "Understanding Child Development Milestones: A Parent's Guide",
			Content: `# Understanding Child Development Milestones: A Parent's Guide

Child development milestones are key indicators of your child's growth and development. Understanding these milestones can help parents support their child's learning and identify any potential concerns early.

## What Are Developmental Milestones?

Developmental milestones are skills or abilities that most children can do by a certain age. These include physical, cognitive, social, and emotional development areas.

## Key Milestones by Age

### 0-12 Months
- **Physical**: Lifts head, rolls over, sits without support
- **Cognitive**: Recognizes familiar faces, responds to name
- **Social**: Smiles at people, shows stranger anxiety

### 1-2 Years
- **Physical**: Walks independently, climbs stairs
- **Cognitive**: Says 10-20 words, follows simple instructions
- **Social**: Plays alongside other children, shows independence

### 2-3 Years
- **Physical**: Runs, jumps, uses utensils
- **Cognitive**: Speaks in 2-3 word sentences, sorts objects
- **Social**: Shows empathy, engages in pretend play

## Supporting Your Child's Development

1. **Provide a safe environment** for exploration
2. **Engage in interactive play** and conversation
3. **Read together** daily to support language development
4. **Encourage independence** while providing support
5. **Celebrate achievements** to build confidence

## When to Seek Help

If your child consistently misses milestones or shows regression, consult with your pediatrician or a child development specialist.

## Conclusion

Every child develops at their own pace, but understanding typical milestones helps parents provide appropriate support and identify when additional help might be needed.`,
			Summary:     "A comprehensive guide to understanding child development milestones and how parents can support their child's growth and development.",
			PublishDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:      types.StatusFeatured,
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"child development", "milestones", "parenting", "growth"},
			Category:    "Child Development",
			References: []types.Reference{
				{
					ID:            "ref_1",
					ArticleID:     "sample_1",
					Title:         "Developmental Milestones in Early Childhood",
					URL:           "https://pediatrics.org/guidelines/developmental-milestones",
					Quote:         "Developmental milestones are key indicators of healthy child development and should be monitored regularly.",
					Domain:        "pediatrics.org",
					PublishedDate: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
				},
			},
		},
		{
			ID:    "sample_2",
			Title: "Positive Discipline Strategies for Toddlers",
			Content: `# Positive Discipline Strategies for Toddlers

Disciplining toddlers can be challenging, but positive discipline strategies can help guide your child's behavior while maintaining a strong parent-child relationship.

## Understanding Toddler Behavior

Toddlers are learning to express themselves and test boundaries. Their behavior is often driven by curiosity, frustration, or the need for attention.

## Positive Discipline Techniques

### 1. Set Clear Expectations
- Use simple, clear language
- Be consistent with rules
- Explain consequences calmly

### 2. Redirect and Distract
- Guide your child to appropriate activities
- Offer alternatives to unwanted behavior
- Use positive language

### 3. Time-In Instead of Time-Out
- Stay with your child during difficult moments
- Help them process their emotions
- Teach calming strategies

### 4. Natural Consequences
- Let children experience the natural results of their actions
- Ensure safety while allowing learning
- Discuss what happened afterward

## Building Emotional Intelligence

Help your toddler understand and express emotions:
- Name emotions as they occur
- Validate their feelings
- Teach appropriate ways to express frustration

## Consistency is Key

Consistent application of discipline strategies helps children understand expectations and feel secure in their environment.

## Conclusion

Positive discipline focuses on teaching rather than punishing, helping toddlers develop self-control and emotional regulation skills.`,
			Summary:     "Learn effective positive discipline strategies for toddlers that promote good behavior while strengthening the parent-child relationship.",
			PublishDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Status:      types.StatusFeatured,
			CreatedAt:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Tags:        []string{"discipline", "toddlers", "positive parenting", "behavior"},
			Category:    "Parenting Strategies",
			References: []types.Reference{
				{
					ID:            "ref_2",
					ArticleID:     "sample_2",
					Title:         "Positive Discipline in Early Childhood",
					URL:           "https://apa.org/psychology/positive-discipline",
					Quote:         "Positive discipline strategies promote healthy child development and strengthen parent-child relationships.",
					Domain:        "apa.org",
					PublishedDate: time.Date(2023, 11, 15, 0, 0, 0, 0, time.UTC),
				},
			},
		},
	}
}
