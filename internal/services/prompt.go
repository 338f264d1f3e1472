package services

import (
	"fmt"
	"strings"

	"github.com/dailyenglish/backend/internal/llm"
)

// PromptSpec parameterizes lesson prompt construction. All builders are
// pure; no I/O happens until the generation client is invoked.
type PromptSpec struct {
	// Band is the target IELTS band, e.g. "5.0".
	Band string

	// ParagraphWordRange bounds the paragraph length in words.
	ParagraphWordRange [2]int

	// VocabCountRange bounds the number of new vocabulary words.
	VocabCountRange [2]int

	// TopicPool is the list of topics the generator picks from. Ignored
	// when a Goal is set.
	TopicPool []string

	// Goal is a caller-supplied lesson goal for custom lessons.
	Goal string

	// CustomNewVocabulary and CustomReviewVocabulary pin specific words
	// the generated paragraphs must include.
	CustomNewVocabulary    []string
	CustomReviewVocabulary []string
}

// SingleLessonSpec returns the spec for the standard daily lesson.
func SingleLessonSpec() PromptSpec {
	return PromptSpec{
		Band:               "5.0",
		ParagraphWordRange: [2]int{35, 50},
		VocabCountRange:    [2]int{4, 6},
		TopicPool:          MediumTopics,
	}
}

// CustomLessonSpec returns the spec for a lesson built around
// user-provided vocabulary.
func CustomLessonSpec(goal string, newVocabulary, reviewVocabulary []string) PromptSpec {
	return PromptSpec{
		Band:                   "6.0",
		ParagraphWordRange:     [2]int{45, 55},
		VocabCountRange:        [2]int{4, 6},
		Goal:                   goal,
		CustomNewVocabulary:    newVocabulary,
		CustomReviewVocabulary: reviewVocabulary,
	}
}

// BuildLessonPrompt assembles the system prompt, user prompt and
// structured-output schema for a single-lesson generation.
func BuildLessonPrompt(spec PromptSpec) (system, user string, schema *llm.Schema) {
	system = fmt.Sprintf(
		"You are a English teacher creating a lesson to practice translating paragraphs at IELTS band %s.",
		spec.Band,
	)

	var b strings.Builder

	fmt.Fprintf(&b, "Create a Vietnamese to English translation lesson for IELTS %s.\n\n", spec.Band)

	if spec.Goal != "" {
		fmt.Fprintf(&b, "Lesson Goal: %s\n\n", spec.Goal)
		b.WriteString("Topic Selection:\n")
		b.WriteString("- You can choose any topic that fits the lesson goal\n")
	} else {
		b.WriteString("Topic Selection:\n")
		b.WriteString("- Choose random topic from the list below and go deeper into the topic and make it more complex (ensure variety across lessons):\n")
		for _, topic := range spec.TopicPool {
			fmt.Fprintf(&b, "  * %s\n", topic)
		}
	}
	b.WriteString("- The selected topic should be clearly reflected in the content of both Vietnamese and English paragraphs\n\n")

	b.WriteString("Lesson Structure:\n")
	fmt.Fprintf(&b, "- Include a short paragraph (%d-%d words) in Vietnamese with its English translation\n",
		spec.ParagraphWordRange[0], spec.ParagraphWordRange[1])
	b.WriteString("- Use appropriate tenses (can be a single tense or mixed tenses, label as \"Mixed Tenses\" if multiple)\n")
	fmt.Fprintf(&b, "- Focus on IELTS Writing Task 2 style at band %s complexity\n", spec.Band)
	b.WriteString("- Keep paragraph complex but meaningful\n")
	b.WriteString("- Content must be relevant to the selected topic\n\n")

	b.WriteString("Vocabulary Requirements:")
	if len(spec.CustomNewVocabulary) > 0 {
		fmt.Fprintf(&b, "\n- New vocabulary words to include: %s", strings.Join(spec.CustomNewVocabulary, ", "))
	}
	if len(spec.CustomReviewVocabulary) > 0 {
		fmt.Fprintf(&b, "\n- Review vocabulary words to include: %s", strings.Join(spec.CustomReviewVocabulary, ", "))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "- Select at least %d and not over %d new vocabulary words that appear naturally in the English paragraph\n",
		spec.VocabCountRange[0], spec.VocabCountRange[1])
	b.WriteString("- Each new word must be present in the englishText paragraph\n")
	b.WriteString("- The Vietnamese translation of each new word must appear in the vietnameseText paragraph\n")
	b.WriteString("- Any word that belongs to CEFR level B1, B2, C1, or C2 MUST be included in newVocabulary (can ignore A1 and A2 level words if it's not relevant to the topic)\n")
	b.WriteString("- For verbs: always use the infinitive form (base form) in vocabulary lists, even if the paragraph uses conjugated forms\n")
	b.WriteString("  Example: if the paragraph contains \"played\", \"playing\", or \"plays\", the vocabulary word should be \"play\"\n")
	b.WriteString("- Review vocabulary is optional (can be empty array)")

	return system, b.String(), LessonSchema
}

// BuildSchedulePrompt assembles the prompt triple for a full 15-day
// challenge. The schedule shape is fixed: 15 days, milestone summaries on
// days 5, 10 and 15, phrasal verbs from day 11 on.
func BuildSchedulePrompt() (system, user string, schema *llm.Schema) {
	system = "You are a English teacher creating a 15-day challenge to practice translating paragraphs at IELTS band 5.0."

	user = `Create a 15-day Vietnamese to English translation course for IELTS 5.0.

Course Structure:
- Each day includes a short paragraph (20-40 words) in Vietnamese with its English translation
- Cover 12 tenses across 15 days (mix tenses when appropriate, label as "Mixed Tenses")
- Focus on IELTS Writing Task 2 style at band 5.0 complexity
- Keep paragraphs concise but meaningful

Vocabulary Requirements:
- Select 3 new vocabulary words per day that appear naturally in the English paragraph
- Each new word must be present in the englishText paragraph
- The Vietnamese translation of each new word must appear in the vietnameseText paragraph
- For verbs: always use the infinitive form (base form) in vocabulary lists, even if the paragraph uses conjugated forms
  Example: if the paragraph contains "played", "playing", or "plays", the vocabulary word should be "play"
- Include 3 review words from the previous 5 days (also in infinitive form if verbs)
- From day 11-15, include phrasal verbs (e.g., take care of, look for) in the new vocabulary

Milestones:
- Days 5 and 10: summary paragraph covering the last 5 days
- Day 15: final summary paragraph consolidating all knowledge

Learning Goals:
- Accurate translation with 80% accuracy target
- Memorize 70% of vocabulary words`

	return system, user, ScheduleSchema
}
