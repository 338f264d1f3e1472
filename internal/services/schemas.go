package services

import "github.com/dailyenglish/backend/internal/llm"

// vocabularyItemSchema describes one entry of the newVocabulary array.
// Shared between the lesson and schedule schemas.
var vocabularyItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"word": map[string]any{
			"type":        "string",
			"description": "A word from the englishText paragraph that students will learn. If the word is a verb, use the infinitive form (base form), not conjugated forms. For example, if the paragraph contains 'played', use 'play'",
		},
		"type": map[string]any{
			"type":        "string",
			"description": "The type of the word (e.g. noun, verb, adjective, adverb, preposition, conjunction, interjection)",
		},
		"translation": map[string]any{
			"type":        "string",
			"description": "The translation of the word in Vietnamese",
		},
	},
	"required":             []any{"word", "type", "translation"},
	"additionalProperties": false,
}

// LessonSchema defines the JSON schema for single-lesson generation.
// It is sent to the generator as the structured-output contract and reused
// to validate the returned content.
var LessonSchema = &llm.Schema{
	Name: "lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"goal": map[string]any{
				"type":        "string",
				"description": "Goal of the lesson",
			},
			"tense": map[string]any{
				"type":        "string",
				"description": "Tense used (or 'Mixed Tenses' if multiple)",
			},
			"vietnameseText": map[string]any{
				"type":        "string",
				"description": "Vietnamese short paragraph to translate. Must naturally include the Vietnamese translations corresponding to all words in newVocabulary",
			},
			"englishText": map[string]any{
				"type":        "string",
				"description": "English short paragraph. Must naturally include all words from newVocabulary within the paragraph",
			},
			"newVocabulary": map[string]any{
				"type":        "array",
				"items":       vocabularyItemSchema,
				"description": "List of at least 4 and not over 6 new vocabulary words. Each word must appear in the englishText paragraph, and its Vietnamese translation must appear in the vietnameseText paragraph. MANDATORY: All words at CEFR level B1, B2, C1, or C2 in the paragraph must be included. Verbs must be in infinitive form (base form)",
			},
			"reviewVocabulary": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "List of old vocabulary to review (optional, can be empty array). If a word is a verb, use the infinitive form (base form), not conjugated forms",
			},
		},
		"required": []any{
			"goal",
			"tense",
			"vietnameseText",
			"englishText",
			"newVocabulary",
			"reviewVocabulary",
		},
		"additionalProperties": false,
	},
}

// ScheduleSchema defines the JSON schema for 15-day schedule generation.
var ScheduleSchema = &llm.Schema{
	Name: "schedule",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"days": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"day": map[string]any{
							"type":        "number",
							"description": "Day number from 1 to 15",
						},
						"goal": map[string]any{
							"type":        "string",
							"description": "Goal of the day",
						},
						"tense": map[string]any{
							"type":        "string",
							"description": "Tense used (or 'Mixed Tenses' if multiple)",
						},
						"vietnameseText": map[string]any{
							"type":        "string",
							"description": "Vietnamese short paragraph (20-40 words) to translate. Must naturally include the Vietnamese translations corresponding to all words in newVocabulary",
						},
						"englishText": map[string]any{
							"type":        "string",
							"description": "English short paragraph (20-40 words). Must naturally include all words from newVocabulary within the paragraph",
						},
						"newVocabulary": map[string]any{
							"type":        "array",
							"items":       vocabularyItemSchema,
							"description": "List of 3 new vocabulary words per day. Each word must appear in the englishText paragraph, and its Vietnamese translation must appear in the vietnameseText paragraph. Verbs must be in infinitive form (base form)",
						},
						"reviewVocabulary": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "List of old vocabulary to review (3 words per day). If a word is a verb, use the infinitive form (base form), not conjugated forms",
						},
					},
					"required": []any{
						"day",
						"goal",
						"tense",
						"vietnameseText",
						"englishText",
						"newVocabulary",
						"reviewVocabulary",
					},
					"additionalProperties": false,
				},
				"description": "List of 15 days challenge",
			},
		},
		"required":             []any{"days"},
		"additionalProperties": false,
	},
}
