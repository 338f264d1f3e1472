package models

// VocabularyItem represents one taught word in a lesson
type VocabularyItem struct {
	Word        string `json:"word"`
	Type        string `json:"type"`
	Translation string `json:"translation"`
}

// Lesson represents a single translation practice exercise
type Lesson struct {
	Goal             string           `json:"goal"`
	Tense            string           `json:"tense"`
	VietnameseText   string           `json:"vietnameseText"`
	EnglishText      string           `json:"englishText"`
	NewVocabulary    []VocabularyItem `json:"newVocabulary"`
	ReviewVocabulary []string         `json:"reviewVocabulary"`
}

// DayChallenge represents one day of a 15-day schedule
type DayChallenge struct {
	Day              int              `json:"day"`
	Goal             string           `json:"goal"`
	Tense            string           `json:"tense"`
	VietnameseText   string           `json:"vietnameseText"`
	EnglishText      string           `json:"englishText"`
	NewVocabulary    []VocabularyItem `json:"newVocabulary"`
	ReviewVocabulary []string         `json:"reviewVocabulary"`
}

// Lesson returns the lesson content of the day without its position
func (d DayChallenge) Lesson() Lesson {
	return Lesson{
		Goal:             d.Goal,
		Tense:            d.Tense,
		VietnameseText:   d.VietnameseText,
		EnglishText:      d.EnglishText,
		NewVocabulary:    d.NewVocabulary,
		ReviewVocabulary: d.ReviewVocabulary,
	}
}

// Schedule represents a full 15-day challenge plan
type Schedule struct {
	Days []DayChallenge `json:"days"`
}

// CreateCustomChallengeRequest represents a request to generate a lesson
// around user-provided vocabulary
type CreateCustomChallengeRequest struct {
	Goal             string   `json:"goal"`
	NewVocabulary    []string `json:"newVocabulary"`
	ReviewVocabulary []string `json:"reviewVocabulary"`
}
