package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dailyenglish/backend/internal/models"
)

const (
	// challengeBanner is the top-level message content above the embed.
	challengeBanner = "# 🎯 **DAILY CHALLENGE**"

	// challengeColor is the brand color of challenge embeds.
	challengeColor = 0x0C8C5F

	// challengeFooter reminds readers not to peek at the sample answer.
	challengeFooter = "\n\nNote: Make sure to translate the sentence into English before revealing the sample translation."

	// dictionaryBaseURL is the lookup target for vocabulary links.
	dictionaryBaseURL = "https://dictionary.cambridge.org/vi/dictionary/english/"

	// spacerValue is a zero-width space used as a vertical separator
	// between content blocks.
	spacerValue = "​"
)

// FormatLesson converts a lesson into a Discord message for the generic
// daily challenge post.
func FormatLesson(lesson *models.Lesson) *models.DiscordMessage {
	return buildChallengeMessage(
		lesson,
		"📅 Daily Challenge",
		"Write a short paragraph every day with the intention of practicing regularly",
	)
}

// FormatDayChallenge converts one day of a schedule into a Discord message
// titled with its day number.
func FormatDayChallenge(day *models.DayChallenge) *models.DiscordMessage {
	lesson := day.Lesson()
	return buildChallengeMessage(
		&lesson,
		fmt.Sprintf("📅 Day %d Challenge", day.Day),
		fmt.Sprintf("Translate the following sentence into English using the **%s**!", day.Tense),
	)
}

// buildChallengeMessage assembles the embed with the fixed field order:
// new vocabulary, review vocabulary, sentence to translate, sample
// translation. Each present block is preceded by a spacer field; empty
// blocks contribute nothing.
func buildChallengeMessage(lesson *models.Lesson, title, description string) *models.DiscordMessage {
	var fields []models.DiscordField

	appendBlock := func(name, value string) {
		fields = append(fields,
			models.DiscordField{Name: "", Value: spacerValue},
			models.DiscordField{Name: name, Value: value},
		)
	}

	if text := formatNewVocabulary(lesson.NewVocabulary); text != "" {
		appendBlock("📚 Today's New Vocabulary", text)
	}

	if text := formatReviewVocabulary(lesson.ReviewVocabulary); text != "" {
		appendBlock("🔄 Review Vocabulary", text)
	}

	if lesson.VietnameseText != "" {
		appendBlock("📝 Sentence to Translate", fmt.Sprintf("```%s```", lesson.VietnameseText))
	}

	if lesson.EnglishText != "" {
		// Spoiler markers hide the sample until clicked.
		appendBlock("✅ Sample Translation (Click to reveal)", fmt.Sprintf("||```%s```||", lesson.EnglishText))
	}

	return &models.DiscordMessage{
		Content: challengeBanner,
		Embeds: []models.DiscordEmbed{
			{
				Title:       title,
				Description: description,
				Color:       challengeColor,
				Fields:      fields,
				Footer:      models.DiscordFooter{Text: challengeFooter},
			},
		},
	}
}

// formatNewVocabulary renders one line per entry, each word as a markdown
// dictionary link followed by its type and translation.
func formatNewVocabulary(items []models.VocabularyItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("[**%s**](%s) (%s): %s",
			item.Word, dictionaryURL(item.Word), item.Type, item.Translation))
	}
	return strings.Join(lines, "\n")
}

// formatReviewVocabulary renders the review words as markdown links joined
// by commas.
func formatReviewVocabulary(words []string) string {
	links := make([]string, 0, len(words))
	for _, word := range words {
		links = append(links, fmt.Sprintf("[**%s**](%s)", word, dictionaryURL(word)))
	}
	return strings.Join(links, ", ")
}

// dictionaryURL builds a Cambridge dictionary lookup URL for a word. The
// word is lower-cased and percent-encoded as a path segment (spaces become
// %20); the link label keeps the original casing.
func dictionaryURL(word string) string {
	normalized := strings.ToLower(strings.TrimSpace(word))
	return dictionaryBaseURL + url.PathEscape(normalized)
}
