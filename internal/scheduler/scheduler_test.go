package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/dailyenglish/backend/internal/models"
	"github.com/dailyenglish/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockChallengeService implements ChallengeService for scheduler tests.
type mockChallengeService struct {
	lesson *models.Lesson
	err    error
	calls  int
}

func (m *mockChallengeService) GenerateLesson(ctx context.Context) (*models.Lesson, error) {
	m.calls++
	return m.lesson, m.err
}

// mockDispatcher implements Dispatcher for scheduler tests.
type mockDispatcher struct {
	results     []models.DeliveryResult
	lastURLs    []string
	lastMessage *models.DiscordMessage
}

func (m *mockDispatcher) SendMany(ctx context.Context, urls []string, message *models.DiscordMessage) []models.DeliveryResult {
	m.lastURLs = urls
	m.lastMessage = message
	return m.results
}

// mockReportService implements ReportService for scheduler tests.
type mockReportService struct {
	result *services.ReportResult
	err    error
	calls  int
}

func (m *mockReportService) SendProgressReport(ctx context.Context) (*services.ReportResult, error) {
	m.calls++
	return m.result, m.err
}

func testLesson() *models.Lesson {
	return &models.Lesson{
		Goal:           "Describe daily routines",
		Tense:          "Present Simple",
		VietnameseText: "Tôi dậy sớm.",
		EnglishText:    "I wake up early.",
		NewVocabulary: []models.VocabularyItem{
			{Word: "early", Type: "adverb", Translation: "sớm"},
		},
	}
}

func newTestScheduler(challenges *mockChallengeService, dispatcher *mockDispatcher, reports *mockReportService, webhooks []models.WebhookConfig) *Scheduler {
	logger, _ := zap.NewDevelopment()
	cfg := Config{ChallengeTime: "13:00", ReportTime: "13:30"}
	return New(cfg, challenges, dispatcher, reports, webhooks, logger)
}

func TestScheduler_RunDailyChallenge(t *testing.T) {
	t.Run("fans the formatted lesson out to every webhook", func(t *testing.T) {
		challenges := &mockChallengeService{lesson: testLesson()}
		dispatcher := &mockDispatcher{
			results: []models.DeliveryResult{
				{URL: "https://discord.test/a", Success: true},
				{URL: "https://discord.test/b", Success: false, Error: "boom"},
			},
		}
		webhooks := []models.WebhookConfig{
			{Name: "class-a", URL: "https://discord.test/a"},
			{Name: "class-b", URL: "https://discord.test/b"},
		}
		s := newTestScheduler(challenges, dispatcher, &mockReportService{}, webhooks)

		s.runDailyChallenge()

		assert.Equal(t, 1, challenges.calls)
		assert.Equal(t, []string{"https://discord.test/a", "https://discord.test/b"}, dispatcher.lastURLs)

		require.NotNil(t, dispatcher.lastMessage)
		assert.Equal(t, "# 🎯 **DAILY CHALLENGE**", dispatcher.lastMessage.Content)
		require.Len(t, dispatcher.lastMessage.Embeds, 1)
		assert.Equal(t, "📅 Daily Challenge", dispatcher.lastMessage.Embeds[0].Title)
	})

	t.Run("skips entirely when no webhooks are configured", func(t *testing.T) {
		challenges := &mockChallengeService{lesson: testLesson()}
		dispatcher := &mockDispatcher{}
		s := newTestScheduler(challenges, dispatcher, &mockReportService{}, nil)

		s.runDailyChallenge()

		assert.Zero(t, challenges.calls)
		assert.Nil(t, dispatcher.lastURLs)
	})

	t.Run("generation failure does not dispatch", func(t *testing.T) {
		challenges := &mockChallengeService{err: errors.New("upstream down")}
		dispatcher := &mockDispatcher{}
		webhooks := []models.WebhookConfig{{Name: "a", URL: "https://discord.test/a"}}
		s := newTestScheduler(challenges, dispatcher, &mockReportService{}, webhooks)

		s.runDailyChallenge()

		assert.Nil(t, dispatcher.lastMessage)
	})
}

func TestScheduler_RunReport(t *testing.T) {
	tests := []struct {
		name   string
		result *services.ReportResult
		err    error
	}{
		{name: "report sent", result: &services.ReportResult{WorkingDays: 5, DayOfWeek: "Wednesday"}},
		{name: "weekend skip", result: &services.ReportResult{Skipped: true, DayOfWeek: "Sunday"}},
		{name: "delivery failure", err: &models.UpstreamError{Service: "Discord", Status: 429}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reports := &mockReportService{result: tt.result, err: tt.err}
			s := newTestScheduler(&mockChallengeService{}, &mockDispatcher{}, reports, nil)

			s.runReport()

			assert.Equal(t, 1, reports.calls)
		})
	}
}

func TestScheduler_Start(t *testing.T) {
	t.Run("registers both jobs and stops cleanly", func(t *testing.T) {
		s := newTestScheduler(&mockChallengeService{}, &mockDispatcher{}, &mockReportService{}, nil)

		require.NoError(t, s.Start())
		defer s.Stop()

		assert.Len(t, s.scheduler.Jobs(), 2)
	})

	t.Run("rejects a malformed job time", func(t *testing.T) {
		logger, _ := zap.NewDevelopment()
		s := New(
			Config{ChallengeTime: "not-a-time", ReportTime: "13:30"},
			&mockChallengeService{}, &mockDispatcher{}, &mockReportService{}, nil, logger,
		)

		assert.Error(t, s.Start())
	})
}
