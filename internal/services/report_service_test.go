package services

import (
	"context"
	"testing"
	"time"

	"github.com/dailyenglish/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockDispatcher is a mock implementation of ReportDispatcher
type mockDispatcher struct {
	result  models.DeliveryResult
	lastURL string
	lastMsg *models.DiscordMessage
	calls   int
}

func (m *mockDispatcher) SendOne(ctx context.Context, url string, message *models.DiscordMessage) models.DeliveryResult {
	m.calls++
	m.lastURL = url
	m.lastMsg = message
	result := m.result
	result.URL = url
	return result
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestCountWorkingDays(t *testing.T) {
	// 2025-11-13 is a Thursday.
	start := date(2025, time.November, 13)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "same weekday day counts once",
			start:    start,
			end:      start,
			expected: 1,
		},
		{
			name:     "same weekend day counts zero",
			start:    date(2025, time.November, 15), // Saturday
			end:      date(2025, time.November, 15),
			expected: 0,
		},
		{
			name:     "end before start returns zero",
			start:    start,
			end:      start.AddDate(0, 0, -1),
			expected: 0,
		},
		{
			name:     "thursday to friday",
			start:    start,
			end:      date(2025, time.November, 14),
			expected: 2,
		},
		{
			name:     "full week skips the weekend",
			start:    start,
			end:      date(2025, time.November, 19), // Wednesday
			expected: 5,
		},
		{
			name:     "time of day is ignored",
			start:    time.Date(2025, time.November, 13, 23, 59, 0, 0, time.Local),
			end:      time.Date(2025, time.November, 14, 0, 1, 0, 0, time.Local),
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountWorkingDays(tt.start, tt.end))
		})
	}
}

func TestCountWorkingDays_Monotonic(t *testing.T) {
	start := date(2025, time.November, 13)

	previous := 0
	for i := 0; i < 21; i++ {
		end := start.AddDate(0, 0, i)
		count := CountWorkingDays(start, end)

		assert.GreaterOrEqual(t, count, previous, "count decreased at day %d", i)

		step := count - previous
		weekday := end.Weekday()
		if weekday == time.Saturday || weekday == time.Sunday {
			assert.Equal(t, 0, step, "weekend day %d advanced the count", i)
		} else {
			assert.Equal(t, 1, step, "weekday %d did not advance the count", i)
		}
		previous = count
	}
}

func TestReportService_SendProgressReport(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	start := date(2025, time.November, 13)

	t.Run("posts working day count on a weekday", func(t *testing.T) {
		dispatcher := &mockDispatcher{result: models.DeliveryResult{Success: true}}
		svc := NewReportService(dispatcher, "https://discord.example/webhook", start, logger)
		svc.now = func() time.Time { return date(2025, time.November, 19) } // Wednesday

		result, err := svc.SendProgressReport(context.Background())

		require.NoError(t, err)
		assert.False(t, result.Skipped)
		assert.Equal(t, 5, result.WorkingDays)
		assert.Equal(t, 1, dispatcher.calls)
		assert.Equal(t, "https://discord.example/webhook", dispatcher.lastURL)
		assert.Contains(t, dispatcher.lastMsg.Content, "**5 days**")
		assert.Contains(t, dispatcher.lastMsg.Content, "13/11/2025")
		assert.Contains(t, dispatcher.lastMsg.Content, "19/11/2025")
	})

	t.Run("skips weekends without sending", func(t *testing.T) {
		dispatcher := &mockDispatcher{result: models.DeliveryResult{Success: true}}
		svc := NewReportService(dispatcher, "https://discord.example/webhook", start, logger)
		svc.now = func() time.Time { return date(2025, time.November, 16) } // Sunday

		result, err := svc.SendProgressReport(context.Background())

		require.NoError(t, err)
		assert.True(t, result.Skipped)
		assert.Equal(t, "Sunday", result.DayOfWeek)
		assert.Equal(t, 0, dispatcher.calls)
	})

	t.Run("missing webhook URL is a configuration error", func(t *testing.T) {
		dispatcher := &mockDispatcher{result: models.DeliveryResult{Success: true}}
		svc := NewReportService(dispatcher, "", start, logger)

		_, err := svc.SendProgressReport(context.Background())

		var configErr *models.ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "REPORT_WEBHOOK_URL", configErr.Name)
	})

	t.Run("delivery failure surfaces the upstream status", func(t *testing.T) {
		dispatcher := &mockDispatcher{result: models.DeliveryResult{
			Success: false,
			Status:  429,
			Error:   "Discord API error: 429 Too Many Requests",
		}}
		svc := NewReportService(dispatcher, "https://discord.example/webhook", start, logger)
		svc.now = func() time.Time { return date(2025, time.November, 19) }

		_, err := svc.SendProgressReport(context.Background())

		var upstreamErr *models.UpstreamError
		require.ErrorAs(t, err, &upstreamErr)
		assert.Equal(t, 429, upstreamErr.Status)
		assert.Equal(t, "Discord", upstreamErr.Service)
	})
}
