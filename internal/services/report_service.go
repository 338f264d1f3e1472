package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dailyenglish/backend/internal/models"
	"go.uber.org/zap"
)

// ReportDispatcher is the interface the report service uses to deliver the
// progress message
type ReportDispatcher interface {
	// SendOne posts a message to a single webhook URL.
	//
	// Delivery failures are captured in the result, never returned as errors.
	SendOne(ctx context.Context, url string, message *models.DiscordMessage) models.DeliveryResult
}

// ReportResult describes the outcome of one progress-report run
type ReportResult struct {
	Skipped     bool   `json:"skipped"`
	DayOfWeek   string `json:"dayOfWeek"`
	WorkingDays int    `json:"workingDays,omitempty"`
	Message     string `json:"message,omitempty"`
}

// reportService posts a working-day progress message to a fixed webhook
type reportService struct {
	dispatcher ReportDispatcher
	webhookURL string
	startDate  time.Time
	now        func() time.Time
	logger     *zap.Logger
}

// NewReportService creates a new report service. The now function defaults
// to time.Now and exists so tests can pin the clock.
func NewReportService(dispatcher ReportDispatcher, webhookURL string, startDate time.Time, logger *zap.Logger) *reportService {
	return &reportService{
		dispatcher: dispatcher,
		webhookURL: webhookURL,
		startDate:  startDate,
		now:        time.Now,
		logger:     logger,
	}
}

// SendProgressReport computes the working-day count since the start date
// and posts it to the configured webhook. On Saturdays and Sundays the run
// is skipped entirely and no message is sent.
func (s *reportService) SendProgressReport(ctx context.Context) (*ReportResult, error) {
	if s.webhookURL == "" {
		return nil, &models.ConfigurationError{Name: "REPORT_WEBHOOK_URL"}
	}

	today := s.now()
	weekday := today.Weekday()

	if weekday == time.Saturday || weekday == time.Sunday {
		s.logger.Info("skipping progress report on weekend", zap.String("day", weekday.String()))
		return &ReportResult{
			Skipped:   true,
			DayOfWeek: weekday.String(),
		}, nil
	}

	workingDays := CountWorkingDays(s.startDate, today)
	message := fmt.Sprintf(
		"📅 **Translation Practice Progress Report**\nStart date: %s\nToday: %s\nTotal days practiced: **%d days**",
		s.startDate.Format("02/01/2006"),
		today.Format("02/01/2006"),
		workingDays,
	)

	result := s.dispatcher.SendOne(ctx, s.webhookURL, &models.DiscordMessage{Content: message})
	if !result.Success {
		s.logger.Error("failed to deliver progress report", zap.String("error", result.Error))
		return nil, &models.UpstreamError{
			Service: "Discord",
			Status:  result.Status,
			Body:    result.Error,
		}
	}

	return &ReportResult{
		DayOfWeek:   weekday.String(),
		WorkingDays: workingDays,
		Message:     message,
	}, nil
}

// CountWorkingDays counts the weekdays (Monday through Friday) between
// start and end, inclusive of both. Both dates are normalized to midnight
// local time first. When end precedes start the count is 0.
func CountWorkingDays(start, end time.Time) int {
	current := truncateToDay(start)
	last := truncateToDay(end)

	count := 0
	for !current.After(last) {
		weekday := current.Weekday()
		if weekday != time.Saturday && weekday != time.Sunday {
			count++
		}
		current = current.AddDate(0, 0, 1)
	}
	return count
}

// truncateToDay drops the time-of-day portion, keeping the location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
