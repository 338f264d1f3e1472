// Package scheduler runs the daily challenge and progress report as
// in-process cron jobs
package scheduler

import (
	"context"
	"time"

	"github.com/dailyenglish/backend/internal/models"
	"github.com/dailyenglish/backend/internal/services"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// ChallengeService generates the daily lesson
type ChallengeService interface {
	GenerateLesson(ctx context.Context) (*models.Lesson, error)
}

// Dispatcher fans the formatted challenge out to webhooks
type Dispatcher interface {
	SendMany(ctx context.Context, urls []string, message *models.DiscordMessage) []models.DeliveryResult
}

// ReportService posts the working-day progress report
type ReportService interface {
	SendProgressReport(ctx context.Context) (*services.ReportResult, error)
}

// Config holds the job times in "HH:MM" form
type Config struct {
	ChallengeTime string
	ReportTime    string
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler  *gocron.Scheduler
	config     Config
	challenges ChallengeService
	dispatcher Dispatcher
	reports    ReportService
	webhooks   []string
	logger     *zap.Logger
}

// New creates a new scheduler instance
func New(cfg Config, challenges ChallengeService, dispatcher Dispatcher, reports ReportService, webhooks []models.WebhookConfig, logger *zap.Logger) *Scheduler {
	urls := make([]string, 0, len(webhooks))
	for _, webhook := range webhooks {
		urls = append(urls, webhook.URL)
	}

	return &Scheduler{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     cfg,
		challenges: challenges,
		dispatcher: dispatcher,
		reports:    reports,
		webhooks:   urls,
		logger:     logger,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(1).Day().At(s.config.ChallengeTime).Do(s.runDailyChallenge); err != nil {
		return err
	}
	if _, err := s.scheduler.Every(1).Day().At(s.config.ReportTime).Do(s.runReport); err != nil {
		return err
	}

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// runDailyChallenge generates a lesson and fans it out to every configured
// webhook
func (s *Scheduler) runDailyChallenge() {
	ctx := context.Background()

	if len(s.webhooks) == 0 {
		s.logger.Warn("daily challenge job skipped: no Discord webhooks configured")
		return
	}

	lesson, err := s.challenges.GenerateLesson(ctx)
	if err != nil {
		s.logger.Error("daily challenge generation failed", zap.Error(err))
		return
	}

	message := services.FormatLesson(lesson)
	report := services.Summarize(s.dispatcher.SendMany(ctx, s.webhooks, message))

	s.logger.Info("daily challenge dispatched",
		zap.Int("total", report.Total),
		zap.Int("success", report.Success),
		zap.Int("failed", report.Failed),
	)
}

// runReport posts the working-day progress report
func (s *Scheduler) runReport() {
	result, err := s.reports.SendProgressReport(context.Background())
	if err != nil {
		s.logger.Error("progress report failed", zap.Error(err))
		return
	}

	if result.Skipped {
		s.logger.Info("progress report skipped", zap.String("day", result.DayOfWeek))
		return
	}
	s.logger.Info("progress report sent", zap.Int("working_days", result.WorkingDays))
}
