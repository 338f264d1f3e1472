package services

import (
	"context"
	"encoding/json"

	"github.com/dailyenglish/backend/internal/llm"
	"github.com/dailyenglish/backend/internal/models"
	"go.uber.org/zap"
)

// GenerationConfig holds the sampling settings for lesson generation.
type GenerationConfig struct {
	MaxTokens   int
	Temperature float32
}

// DefaultGenerationConfig returns the settings used in production.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		MaxTokens:   400000,
		Temperature: 1.2,
	}
}

// lessonService obtains validated lessons and schedules from the generator
type lessonService struct {
	provider llm.Provider
	config   GenerationConfig
	logger   *zap.Logger
}

// NewLessonService creates a new lesson service
func NewLessonService(provider llm.Provider, config GenerationConfig, logger *zap.Logger) *lessonService {
	return &lessonService{
		provider: provider,
		config:   config,
		logger:   logger,
	}
}

// GenerateLesson produces one lesson for the standard daily spec
//
// The generator is called exactly once; any failure is surfaced to the
// caller, which decides whether to retry by re-invoking.
func (s *lessonService) GenerateLesson(ctx context.Context) (*models.Lesson, error) {
	return s.generate(ctx, SingleLessonSpec())
}

// GenerateCustomLesson produces one lesson built around the caller's goal
// and vocabulary lists
func (s *lessonService) GenerateCustomLesson(ctx context.Context, req models.CreateCustomChallengeRequest) (*models.Lesson, error) {
	return s.generate(ctx, CustomLessonSpec(req.Goal, req.NewVocabulary, req.ReviewVocabulary))
}

func (s *lessonService) generate(ctx context.Context, spec PromptSpec) (*models.Lesson, error) {
	system, user, schema := BuildLessonPrompt(spec)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      system,
		User:        user,
		Schema:      schema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		s.logger.Error("lesson generation failed",
			zap.String("model", s.provider.ModelID()),
			zap.Error(err),
		)
		return nil, err
	}

	lesson, err := ValidateLesson(resp.Content)
	if err != nil {
		s.logger.Error("generated lesson failed validation",
			zap.String("model", resp.Model),
			zap.Error(err),
		)
		return nil, err
	}

	return lesson, nil
}

// GenerateSchedule produces a full 15-day challenge plan
func (s *lessonService) GenerateSchedule(ctx context.Context) (*models.Schedule, error) {
	system, user, schema := BuildSchedulePrompt()

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      system,
		User:        user,
		Schema:      schema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		s.logger.Error("schedule generation failed",
			zap.String("model", s.provider.ModelID()),
			zap.Error(err),
		)
		return nil, err
	}

	schedule, err := ValidateSchedule(resp.Content)
	if err != nil {
		s.logger.Error("generated schedule failed validation",
			zap.String("model", resp.Model),
			zap.Error(err),
		)
		return nil, err
	}

	return schedule, nil
}

// ValidateLesson checks raw generator output against the lesson contract
// and returns the typed lesson when it conforms.
//
// Cross-field semantic rules (each vocabulary word literally appearing in
// the paragraph) are enforced only through prompt instructions, not here.
func ValidateLesson(raw json.RawMessage) (*models.Lesson, error) {
	if err := llm.Validate(LessonSchema, raw); err != nil {
		return nil, err
	}

	var lesson models.Lesson
	if err := json.Unmarshal(raw, &lesson); err != nil {
		return nil, &models.MalformedResponseError{Err: err}
	}
	return &lesson, nil
}

// ValidateSchedule checks raw generator output against the schedule
// contract and returns the typed schedule when it conforms.
func ValidateSchedule(raw json.RawMessage) (*models.Schedule, error) {
	if err := llm.Validate(ScheduleSchema, raw); err != nil {
		return nil, err
	}

	var schedule models.Schedule
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, &models.MalformedResponseError{Err: err}
	}
	return &schedule, nil
}
