package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/dailyenglish/backend/internal/models"
	"go.uber.org/zap"
)

// discordService delivers Discord messages to webhook URLs
type discordService struct {
	client *http.Client
	logger *zap.Logger
}

// NewDiscordService creates a new Discord delivery service
func NewDiscordService(client *http.Client, logger *zap.Logger) *discordService {
	if client == nil {
		client = http.DefaultClient
	}
	return &discordService{
		client: client,
		logger: logger,
	}
}

// SendOne posts a message to a single webhook URL.
//
// Delivery failures (non-2xx responses and network errors) are captured in
// the result instead of being returned as errors, so a batch send never
// aborts on one bad destination.
func (s *discordService) SendOne(ctx context.Context, url string, message *models.DiscordMessage) models.DeliveryResult {
	result := models.DeliveryResult{URL: url}

	body, err := json.Marshal(message)
	if err != nil {
		result.Error = fmt.Sprintf("failed to encode message: %v", err)
		return result
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		result.Error = fmt.Sprintf("failed to build request: %v", err)
		return result
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("discord webhook request failed", zap.String("url", url), zap.Error(err))
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	result.Status = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errText, _ := io.ReadAll(resp.Body)
		s.logger.Error("discord webhook rejected message",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(errText)),
		)
		// resp.Status already includes the numeric code, e.g. "401 Unauthorized".
		result.Error = fmt.Sprintf("Discord API error: %s", resp.Status)
		return result
	}

	result.Success = true
	return result
}

// SendMany posts the same message to every URL concurrently and waits for
// all deliveries. One URL's failure never cancels or blocks another's
// delivery. An empty URL list returns an empty slice without any network
// call.
func (s *discordService) SendMany(ctx context.Context, urls []string, message *models.DiscordMessage) []models.DeliveryResult {
	results := make([]models.DeliveryResult, len(urls))

	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			results[i] = s.SendOne(ctx, url, message)
		}(i, url)
	}
	wg.Wait()

	return results
}

// Summarize aggregates per-URL results into a report with a human-readable
// success count.
func Summarize(results []models.DeliveryResult) models.DeliveryReport {
	report := models.DeliveryReport{
		Total:   len(results),
		Details: results,
	}
	for _, r := range results {
		if r.Success {
			report.Success++
		}
	}
	report.Failed = report.Total - report.Success
	return report
}
