package models

import "fmt"

// ConfigurationError indicates a required credential or URL is not configured.
type ConfigurationError struct {
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured", e.Name)
}

// UpstreamError indicates a non-2xx response from an external service.
// It carries the upstream status code and raw error body.
type UpstreamError struct {
	Service string
	Status  int
	Body    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error: status %d: %s", e.Service, e.Status, e.Body)
}

// EmptyResponseError indicates the generator returned no completion content.
type EmptyResponseError struct{}

func (e *EmptyResponseError) Error() string {
	return "generator returned no content"
}

// MalformedResponseError indicates the completion content is not parseable JSON.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("generator returned malformed JSON: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// ValidationError indicates parsed content does not satisfy the expected
// contract shape. Path points at the offending field when known.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("validation failed at %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
