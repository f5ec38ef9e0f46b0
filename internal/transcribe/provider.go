// Package transcribe defines the speech-to-text boundary and the simulated
// provider used until a real recognizer is attached.
package transcribe

import "context"

// Provider is the interface for speech-to-text backends.
type Provider interface {
	Transcribe(ctx context.Context, audio Audio) (*Response, error)
	Name() string  // "mock"
	Model() string // model identifier for logs
}

// Audio is an uploaded recording. Data may be empty when the client sent
// no file.
type Audio struct {
	Filename string
	Data     []byte
}

// Response is the common transcription result from any provider.
type Response struct {
	Text       string  `json:"transcription"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
}
