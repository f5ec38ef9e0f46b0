package transcribe

import (
	"context"
	"time"

	"github.com/govassist/ml-service/internal/latency"
)

// DefaultMockDelay is how long MockProvider pretends to work.
const DefaultMockDelay = 2 * time.Second

const mockTranscript = "Discussion about the upcoming budget allocation for the new district projects. " +
	"Review of the timeline for the road expansion in Visakhapatnam. " +
	"Action items include preparing the detailed report by next Friday."

// MockProvider returns a fixed meeting transcript after a simulated delay.
// The audio itself is ignored.
type MockProvider struct {
	delay time.Duration
}

// NewMockProvider creates a mock provider. A zero delay returns immediately.
func NewMockProvider(delay time.Duration) *MockProvider {
	return &MockProvider{delay: delay}
}

func (p *MockProvider) Name() string  { return "mock" }
func (p *MockProvider) Model() string { return "simulated" }

// Transcribe waits out the configured delay, or until ctx is done.
func (p *MockProvider) Transcribe(ctx context.Context, audio Audio) (*Response, error) {
	if err := latency.Simulate(ctx, p.delay); err != nil {
		return nil, err
	}
	return &Response{
		Text:       mockTranscript,
		Confidence: 0.92,
		Language:   "en-IN",
	}, nil
}
