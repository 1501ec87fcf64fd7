package llm

import (
	"context"
	"sync"
	"time"
)

// MockDelay is the fixed artificial latency of mock generations, simulating a
// round trip to the provider without making one. Content stays deterministic.
const MockDelay = 400 * time.Millisecond

// MockClient is a deterministic Client used in mock mode and in tests. It
// returns a fixed response (or error) and records every prompt it receives.
type MockClient struct {
	Response string
	Err      error
	Delay    time.Duration

	mu      sync.Mutex
	prompts []string
}

// NewMockClient creates a MockClient with the standard artificial delay
func NewMockClient() *MockClient {
	return &MockClient{Delay: MockDelay}
}

// WithResponse sets the canned response and returns the client for chaining
func (m *MockClient) WithResponse(response string) *MockClient {
	m.Response = response
	return m
}

// GenerateContent records the prompt and returns the canned response after the
// configured delay
func (m *MockClient) GenerateContent(ctx context.Context, prompt string, _ ModelTier) (string, error) {
	m.record(prompt)
	if err := sleep(ctx, m.Delay); err != nil {
		return "", err
	}
	return m.Response, m.Err
}

// GenerateJSON behaves like GenerateContent; callers are responsible for
// providing JSON-shaped canned responses
func (m *MockClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := m.GenerateContent(ctx, prompt, tier)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// Close is a no-op
func (m *MockClient) Close() error { return nil }

// Prompts returns a copy of every prompt received so far
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

func (m *MockClient) record(prompt string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
