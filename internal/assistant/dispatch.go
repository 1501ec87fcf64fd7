package assistant

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dkowalski/resume-analyzer/internal/llm"
	"github.com/dkowalski/resume-analyzer/internal/schemas"
)

// Result is the outcome of one feature dispatch. JSON-producing features
// (ats_analysis) fill Text with the validated JSON document.
type Result struct {
	RequestID string  `json:"request_id"`
	Feature   Feature `json:"feature"`
	Text      string  `json:"text"`
}

// Assistant routes feature requests either to the external provider or, in
// mock mode, to the canned per-feature templates.
type Assistant struct {
	client   llm.Client
	validate *validator.Validate
	mock     bool
}

// New creates an Assistant backed by a provider client
func New(client llm.Client) *Assistant {
	return &Assistant{
		client:   client,
		validate: validator.New(),
	}
}

// NewMock creates an Assistant that serves canned responses without a
// provider. Responses are deterministic but delivered after a fixed
// artificial delay, mimicking the real round trip.
func NewMock() *Assistant {
	return &Assistant{
		client:   llm.NewMockClient(),
		validate: validator.New(),
		mock:     true,
	}
}

// Run validates the payload, builds the feature's prompt, and executes it.
// Each call gets a fresh request ID regardless of outcome.
func (a *Assistant) Run(ctx context.Context, feature Feature, payload any) (*Result, error) {
	if err := a.validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", feature, err)
	}

	prompt, err := buildPrompt(feature, payload)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RequestID: uuid.NewString(),
		Feature:   feature,
	}

	text, err := a.execute(ctx, feature, prompt)
	if err != nil {
		return nil, err
	}

	if feature == FeatureATSAnalysis {
		if err := schemas.ValidateATSAnalysis([]byte(text)); err != nil {
			return nil, fmt.Errorf("provider returned malformed analysis: %w", err)
		}
	}

	result.Text = text
	return result, nil
}

func (a *Assistant) execute(ctx context.Context, feature Feature, prompt string) (string, error) {
	if a.mock {
		// The mock client carries the artificial delay and prompt recording;
		// the canned content is keyed by feature, not derived from the prompt.
		if _, err := a.client.GenerateContent(ctx, prompt, tierFor(feature)); err != nil {
			return "", err
		}
		return cannedResponse(feature)
	}

	if feature == FeatureATSAnalysis {
		return a.client.GenerateJSON(ctx, prompt, tierFor(feature))
	}
	return a.client.GenerateContent(ctx, prompt, tierFor(feature))
}
