// Package assistant dispatches the generative-AI features: it turns a feature
// name plus payload into a provider prompt, forwards it, and hands the text or
// JSON back to the caller. No retries, no streaming; provider failures
// propagate synchronously.
package assistant

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dkowalski/resume-analyzer/internal/llm"
	"github.com/dkowalski/resume-analyzer/internal/prompts"
)

// Feature names one generative-AI capability
type Feature string

// Supported features
const (
	FeatureGenerateSummary Feature = "generate_summary"
	FeatureRewriteBullets  Feature = "rewrite_bullets"
	FeatureATSAnalysis     Feature = "ats_analysis"
	FeatureChat            Feature = "chat"
	FeatureCoverLetter     Feature = "cover_letter"
	FeatureSkillGap        Feature = "skill_gap"
)

// promptFile is the embedded template file holding one key per feature
const promptFile = "assistant.json"

// SummaryPayload drives generate_summary
type SummaryPayload struct {
	Role       string   `json:"role" validate:"required"`
	Years      int      `json:"years" validate:"gte=0"`
	Skills     []string `json:"skills"`
	Highlights []string `json:"highlights"`
}

// RewriteBulletsPayload drives rewrite_bullets
type RewriteBulletsPayload struct {
	Bullets []string `json:"bullets" validate:"required,min=1,dive,required"`
}

// ATSAnalysisPayload drives ats_analysis
type ATSAnalysisPayload struct {
	Resume string `json:"resume" validate:"required"`
	Job    string `json:"job"`
}

// ChatTurn is one prior exchange in a chat conversation
type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Message string `json:"message" validate:"required"`
}

// ChatPayload drives chat
type ChatPayload struct {
	Message string     `json:"message" validate:"required"`
	History []ChatTurn `json:"history" validate:"dive"`
}

// CoverLetterPayload drives cover_letter
type CoverLetterPayload struct {
	Name       string `json:"name" validate:"required"`
	Background string `json:"background" validate:"required"`
	Job        string `json:"job" validate:"required"`
}

// SkillGapPayload drives skill_gap
type SkillGapPayload struct {
	Skills []string `json:"skills" validate:"required,min=1,dive,required"`
	Job    string   `json:"job" validate:"required"`
}

// tierFor maps each feature to the model capability it needs
func tierFor(feature Feature) llm.ModelTier {
	switch feature {
	case FeatureCoverLetter:
		return llm.TierAdvanced
	case FeatureATSAnalysis:
		return llm.TierStandard
	default:
		return llm.TierLite
	}
}

// buildPrompt fills the feature's template from its payload. The payload must
// already be validated.
func buildPrompt(feature Feature, payload any) (string, error) {
	template, err := prompts.Get(promptFile, string(feature))
	if err != nil {
		return "", err
	}

	data, err := templateData(feature, payload)
	if err != nil {
		return "", err
	}
	return prompts.Format(template, data), nil
}

// templateData maps a payload onto its feature's template placeholders. The
// payload type must match the feature; a mismatch is a caller bug and errors.
func templateData(feature Feature, payload any) (map[string]string, error) {
	switch feature {
	case FeatureGenerateSummary:
		if p, ok := payload.(*SummaryPayload); ok {
			return map[string]string{
				"Role":       p.Role,
				"Years":      strconv.Itoa(p.Years),
				"Skills":     strings.Join(p.Skills, ", "),
				"Highlights": bulletList(p.Highlights),
			}, nil
		}
	case FeatureRewriteBullets:
		if p, ok := payload.(*RewriteBulletsPayload); ok {
			return map[string]string{"Bullets": bulletList(p.Bullets)}, nil
		}
	case FeatureATSAnalysis:
		if p, ok := payload.(*ATSAnalysisPayload); ok {
			return map[string]string{"Resume": p.Resume, "Job": p.Job}, nil
		}
	case FeatureChat:
		if p, ok := payload.(*ChatPayload); ok {
			return map[string]string{
				"History": chatHistory(p.History),
				"Message": p.Message,
			}, nil
		}
	case FeatureCoverLetter:
		if p, ok := payload.(*CoverLetterPayload); ok {
			return map[string]string{
				"Name":       p.Name,
				"Background": p.Background,
				"Job":        p.Job,
			}, nil
		}
	case FeatureSkillGap:
		if p, ok := payload.(*SkillGapPayload); ok {
			return map[string]string{
				"Skills": strings.Join(p.Skills, ", "),
				"Job":    p.Job,
			}, nil
		}
	default:
		return nil, fmt.Errorf("unknown feature %q", feature)
	}
	return nil, fmt.Errorf("feature %s does not accept payload type %T", feature, payload)
}

func bulletList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func chatHistory(turns []ChatTurn) string {
	if len(turns) == 0 {
		return "(none)"
	}
	var sb strings.Builder
	for _, turn := range turns {
		sb.WriteString(fmt.Sprintf("%s: %s\n", turn.Role, turn.Message))
	}
	return strings.TrimRight(sb.String(), "\n")
}
