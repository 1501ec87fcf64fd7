package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkowalski/resume-analyzer/internal/assistant"
	"github.com/dkowalski/resume-analyzer/internal/config"
	"github.com/dkowalski/resume-analyzer/internal/llm"
)

var assistCmd = &cobra.Command{
	Use:   "assist <feature> <payload.json>",
	Short: "Run a generative-AI assistant feature",
	Long: "Dispatch one assistant feature (generate_summary, rewrite_bullets, ats_analysis, chat, " +
		"cover_letter, skill_gap) with a JSON payload. Without an API key, or with mock mode enabled, " +
		"canned deterministic responses are served.",
	Args: cobra.ExactArgs(2),
	RunE: runAssist,
}

var assistConfigFile string

func init() {
	assistCmd.Flags().StringVarP(&assistConfigFile, "config", "c", "", "Path to a JSON config file")

	rootCmd.AddCommand(assistCmd)
}

func runAssist(cmd *cobra.Command, args []string) error {
	feature := assistant.Feature(args[0])

	payloadBytes, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	payload, err := decodePayload(feature, payloadBytes)
	if err != nil {
		return err
	}

	cfg := config.FromEnv()
	if assistConfigFile != "" {
		fileCfg, err := config.Load(assistConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.Merge(fileCfg)
	}
	// Fall back to mock mode rather than failing when no key is configured
	if cfg.APIKey == "" {
		cfg.MockMode = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a, cleanup, err := buildAssistant(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := a.Run(cmd.Context(), feature, payload)
	if err != nil {
		return fmt.Errorf("assistant request failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	return nil
}

func buildAssistant(ctx context.Context, cfg *config.Config) (*assistant.Assistant, func(), error) {
	if cfg.MockMode {
		return assistant.NewMock(), func() {}, nil
	}

	llmConfig := llm.DefaultConfig()
	if timeout := cfg.RequestTimeout(); timeout > 0 {
		llmConfig.RequestTimeout = timeout
	}

	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create provider client: %w", err)
	}
	return assistant.New(client), func() { _ = client.Close() }, nil
}

// decodePayload parses the payload JSON into the feature's typed payload
func decodePayload(feature assistant.Feature, data []byte) (any, error) {
	var payload any
	switch feature {
	case assistant.FeatureGenerateSummary:
		payload = &assistant.SummaryPayload{}
	case assistant.FeatureRewriteBullets:
		payload = &assistant.RewriteBulletsPayload{}
	case assistant.FeatureATSAnalysis:
		payload = &assistant.ATSAnalysisPayload{}
	case assistant.FeatureChat:
		payload = &assistant.ChatPayload{}
	case assistant.FeatureCoverLetter:
		payload = &assistant.CoverLetterPayload{}
	case assistant.FeatureSkillGap:
		payload = &assistant.SkillGapPayload{}
	default:
		return nil, fmt.Errorf("unknown feature %q", feature)
	}

	if err := json.Unmarshal(data, payload); err != nil {
		return nil, fmt.Errorf("failed to parse %s payload: %w", feature, err)
	}
	return payload, nil
}
