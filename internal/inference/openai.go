package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// OpenAIProvider implements Provider against OpenAI-compatible chat
// endpoints. Responses are requested as strict JSON and parsed into
// the same shapes the static provider emits.
type OpenAIProvider struct {
	client *openai.Client
	config model.InferenceConfig
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(config model.InferenceConfig) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

const voicePrompt = `You are an acoustic triage assistant. Given a patient transcript,
estimate the speaking characteristics and emotional distress. Respond with ONLY a JSON
object with keys: speech_rate, pause_pattern, voice_quality, emotional_state (strings)
and distress_score (number in [0,1]). No prose.

Transcript:
%s`

const imagePrompt = `You are a clinical image triage assistant. Given an image description,
list visible findings. Respond with ONLY a JSON object with keys: findings (array of
{condition, confidence, location, severity}), recommendations (array of strings) and
quality ({resolution, sharpness, lighting}). Severity must be one of low, moderate,
high, critical. Confidence in [0,1]. No prose.`

// VoiceFeatures asks the model for a feature vector and parses it.
func (p *OpenAIProvider) VoiceFeatures(ctx context.Context, transcript string) (model.VoiceFeatures, error) {
	content, err := p.complete(ctx, fmt.Sprintf(voicePrompt, transcript))
	if err != nil {
		return model.VoiceFeatures{}, err
	}

	var features model.VoiceFeatures
	if err := json.Unmarshal([]byte(content), &features); err != nil {
		return model.VoiceFeatures{}, fmt.Errorf("parse voice features: %w", err)
	}
	features.DistressScore = clamp01(features.DistressScore)
	return features, nil
}

// ImageAnalysis asks the model for findings and parses them.
func (p *OpenAIProvider) ImageAnalysis(ctx context.Context, img model.ImageInput) (model.ImageDetail, error) {
	prompt := imagePrompt
	if img.Format != "" {
		prompt += "\nImage format: " + img.Format
	}

	content, err := p.complete(ctx, prompt)
	if err != nil {
		return model.ImageDetail{}, err
	}

	var detail model.ImageDetail
	if err := json.Unmarshal([]byte(content), &detail); err != nil {
		return model.ImageDetail{}, fmt.Errorf("parse image findings: %w", err)
	}
	for i := range detail.Findings {
		detail.Findings[i].Confidence = clamp01(detail.Findings[i].Confidence)
	}
	return detail, nil
}

// complete runs one chat completion and returns the trimmed content.
func (p *OpenAIProvider) complete(ctx context.Context, prompt string) (string, error) {
	chatModel := p.config.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}

	maxTokens := p.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
