package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// OllamaProvider implements Provider against a local Ollama instance.
// Useful when assessments must stay on-premise.
type OllamaProvider struct {
	baseURL    string
	httpClient *http.Client
	config     model.InferenceConfig
}

// Ollama API structures
type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	System  string        `json:"system,omitempty"`
	Options ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"` // Max tokens
}

type ollamaResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

type ollamaError struct {
	Error string `json:"error"`
}

// NewOllamaProvider creates a new Ollama provider.
func NewOllamaProvider(config model.InferenceConfig) (*OllamaProvider, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second // local models can be slower
	}

	return &OllamaProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: config,
	}, nil
}

// Name returns the provider name.
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// VoiceFeatures asks the local model for a feature vector and parses it.
func (p *OllamaProvider) VoiceFeatures(ctx context.Context, transcript string) (model.VoiceFeatures, error) {
	content, err := p.generate(ctx, fmt.Sprintf(voicePrompt, transcript))
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

// ImageAnalysis asks the local model for findings and parses them.
func (p *OllamaProvider) ImageAnalysis(ctx context.Context, img model.ImageInput) (model.ImageDetail, error) {
	prompt := imagePrompt
	if img.Format != "" {
		prompt += "\nImage format: " + img.Format
	}

	content, err := p.generate(ctx, prompt)
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

// generate runs one non-streaming completion against /api/generate.
func (p *OllamaProvider) generate(ctx context.Context, prompt string) (string, error) {
	chatModel := p.config.Model
	if chatModel == "" {
		return "", fmt.Errorf("ollama model must be specified (e.g., llama3.1:8b, mistral)")
	}

	maxTokens := p.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}

	apiReq := ollamaRequest{
		Model:  chatModel,
		Prompt: prompt,
		Stream: false,
		System: "You are a clinical triage assistant. Respond with strict JSON only.",
		Options: ollamaOptions{
			Temperature: 0.2,
			NumPredict:  maxTokens,
		},
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/generate", p.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var apiErr ollamaError
		if err := json.Unmarshal(respBody, &apiErr); err == nil && apiErr.Error != "" {
			return "", fmt.Errorf("ollama API error (%d): %s", httpResp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("ollama API error (%d): %s", httpResp.StatusCode, string(respBody))
	}

	var resp ollamaResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	return strings.TrimSpace(resp.Response), nil
}
