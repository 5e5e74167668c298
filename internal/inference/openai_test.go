package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"

	"github.com/lifeguardcard/triagecore/internal/model"
)

func newChatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected path /chat/completions, got %s", r.URL.Path)
		}
		resp := openai.ChatCompletionResponse{
			ID:     "chatcmpl-123",
			Object: "chat.completion",
			Model:  "gpt-4o-mini",
			Choices: []openai.ChatCompletionChoice{
				{
					Index: 0,
					Message: openai.ChatCompletionMessage{
						Role:    "assistant",
						Content: content,
					},
					FinishReason: "stop",
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestOpenAIProvider_VoiceFeatures_Success(t *testing.T) {
	server := newChatServer(t, `{"speech_rate":"fast","pause_pattern":"irregular","voice_quality":"strained","emotional_state":"distressed","distress_score":0.8}`)
	defer server.Close()

	provider, err := NewOpenAIProvider(model.InferenceConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	features, err := provider.VoiceFeatures(context.Background(), "it hurts so much")
	if err != nil {
		t.Fatalf("VoiceFeatures failed: %v", err)
	}

	if features.SpeechRate != "fast" {
		t.Errorf("Expected fast speech rate, got %q", features.SpeechRate)
	}
	if features.DistressScore != 0.8 {
		t.Errorf("Expected distress 0.8, got %f", features.DistressScore)
	}
}

func TestOpenAIProvider_VoiceFeatures_ClampsScore(t *testing.T) {
	server := newChatServer(t, `{"speech_rate":"fast","distress_score":1.7}`)
	defer server.Close()

	provider, err := NewOpenAIProvider(model.InferenceConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	features, err := provider.VoiceFeatures(context.Background(), "transcript")
	if err != nil {
		t.Fatalf("VoiceFeatures failed: %v", err)
	}
	if features.DistressScore != 1.0 {
		t.Errorf("Expected score clamped to 1.0, got %f", features.DistressScore)
	}
}

func TestOpenAIProvider_ImageAnalysis_Success(t *testing.T) {
	server := newChatServer(t, `{"findings":[{"condition":"rash","confidence":0.9,"location":"arm","severity":"moderate"}],"recommendations":["see a dermatologist"],"quality":{"resolution":"800x600","sharpness":0.5,"lighting":"dim"}}`)
	defer server.Close()

	provider, err := NewOpenAIProvider(model.InferenceConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	detail, err := provider.ImageAnalysis(context.Background(), model.ImageInput{Data: []byte{1}, Format: "image/png"})
	if err != nil {
		t.Fatalf("ImageAnalysis failed: %v", err)
	}

	if len(detail.Findings) != 1 {
		t.Fatalf("Expected 1 finding, got %d", len(detail.Findings))
	}
	if detail.Findings[0].Condition != model.SymptomRash {
		t.Errorf("Expected rash condition, got %q", detail.Findings[0].Condition)
	}
	if detail.Findings[0].Severity != model.SeverityModerate {
		t.Errorf("Expected moderate severity, got %s", detail.Findings[0].Severity)
	}
}

func TestOpenAIProvider_MalformedResponse(t *testing.T) {
	server := newChatServer(t, `not json at all`)
	defer server.Close()

	provider, err := NewOpenAIProvider(model.InferenceConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if _, err := provider.VoiceFeatures(context.Background(), "transcript"); err == nil {
		t.Error("Expected parse error for malformed response")
	}
}

func TestOpenAIProvider_RequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAIProvider(model.InferenceConfig{}); err == nil {
		t.Error("Expected error when API key missing")
	}
}
