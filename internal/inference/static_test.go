package inference

import (
	"context"
	"testing"

	"github.com/lifeguardcard/triagecore/internal/model"
)

func TestStaticProvider_VoiceFeatures_Deterministic(t *testing.T) {
	p := NewStaticProvider()

	first, err := p.VoiceFeatures(context.Background(), "头晕恶心两天了")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := p.VoiceFeatures(context.Background(), "头晕恶心两天了")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if first != second {
		t.Errorf("Expected identical features for identical input, got %+v vs %+v", first, second)
	}
	if first.EmotionalState != "calm" {
		t.Errorf("Expected calm state, got %q", first.EmotionalState)
	}
	if first.DistressScore < 0 || first.DistressScore > 1 {
		t.Errorf("Distress score out of range: %f", first.DistressScore)
	}
}

func TestStaticProvider_VoiceFeatures_Distress(t *testing.T) {
	p := NewStaticProvider()

	features, err := p.VoiceFeatures(context.Background(), "疼得受不了了！")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if features.EmotionalState != "distressed" {
		t.Errorf("Expected distressed state, got %q", features.EmotionalState)
	}
	if features.DistressScore <= 0.2 {
		t.Errorf("Expected elevated distress score, got %f", features.DistressScore)
	}
}

func TestStaticProvider_ImageAnalysis(t *testing.T) {
	p := NewStaticProvider()

	detail, err := p.ImageAnalysis(context.Background(), model.ImageInput{Data: []byte{0xFF, 0xD8}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(detail.Findings) == 0 {
		t.Fatal("Expected at least one finding")
	}
	for _, f := range detail.Findings {
		if f.Confidence < 0 || f.Confidence > 1 {
			t.Errorf("Finding %q confidence out of range: %f", f.Condition, f.Confidence)
		}
		if f.Condition == "" {
			t.Error("Expected finding condition to be set")
		}
	}
	if len(detail.Recommendations) == 0 {
		t.Error("Expected recommendations")
	}
}

func TestNewProvider_Factory(t *testing.T) {
	p, err := NewProvider(model.InferenceConfig{})
	if err != nil {
		t.Fatalf("Expected no error for default provider, got %v", err)
	}
	if p.Name() != "static" {
		t.Errorf("Expected static provider by default, got %s", p.Name())
	}

	if _, err := NewProvider(model.InferenceConfig{Provider: "quantum"}); err == nil {
		t.Error("Expected error for unknown provider")
	}

	if _, err := NewProvider(model.InferenceConfig{Provider: "openai"}); err == nil {
		t.Error("Expected error for openai provider without API key")
	}
}
