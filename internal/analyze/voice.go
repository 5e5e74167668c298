package analyze

import (
	"context"
	"fmt"

	"github.com/lifeguardcard/triagecore/internal/inference"
	"github.com/lifeguardcard/triagecore/internal/model"
)

// VoiceAnalyzer analyzes a transcript by delegating symptom and
// confidence extraction to the text analyzer, then overlaying the
// acoustic feature vector from the inference provider. The confidence
// the caller reported with the transcript is preserved alongside the
// derived one.
type VoiceAnalyzer struct {
	text     *TextAnalyzer
	provider inference.Provider
}

// NewVoiceAnalyzer creates a voice analyzer.
func NewVoiceAnalyzer(text *TextAnalyzer, provider inference.Provider) *VoiceAnalyzer {
	return &VoiceAnalyzer{text: text, provider: provider}
}

// Modality returns ModalityVoice.
func (a *VoiceAnalyzer) Modality() model.Modality {
	return model.ModalityVoice
}

// Analyze produces the voice finding for the request transcript.
func (a *VoiceAnalyzer) Analyze(ctx context.Context, req *model.AnalysisRequest) (*model.Finding, error) {
	base := a.text.analyzeText(req.Voice.Transcript)

	features, err := a.provider.VoiceFeatures(ctx, req.Voice.Transcript)
	if err != nil {
		return nil, fmt.Errorf("voice features: %w", err)
	}

	finding := &model.Finding{
		Modality:   model.ModalityVoice,
		Symptoms:   base.Symptoms,
		Confidence: base.Confidence,
		Voice: &model.VoiceDetail{
			Transcript:         req.Voice.Transcript,
			ReportedConfidence: req.Voice.Confidence,
			Features:           features,
			Text:               *base.Text,
		},
	}
	return finding, nil
}
