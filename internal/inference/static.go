package inference

import (
	"context"
	"strings"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// StaticProvider returns fixed inference outputs. It reproduces the
// reference behavior where acoustic and visual "AI" results are
// hard-coded, and doubles as the test provider.
type StaticProvider struct{}

// NewStaticProvider creates the built-in static provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Name returns the provider name.
func (p *StaticProvider) Name() string {
	return "static"
}

// VoiceFeatures returns the fixed feature vector. The emotional state
// flips to distressed when the transcript carries exclamation marks;
// everything else is constant, so identical input yields identical
// output.
func (p *StaticProvider) VoiceFeatures(_ context.Context, transcript string) (model.VoiceFeatures, error) {
	features := model.VoiceFeatures{
		SpeechRate:     "normal",
		PausePattern:   "regular",
		VoiceQuality:   "clear",
		EmotionalState: "calm",
		DistressScore:  0.2,
	}
	if strings.ContainsAny(transcript, "!！") {
		features.EmotionalState = "distressed"
		features.DistressScore = 0.7
	}
	return features, nil
}

// ImageAnalysis returns the fixed findings list. Condition labels are
// canonical symptom tokens so they feed straight into severity
// tiering downstream.
func (p *StaticProvider) ImageAnalysis(_ context.Context, _ model.ImageInput) (model.ImageDetail, error) {
	return model.ImageDetail{
		Findings: []model.ImageFinding{
			{
				Condition:  model.SymptomRash,
				Confidence: 0.78,
				Location:   "left forearm",
				Severity:   model.SeverityModerate,
			},
			{
				Condition:  model.SymptomEdema,
				Confidence: 0.64,
				Location:   "ankle",
				Severity:   model.SeverityLow,
			},
		},
		Recommendations: []string{
			"Have the affected area examined by a dermatologist",
			"Re-photograph under better lighting if symptoms change",
		},
		Quality: model.ImageQuality{
			Resolution: "1920x1080",
			Sharpness:  0.82,
			Lighting:   "adequate",
		},
	}, nil
}
