package inference

import (
	"context"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// Provider supplies the modality-specific inference the analyzers
// cannot compute themselves: acoustic features for a voice transcript
// and visual findings for an image. The built-in static provider
// returns fixed reference outputs; a real model can be substituted
// behind this interface without touching the classifier or the
// recommender.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// VoiceFeatures derives an acoustic feature vector for the
	// transcript. The distress score must stay in [0,1].
	VoiceFeatures(ctx context.Context, transcript string) (model.VoiceFeatures, error)

	// ImageAnalysis produces per-condition findings, follow-up
	// recommendations and quality metrics for the image payload.
	// Finding confidences must stay in [0,1].
	ImageAnalysis(ctx context.Context, img model.ImageInput) (model.ImageDetail, error)
}
