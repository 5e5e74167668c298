package analyze

import (
	"context"
	"fmt"
	"time"

	"github.com/lifeguardcard/triagecore/internal/inference"
	"github.com/lifeguardcard/triagecore/internal/model"
)

// ImageAnalyzer analyzes an opaque image payload through the
// inference provider. The configured delay stands in for the latency
// of an external model call and is awaited, not slept through: a
// cancelled context aborts the wait.
type ImageAnalyzer struct {
	provider inference.Provider
	delay    time.Duration
}

// NewImageAnalyzer creates an image analyzer.
func NewImageAnalyzer(provider inference.Provider, delay time.Duration) *ImageAnalyzer {
	return &ImageAnalyzer{provider: provider, delay: delay}
}

// Modality returns ModalityImage.
func (a *ImageAnalyzer) Modality() model.Modality {
	return model.ModalityImage
}

// Analyze produces the image finding. Detected symptoms for
// downstream tiering are the condition labels of the findings list.
func (a *ImageAnalyzer) Analyze(ctx context.Context, req *model.AnalysisRequest) (*model.Finding, error) {
	if a.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(a.delay):
		}
	}

	detail, err := a.provider.ImageAnalysis(ctx, *req.Image)
	if err != nil {
		return nil, fmt.Errorf("image analysis: %w", err)
	}

	symptoms := model.SymptomSet{}
	confidence := 0.0
	for _, f := range detail.Findings {
		symptoms.Add(f.Condition)
		if f.Confidence > confidence {
			confidence = f.Confidence
		}
	}

	return &model.Finding{
		Modality:   model.ModalityImage,
		Symptoms:   symptoms.Sorted(),
		Confidence: confidence,
		Image:      &detail,
	}, nil
}
