package analyze

import (
	"context"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// Analyzer turns one raw modality input into a normalized Finding.
// Analyzers assume well-formed input; request validation happens
// before they run.
type Analyzer interface {
	// Modality returns the input channel this analyzer handles.
	Modality() model.Modality

	// Analyze produces the finding for the request.
	Analyze(ctx context.Context, req *model.AnalysisRequest) (*model.Finding, error)
}
