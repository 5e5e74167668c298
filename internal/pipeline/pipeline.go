package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lifeguardcard/triagecore/internal/analyze"
	"github.com/lifeguardcard/triagecore/internal/cache"
	"github.com/lifeguardcard/triagecore/internal/classify"
	"github.com/lifeguardcard/triagecore/internal/inference"
	"github.com/lifeguardcard/triagecore/internal/lexicon"
	"github.com/lifeguardcard/triagecore/internal/model"
	"github.com/lifeguardcard/triagecore/internal/recommend"
)

// Pipeline orchestrates one complete assessment: validate the
// request, run the matching modality analyzer, classify severity and
// compose the recommendation. It holds no per-request state; concurrent
// assessments are fully independent.
type Pipeline struct {
	analyzers   map[model.Modality]analyze.Analyzer
	classifier  *classify.Classifier
	recommender *recommend.Recommender
	config      *model.Config
	results     cache.Cache
}

// New creates a pipeline with the given configuration and inference
// provider.
func New(cfg *model.Config, provider inference.Provider) *Pipeline {
	lex := lexicon.New()
	text := analyze.NewTextAnalyzer(lex, cfg.Analyzer.TextConfidence)

	var results cache.Cache
	if cfg.Cache.Enabled {
		results = cache.New(cfg.Cache)
	}

	return &Pipeline{
		analyzers: map[model.Modality]analyze.Analyzer{
			model.ModalityText:  text,
			model.ModalityVoice: analyze.NewVoiceAnalyzer(text, provider),
			model.ModalityImage: analyze.NewImageAnalyzer(provider, cfg.Analyzer.ImageDelay),
		},
		classifier:  classify.New(),
		recommender: recommend.New(),
		config:      cfg,
		results:     results,
	}
}

// Assess runs one assessment request end to end. Validation failures
// wrap ErrInvalidInput; any analyzer failure aborts the whole request
// with no partial result.
func (p *Pipeline) Assess(ctx context.Context, req *model.AnalysisRequest) (*model.Assessment, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var key string
	if p.results != nil {
		key = cache.Key(req)
		if cached, found := p.results.Get(key); found {
			var a model.Assessment
			if err := json.Unmarshal(cached, &a); err == nil {
				// Context is caller-specific, never replayed.
				a.Context = req.Context
				return &a, nil
			}
			_ = p.results.Delete(key)
		}
	}

	analyzer := p.analyzers[req.Type]
	finding, err := analyzer.Analyze(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s analyzer: %v", model.ErrAnalysisFailed, req.Type, err)
	}

	symptoms := finding.SymptomSet()
	severity := p.classifier.Classify(symptoms)
	advice := p.recommender.Recommend(severity, symptoms)

	assessment := &model.Assessment{
		Severity:             severity,
		Confidence:           finding.Confidence,
		Symptoms:             symptoms.Sorted(),
		Urgency:              advice.Urgency,
		Recommendations:      advice.Recommendations,
		SpecialtyRecommended: advice.SpecialtyRecommended,
		FollowUpRequired:     advice.FollowUpRequired,
		ModalityDetail:       *finding,
		Context:              req.Context,
		AssessedAt:           time.Now().UTC(),
	}

	if p.results != nil {
		if data, err := json.Marshal(assessment); err == nil {
			_ = p.results.Set(key, data, p.config.Cache.TTL)
		}
	}

	return assessment, nil
}

// Capabilities returns the static discovery descriptor.
func (p *Pipeline) Capabilities() model.Capabilities {
	return model.DefaultCapabilities()
}

// validateRequest enforces the caller-side contract before any
// analyzer runs: the type must be known and the matching payload
// present and non-empty.
func validateRequest(req *model.AnalysisRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", model.ErrInvalidInput)
	}

	switch req.Type {
	case model.ModalityText:
		if req.Text == "" {
			return fmt.Errorf("%w: text payload is required for text analysis", model.ErrInvalidInput)
		}
	case model.ModalityVoice:
		if req.Voice == nil || req.Voice.Transcript == "" {
			return fmt.Errorf("%w: transcript is required for voice analysis", model.ErrInvalidInput)
		}
	case model.ModalityImage:
		if req.Image == nil || len(req.Image.Data) == 0 {
			return fmt.Errorf("%w: image payload is required for image analysis", model.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unrecognized analysis type %q", model.ErrInvalidInput, req.Type)
	}
	return nil
}
