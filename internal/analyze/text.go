package analyze

import (
	"context"

	"github.com/lifeguardcard/triagecore/internal/lexicon"
	"github.com/lifeguardcard/triagecore/internal/model"
)

// TextAnalyzer runs the lexicon over free text. Confidence is a fixed
// configured constant, not a computed value.
type TextAnalyzer struct {
	lex        *lexicon.Lexicon
	confidence float64
}

// NewTextAnalyzer creates a text analyzer.
func NewTextAnalyzer(lex *lexicon.Lexicon, confidence float64) *TextAnalyzer {
	return &TextAnalyzer{lex: lex, confidence: confidence}
}

// Modality returns ModalityText.
func (a *TextAnalyzer) Modality() model.Modality {
	return model.ModalityText
}

// Analyze extracts symptoms, key phrases and medical terms from the
// request text.
func (a *TextAnalyzer) Analyze(_ context.Context, req *model.AnalysisRequest) (*model.Finding, error) {
	return a.analyzeText(req.Text), nil
}

// analyzeText is the shared extraction path; the voice analyzer
// delegates here for its transcript.
func (a *TextAnalyzer) analyzeText(text string) *model.Finding {
	symptoms := a.lex.ExtractSymptoms(text)
	return &model.Finding{
		Modality:   model.ModalityText,
		Symptoms:   symptoms.Sorted(),
		Confidence: a.confidence,
		Text: &model.TextDetail{
			KeyPhrases:   a.lex.ExtractKeyPhrases(text),
			MedicalTerms: a.lex.ExtractMedicalTerms(text),
		},
	}
}
