package classify

import (
	"github.com/lifeguardcard/triagecore/internal/model"
)

// Classifier maps a detected symptom set to a severity tier using
// fixed precedence rules: the tiers are checked from critical down
// and the first non-empty intersection wins. Membership is all that
// matters; a single critical token outranks any number of moderate
// ones, and counts never break ties.
type Classifier struct {
	critical model.SymptomSet
	high     model.SymptomSet
	moderate model.SymptomSet
}

// New creates a classifier with the built-in tier vocabularies.
func New() *Classifier {
	return &Classifier{
		critical: model.NewSymptomSet(
			model.SymptomBreathDifficulty,
			model.SymptomChestPain,
			model.SymptomComa,
			model.SymptomMajorBleeding,
			model.SymptomSeverePain,
		),
		high: model.NewSymptomSet(
			model.SymptomHighFever,
			model.SymptomSeverePain,
			model.SymptomPersistentVomit,
			model.SymptomArrhythmia,
		),
		moderate: model.NewSymptomSet(
			model.SymptomFever,
			model.SymptomPain,
			model.SymptomNausea,
			model.SymptomDizziness,
		),
	}
}

// Classify returns the severity tier for the given symptoms. An empty
// set, or a set with no tier-vocabulary members, classifies as low.
func (c *Classifier) Classify(symptoms model.SymptomSet) model.SeverityTier {
	switch {
	case symptoms.Intersects(c.critical):
		return model.SeverityCritical
	case symptoms.Intersects(c.high):
		return model.SeverityHigh
	case symptoms.Intersects(c.moderate):
		return model.SeverityModerate
	default:
		return model.SeverityLow
	}
}
