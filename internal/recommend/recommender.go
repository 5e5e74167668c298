package recommend

import (
	"github.com/lifeguardcard/triagecore/internal/model"
)

// Advice is the recommendation output for one assessment: the urgency
// score, the tier action list, the routed specialty and the follow-up
// flag.
type Advice struct {
	Urgency              int
	Recommendations      []string
	SpecialtyRecommended string
	FollowUpRequired     bool
}

// specialtyRule routes a symptom set to a medical specialty. Rules
// are evaluated in declaration order and the first match wins; a
// future vocabulary collision between rules should be flagged, not
// silently reordered.
type specialtyRule struct {
	specialty string
	symptoms  model.SymptomSet
}

// Recommender derives advice from a severity tier and symptom set.
// All tables are fixed at construction and shared read-only.
type Recommender struct {
	byTier      map[model.SeverityTier][]string
	specialties []specialtyRule
}

// New creates a recommender with the built-in tier action lists and
// specialty routing rules.
func New() *Recommender {
	return &Recommender{
		byTier: map[model.SeverityTier][]string{
			model.SeverityCritical: {
				"Call emergency services (120/911) immediately",
				"Go to the nearest emergency department",
				"Keep the patient lying down and monitor vital signs",
			},
			model.SeverityHigh: {
				"See a doctor within 24 hours",
				"Monitor symptoms closely for any change",
				"Avoid strenuous activity until seen",
			},
			model.SeverityModerate: {
				"Schedule an outpatient visit within 48 hours",
				"Keep a record of symptom changes",
				"Rest and stay hydrated",
			},
			model.SeverityLow: {
				"Observe at home",
				"Maintain regular rest and nutrition",
				"Seek care promptly if symptoms worsen",
			},
		},
		specialties: []specialtyRule{
			{"dermatology", model.NewSymptomSet(
				model.SymptomRash,
				model.SymptomItching,
			)},
			{"cardiology", model.NewSymptomSet(
				model.SymptomChestPain,
				model.SymptomPalpitations,
				model.SymptomArrhythmia,
			)},
			{"gastroenterology", model.NewSymptomSet(
				model.SymptomNausea,
				model.SymptomVomiting,
				model.SymptomPersistentVomit,
				model.SymptomDiarrhea,
				model.SymptomConstipation,
				model.SymptomAbdominalPain,
			)},
			{"neurology", model.NewSymptomSet(
				model.SymptomHeadache,
				model.SymptomDizziness,
				model.SymptomComa,
				model.SymptomNumbness,
			)},
			{"internal medicine", model.NewSymptomSet(
				model.SymptomFever,
				model.SymptomHighFever,
				model.SymptomCough,
				model.SymptomFatigue,
				model.SymptomAppetiteLoss,
			)},
		},
	}
}

// Recommend composes the advice for the given severity and symptoms.
// Exactly one tier action list is selected, never merged.
func (r *Recommender) Recommend(severity model.SeverityTier, symptoms model.SymptomSet) Advice {
	urgency := severity.Urgency()
	return Advice{
		Urgency:              urgency,
		Recommendations:      r.byTier[severity],
		SpecialtyRecommended: r.routeSpecialty(symptoms),
		FollowUpRequired:     urgency >= 2,
	}
}

// routeSpecialty returns the first matching specialty, or empty when
// no rule matches.
func (r *Recommender) routeSpecialty(symptoms model.SymptomSet) string {
	for _, rule := range r.specialties {
		if symptoms.Intersects(rule.symptoms) {
			return rule.specialty
		}
	}
	return ""
}
