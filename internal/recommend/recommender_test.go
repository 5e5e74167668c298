package recommend

import (
	"testing"

	"github.com/lifeguardcard/triagecore/internal/model"
)

func TestRecommend_UrgencyMapping(t *testing.T) {
	r := New()

	cases := []struct {
		severity model.SeverityTier
		urgency  int
		followUp bool
	}{
		{model.SeverityCritical, 4, true},
		{model.SeverityHigh, 3, true},
		{model.SeverityModerate, 2, true},
		{model.SeverityLow, 1, false},
	}

	for _, tc := range cases {
		advice := r.Recommend(tc.severity, model.NewSymptomSet())
		if advice.Urgency != tc.urgency {
			t.Errorf("%s: expected urgency %d, got %d", tc.severity, tc.urgency, advice.Urgency)
		}
		if advice.FollowUpRequired != tc.followUp {
			t.Errorf("%s: expected followUp=%v, got %v", tc.severity, tc.followUp, advice.FollowUpRequired)
		}
		if advice.FollowUpRequired != (advice.Urgency >= 2) {
			t.Errorf("%s: followUp must equal urgency >= 2", tc.severity)
		}
	}
}

func TestRecommend_ExactlyOneTierList(t *testing.T) {
	r := New()

	critical := r.Recommend(model.SeverityCritical, model.NewSymptomSet(model.SymptomChestPain))
	if len(critical.Recommendations) != 3 {
		t.Fatalf("Expected 3 critical recommendations, got %d", len(critical.Recommendations))
	}
	if critical.Recommendations[0] != "Call emergency services (120/911) immediately" {
		t.Errorf("Unexpected first critical recommendation: %q", critical.Recommendations[0])
	}

	low := r.Recommend(model.SeverityLow, model.NewSymptomSet())
	if low.Recommendations[0] != "Observe at home" {
		t.Errorf("Unexpected first low recommendation: %q", low.Recommendations[0])
	}
}

func TestRouteSpecialty_PriorityOrder(t *testing.T) {
	r := New()

	cases := []struct {
		name      string
		symptoms  model.SymptomSet
		specialty string
	}{
		{"dermatology first", model.NewSymptomSet(model.SymptomRash, model.SymptomFever), "dermatology"},
		{"cardiology before gastro", model.NewSymptomSet(model.SymptomChestPain, model.SymptomNausea), "cardiology"},
		{"gastro before neuro", model.NewSymptomSet(model.SymptomVomiting, model.SymptomHeadache), "gastroenterology"},
		{"neurology before internal", model.NewSymptomSet(model.SymptomHeadache, model.SymptomFever), "neurology"},
		{"internal medicine last", model.NewSymptomSet(model.SymptomFever), "internal medicine"},
		{"no match", model.NewSymptomSet(model.SymptomBleeding), ""},
		{"empty set", model.NewSymptomSet(), ""},
	}

	for _, tc := range cases {
		advice := r.Recommend(model.SeverityLow, tc.symptoms)
		if advice.SpecialtyRecommended != tc.specialty {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.specialty, advice.SpecialtyRecommended)
		}
	}
}

func TestRecommend_HeadacheFeverScenario(t *testing.T) {
	r := New()

	// Headache plus fever is moderate-tier; routing resolves to
	// neurology ahead of internal medicine.
	advice := r.Recommend(model.SeverityModerate, model.NewSymptomSet(
		model.SymptomHeadache,
		model.SymptomFever,
	))

	if advice.Urgency != 2 {
		t.Errorf("Expected urgency 2, got %d", advice.Urgency)
	}
	if !advice.FollowUpRequired {
		t.Error("Expected follow-up required")
	}
	if advice.SpecialtyRecommended != "neurology" {
		t.Errorf("Expected neurology, got %q", advice.SpecialtyRecommended)
	}
}
