package quicktriage

import (
	"fmt"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// Engine is the quick-triage decision tree: a fixed ordered question
// sequence where a yes on any emergency-tagged question terminates
// immediately, and the final tally of urgent/moderate yes-answers
// picks one of four outcomes. The engine itself is stateless; all
// per-caller state lives in the session.
type Engine struct {
	questions []model.Question
	outcomes  map[model.TriageUrgency]model.QuickAssessmentResult
}

// NewEngine creates the engine with the built-in question sequence.
func NewEngine() *Engine {
	return &Engine{
		questions: []model.Question{
			{
				ID:   "breathing",
				Text: "Are you experiencing severe breathing difficulty?",
				Tags: []model.QuestionTag{model.TagEmergency},
			},
			{
				ID:   "chest-bleeding",
				Text: "Do you have severe chest pain or heavy, uncontrolled bleeding?",
				Tags: []model.QuestionTag{model.TagEmergency},
			},
			{
				ID:   "consciousness",
				Text: "Have you experienced altered consciousness, confusion or fainting?",
				Tags: []model.QuestionTag{model.TagUrgent},
			},
			{
				ID:   "high-fever",
				Text: "Do you have a fever above 39°C?",
				Tags: []model.QuestionTag{model.TagUrgent},
			},
			{
				ID:   "vomiting",
				Text: "Have you been vomiting persistently or unable to keep fluids down?",
				Tags: []model.QuestionTag{model.TagModerate},
			},
			{
				ID:   "pain",
				Text: "Is pain interfering with your daily activities or getting worse?",
				Tags: []model.QuestionTag{model.TagModerate},
			},
		},
		outcomes: map[model.TriageUrgency]model.QuickAssessmentResult{
			model.TriageEmergency: {
				Urgency: model.TriageEmergency,
				Message: "This may be a medical emergency. Seek help immediately.",
				Actions: []string{
					"Call emergency services (120/911) now",
					"Do not drive yourself; wait for the ambulance",
					"Stay with someone until help arrives",
				},
			},
			model.TriageUrgent: {
				Urgency: model.TriageUrgent,
				Message: "Your answers indicate an urgent problem. See a doctor within 24 hours.",
				Actions: []string{
					"Contact your care team or visit urgent care today",
					"Bring a list of current medications",
					"Return immediately if symptoms worsen",
				},
			},
			model.TriageModerate: {
				Urgency: model.TriageModerate,
				Message: "Your symptoms deserve attention. Arrange a visit within 48 hours.",
				Actions: []string{
					"Schedule an outpatient appointment",
					"Track symptom changes until the visit",
					"Rest and stay hydrated",
				},
			},
			model.TriageLow: {
				Urgency: model.TriageLow,
				Message: "No warning signs detected. Continue self-observation.",
				Actions: []string{
					"Observe at home",
					"Keep regular rest and nutrition",
					"Re-run this check if anything changes",
				},
			},
		},
	}
}

// Questions returns the fixed question sequence.
func (e *Engine) Questions() []model.Question {
	return e.questions
}

// NewSession returns a fresh session positioned at the first question.
func (e *Engine) NewSession(id string) *model.QuickTriageSession {
	return &model.QuickTriageSession{
		ID:      id,
		Answers: make(map[string]bool),
	}
}

// CurrentQuestion returns the question the session is waiting on.
// The second return is false once the session is terminal.
func (e *Engine) CurrentQuestion(s *model.QuickTriageSession) (model.Question, bool) {
	if s.Done() || s.CurrentIndex >= len(e.questions) {
		return model.Question{}, false
	}
	return e.questions[s.CurrentIndex], true
}

// Answer records the answer to the current question and advances the
// session. A yes on an emergency question short-circuits straight to
// the emergency outcome; answering a terminal session is caller
// misuse.
func (e *Engine) Answer(s *model.QuickTriageSession, answer bool) error {
	if s.Done() {
		return fmt.Errorf("%w: session already completed", model.ErrInvalidInput)
	}
	if s.CurrentIndex >= len(e.questions) {
		return fmt.Errorf("%w: no question pending", model.ErrInvalidInput)
	}

	q := e.questions[s.CurrentIndex]
	s.Answers[q.ID] = answer

	if answer && q.HasTag(model.TagEmergency) {
		result := e.outcomes[model.TriageEmergency]
		s.Result = &result
		return nil
	}

	if s.CurrentIndex < len(e.questions)-1 {
		s.CurrentIndex++
		return nil
	}

	result := e.outcomes[e.tally(s)]
	s.Result = &result
	return nil
}

// Back moves the session to the previous question. Already-recorded
// answers keep their role in the final tally unless re-answered.
func (e *Engine) Back(s *model.QuickTriageSession) {
	if s.Done() || s.CurrentIndex == 0 {
		return
	}
	s.CurrentIndex--
}

// Reset clears all session state back to the first question. This is
// a user-invoked restart, not a system transition.
func (e *Engine) Reset(s *model.QuickTriageSession) {
	s.CurrentIndex = 0
	s.Answers = make(map[string]bool)
	s.Result = nil
}

// tally counts urgent- and moderate-tagged yes-answers and maps them
// to an outcome class.
func (e *Engine) tally(s *model.QuickTriageSession) model.TriageUrgency {
	urgent, moderate := 0, 0
	for _, q := range e.questions {
		if !s.Answers[q.ID] {
			continue
		}
		if q.HasTag(model.TagUrgent) {
			urgent++
		}
		if q.HasTag(model.TagModerate) {
			moderate++
		}
	}

	switch {
	case urgent >= 2:
		return model.TriageUrgent
	case urgent >= 1 || moderate >= 2:
		return model.TriageModerate
	default:
		return model.TriageLow
	}
}
