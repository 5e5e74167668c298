package model

// TriageUrgency is the outcome class of the quick-triage questionnaire.
type TriageUrgency string

const (
	TriageEmergency TriageUrgency = "emergency"
	TriageUrgent    TriageUrgency = "urgent"
	TriageModerate  TriageUrgency = "moderate"
	TriageLow       TriageUrgency = "low"
)

// QuestionTag marks the escalation weight a yes-answer contributes.
type QuestionTag string

const (
	TagEmergency QuestionTag = "emergency"
	TagUrgent    QuestionTag = "urgent"
	TagModerate  QuestionTag = "moderate"
)

// Question is one entry of the fixed quick-triage sequence.
type Question struct {
	ID   string        `json:"id"`
	Text string        `json:"text"`
	Tags []QuestionTag `json:"tags,omitempty"`
}

// HasTag reports whether the question carries the given tag.
func (q Question) HasTag(tag QuestionTag) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// QuickTriageSession is the per-caller conversational state of the
// questionnaire. It is mutated by each answer and discarded once a
// terminal result is produced or the session expires.
type QuickTriageSession struct {
	ID           string                 `json:"id"`
	CurrentIndex int                    `json:"current_index"`
	Answers      map[string]bool        `json:"answers"`
	Result       *QuickAssessmentResult `json:"result,omitempty"`
}

// Done reports whether the session has reached a terminal state.
// Terminal states are absorbing; only Reset leaves them.
func (s *QuickTriageSession) Done() bool {
	return s.Result != nil
}

// QuickAssessmentResult is the terminal output of the questionnaire.
type QuickAssessmentResult struct {
	Urgency TriageUrgency `json:"urgency"`
	Message string        `json:"message"`
	Actions []string      `json:"actions"`
}
