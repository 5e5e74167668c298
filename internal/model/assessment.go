package model

import "time"

// SeverityTier is the four-level escalation scale, totally ordered:
// critical > high > moderate > low.
type SeverityTier int

const (
	SeverityLow SeverityTier = iota
	SeverityModerate
	SeverityHigh
	SeverityCritical
)

func (t SeverityTier) String() string {
	switch t {
	case SeverityCritical:
		return "critical"
	case SeverityHigh:
		return "high"
	case SeverityModerate:
		return "moderate"
	default:
		return "low"
	}
}

// MarshalJSON renders the tier as its string label.
func (t SeverityTier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON parses the string label back into a tier.
func (t *SeverityTier) UnmarshalJSON(b []byte) error {
	switch string(b) {
	case `"critical"`:
		*t = SeverityCritical
	case `"high"`:
		*t = SeverityHigh
	case `"moderate"`:
		*t = SeverityModerate
	default:
		*t = SeverityLow
	}
	return nil
}

// Urgency derives the 1..4 urgency score for the tier. The mapping is
// fixed: critical→4, high→3, moderate→2, low→1.
func (t SeverityTier) Urgency() int {
	switch t {
	case SeverityCritical:
		return 4
	case SeverityHigh:
		return 3
	case SeverityModerate:
		return 2
	default:
		return 1
	}
}

// PatientContext is optional caller-supplied context. It is accepted
// and echoed back but does not currently influence classification;
// the shape exists as an extension point.
type PatientContext struct {
	PatientID          string   `json:"patient_id,omitempty"`
	MedicalHistory     []string `json:"medical_history,omitempty"`
	CurrentMedications []string `json:"current_medications,omitempty"`
	Allergies          []string `json:"allergies,omitempty"`
}

// Assessment is the final triage output for one analysis request.
// Immutable after creation; persistence and notification belong to
// the caller.
type Assessment struct {
	Severity             SeverityTier    `json:"severity"`
	Confidence           float64         `json:"confidence"`
	Symptoms             []SymptomToken  `json:"symptoms"`
	Urgency              int             `json:"urgency"`
	Recommendations      []string        `json:"recommendations"`
	SpecialtyRecommended string          `json:"specialty_recommended,omitempty"`
	FollowUpRequired     bool            `json:"follow_up_required"`
	ModalityDetail       Finding         `json:"modality_detail"`
	Context              *PatientContext `json:"context,omitempty"`
	AssessedAt           time.Time       `json:"assessed_at"`
}

// AnalysisRequest is the core's input shape. Exactly one of the data
// fields matching Type must be set; validation happens before any
// analyzer runs.
type AnalysisRequest struct {
	Type    Modality        `json:"type"`
	Text    string          `json:"text,omitempty"`
	Voice   *VoiceInput     `json:"voice,omitempty"`
	Image   *ImageInput     `json:"image,omitempty"`
	Context *PatientContext `json:"context,omitempty"`
}

// VoiceInput is a transcript plus the transcription confidence the
// caller reports.
type VoiceInput struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
}

// ImageInput is an opaque image payload.
type ImageInput struct {
	Data   []byte `json:"data"`
	Format string `json:"format,omitempty"`
}

// Capabilities is the static discovery descriptor for the engine.
type Capabilities struct {
	Modalities []ModalityCapability `json:"modalities"`
	Languages  []string             `json:"languages"`
}

// ModalityCapability describes one supported input channel.
type ModalityCapability struct {
	Modality Modality `json:"modality"`
	Formats  []string `json:"formats"`
}

// DefaultCapabilities returns the fixed capability descriptor.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		Modalities: []ModalityCapability{
			{Modality: ModalityText, Formats: []string{"text/plain"}},
			{Modality: ModalityVoice, Formats: []string{"transcript"}},
			{Modality: ModalityImage, Formats: []string{"image/jpeg", "image/png"}},
		},
		Languages: []string{"zh-CN", "en-US"},
	}
}
