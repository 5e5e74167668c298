package model

// Modality identifies the input channel of a triage submission.
type Modality string

const (
	ModalityText  Modality = "text"
	ModalityVoice Modality = "voice"
	ModalityImage Modality = "image"
)

// Valid reports whether the modality is one of the supported channels.
func (m Modality) Valid() bool {
	switch m {
	case ModalityText, ModalityVoice, ModalityImage:
		return true
	}
	return false
}

// Finding is the normalized output of one modality analyzer: the
// detected symptom tokens, an overall confidence in [0,1], and
// modality-specific detail. A Finding lives only for the duration of
// the request that produced it.
type Finding struct {
	Modality   Modality       `json:"modality"`
	Symptoms   []SymptomToken `json:"detected_symptoms"`
	Confidence float64        `json:"confidence"`

	// Exactly one of the following is populated, matching Modality.
	Text  *TextDetail  `json:"text_detail,omitempty"`
	Voice *VoiceDetail `json:"voice_detail,omitempty"`
	Image *ImageDetail `json:"image_detail,omitempty"`

	// Extra carries open extension fields a provider may attach.
	// Known fields always live in the typed detail structs above.
	Extra map[string]string `json:"extra,omitempty"`
}

// SymptomSet returns the detected symptoms as a set.
func (f *Finding) SymptomSet() SymptomSet {
	return NewSymptomSet(f.Symptoms...)
}

// TextDetail carries the lexicon output attached to a text analysis.
type TextDetail struct {
	KeyPhrases   []string `json:"key_phrases"`
	MedicalTerms []string `json:"medical_terms"`
}

// VoiceDetail overlays acoustic features on top of the transcript
// analysis. ReportedConfidence preserves the confidence the caller
// submitted with the transcript, independent of the derived one.
type VoiceDetail struct {
	Transcript         string        `json:"transcript"`
	ReportedConfidence float64       `json:"reported_confidence"`
	Features           VoiceFeatures `json:"features"`
	Text               TextDetail    `json:"text_detail"`
}

// VoiceFeatures is the acoustic feature vector produced by an
// inference provider. In the built-in static provider these are fixed
// values standing in for a real acoustic model.
type VoiceFeatures struct {
	SpeechRate     string  `json:"speech_rate"`
	PausePattern   string  `json:"pause_pattern"`
	VoiceQuality   string  `json:"voice_quality"`
	EmotionalState string  `json:"emotional_state"`
	DistressScore  float64 `json:"distress_score"`
}

// ImageDetail carries the per-condition findings and quality metrics
// of an image analysis.
type ImageDetail struct {
	Findings        []ImageFinding `json:"findings"`
	Recommendations []string       `json:"recommendations"`
	Quality         ImageQuality   `json:"quality"`
}

// ImageFinding is one condition detected in an image.
type ImageFinding struct {
	Condition  SymptomToken `json:"condition"`
	Confidence float64      `json:"confidence"`
	Location   string       `json:"location"`
	Severity   SeverityTier `json:"severity"`
}

// ImageQuality reports technical metrics of the analyzed image.
type ImageQuality struct {
	Resolution string  `json:"resolution"`
	Sharpness  float64 `json:"sharpness"`
	Lighting   string  `json:"lighting"`
}
