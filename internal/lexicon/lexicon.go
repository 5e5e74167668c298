package lexicon

import (
	"strings"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// maxKeyPhrases caps how many segments ExtractKeyPhrases returns.
const maxKeyPhrases = 5

// pattern maps surface strings to a canonical symptom token. Matching
// is plain substring containment against the whole input, which is
// what a keyword triage layer wants: "剧烈疼痛" should light up both
// "severe pain" and "pain".
type pattern struct {
	token    model.SymptomToken
	surfaces []string
}

// Lexicon holds the fixed symptom and medical-term vocabularies.
// Built once and shared read-only across requests.
type Lexicon struct {
	patterns []pattern
	terms    []string
}

// New creates a lexicon with the built-in vocabularies. Chinese and
// English surface forms map to the same canonical tokens.
func New() *Lexicon {
	return &Lexicon{
		patterns: []pattern{
			{model.SymptomHeadache, []string{"头痛", "headache"}},
			{model.SymptomFever, []string{"发热", "发烧", "fever"}},
			{model.SymptomHighFever, []string{"高烧", "高热", "high fever"}},
			{model.SymptomNausea, []string{"恶心", "nausea"}},
			{model.SymptomVomiting, []string{"呕吐", "vomiting"}},
			{model.SymptomPersistentVomit, []string{"持续呕吐", "persistent vomiting"}},
			{model.SymptomDiarrhea, []string{"腹泻", "diarrhea"}},
			{model.SymptomConstipation, []string{"便秘", "constipation"}},
			{model.SymptomFatigue, []string{"乏力", "疲劳", "fatigue"}},
			{model.SymptomDizziness, []string{"头晕", "眩晕", "dizziness"}},
			{model.SymptomChestPain, []string{"胸痛", "胸口疼", "chest pain"}},
			{model.SymptomAbdominalPain, []string{"腹痛", "肚子疼", "abdominal pain"}},
			{model.SymptomBreathDifficulty, []string{"呼吸困难", "breathing difficulty", "shortness of breath"}},
			{model.SymptomCough, []string{"咳嗽", "cough"}},
			{model.SymptomRash, []string{"皮疹", "rash"}},
			{model.SymptomItching, []string{"瘙痒", "itching"}},
			{model.SymptomBleeding, []string{"出血", "bleeding"}},
			{model.SymptomMajorBleeding, []string{"大出血", "major bleeding", "heavy bleeding"}},
			{model.SymptomPain, []string{"疼痛", "pain"}},
			{model.SymptomSeverePain, []string{"剧烈疼痛", "剧痛", "severe pain"}},
			{model.SymptomPalpitations, []string{"心悸", "palpitations"}},
			{model.SymptomArrhythmia, []string{"心律不齐", "心律失常", "arrhythmia"}},
			{model.SymptomComa, []string{"昏迷", "coma", "unconscious"}},
			{model.SymptomEdema, []string{"水肿", "edema"}},
			{model.SymptomNumbness, []string{"麻木", "numbness"}},
			{model.SymptomAppetiteLoss, []string{"食欲不振", "appetite loss"}},
		},
		terms: []string{
			"化疗", "放疗", "靶向治疗", "免疫治疗", "手术",
			"白细胞", "血小板", "血红蛋白", "肿瘤标志物",
			"chemotherapy", "radiotherapy", "immunotherapy",
			"white blood cell", "platelet", "tumor marker",
		},
	}
}

// ExtractSymptoms returns every canonical token whose surface form
// appears in the text. Absence of matches yields an empty set, never
// an error.
func (l *Lexicon) ExtractSymptoms(text string) model.SymptomSet {
	found := model.SymptomSet{}
	for _, p := range l.patterns {
		for _, s := range p.surfaces {
			if strings.Contains(text, s) {
				found.Add(p.token)
				break
			}
		}
	}
	return found
}

// ExtractMedicalTerms filters the fixed medical-term vocabulary by
// containment, preserving vocabulary order.
func (l *Lexicon) ExtractMedicalTerms(text string) []string {
	var found []string
	for _, term := range l.terms {
		if strings.Contains(text, term) {
			found = append(found, term)
		}
	}
	return found
}

// ExtractKeyPhrases splits the text on sentence terminators, trims
// each segment, drops empties and returns at most the first five
// segments in original order.
func (l *Lexicon) ExtractKeyPhrases(text string) []string {
	segments := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '。', '！', '？', '.', '!', '?':
			return true
		}
		return false
	})

	var phrases []string
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		phrases = append(phrases, seg)
		if len(phrases) == maxKeyPhrases {
			break
		}
	}
	return phrases
}
