package model

import "sort"

// SymptomToken is a canonical identifier for a clinical symptom.
// Tokens come from a fixed vocabulary and are recognized by the
// lexicon, never created at runtime.
type SymptomToken string

const (
	SymptomHeadache         SymptomToken = "headache"
	SymptomFever            SymptomToken = "fever"
	SymptomHighFever        SymptomToken = "high fever"
	SymptomNausea           SymptomToken = "nausea"
	SymptomVomiting         SymptomToken = "vomiting"
	SymptomPersistentVomit  SymptomToken = "persistent vomiting"
	SymptomDiarrhea         SymptomToken = "diarrhea"
	SymptomConstipation     SymptomToken = "constipation"
	SymptomFatigue          SymptomToken = "fatigue"
	SymptomDizziness        SymptomToken = "dizziness"
	SymptomChestPain        SymptomToken = "chest pain"
	SymptomAbdominalPain    SymptomToken = "abdominal pain"
	SymptomBreathDifficulty SymptomToken = "breathing difficulty"
	SymptomCough            SymptomToken = "cough"
	SymptomRash             SymptomToken = "rash"
	SymptomItching          SymptomToken = "itching"
	SymptomBleeding         SymptomToken = "bleeding"
	SymptomMajorBleeding    SymptomToken = "major bleeding"
	SymptomPain             SymptomToken = "pain"
	SymptomSeverePain       SymptomToken = "severe pain"
	SymptomPalpitations     SymptomToken = "palpitations"
	SymptomArrhythmia       SymptomToken = "arrhythmia"
	SymptomComa             SymptomToken = "coma"
	SymptomEdema            SymptomToken = "edema"
	SymptomNumbness         SymptomToken = "numbness"
	SymptomAppetiteLoss     SymptomToken = "appetite loss"
)

// SymptomSet is an order-insensitive, duplicate-free collection of
// symptom tokens.
type SymptomSet map[SymptomToken]struct{}

// NewSymptomSet builds a set from the given tokens.
func NewSymptomSet(tokens ...SymptomToken) SymptomSet {
	s := make(SymptomSet, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether the set contains the token.
func (s SymptomSet) Has(t SymptomToken) bool {
	_, ok := s[t]
	return ok
}

// Add inserts a token into the set.
func (s SymptomSet) Add(t SymptomToken) {
	s[t] = struct{}{}
}

// Intersects reports whether the two sets share at least one token.
func (s SymptomSet) Intersects(other SymptomSet) bool {
	// Iterate over the smaller set.
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for t := range small {
		if large.Has(t) {
			return true
		}
	}
	return false
}

// Tokens returns the set members as a slice. Order is unspecified;
// callers needing stable output must use Sorted.
func (s SymptomSet) Tokens() []SymptomToken {
	out := make([]SymptomToken, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	return out
}

// Sorted returns the set members in lexicographic order. Findings use
// this so identical input always yields an identical symptom list.
func (s SymptomSet) Sorted() []SymptomToken {
	out := s.Tokens()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
