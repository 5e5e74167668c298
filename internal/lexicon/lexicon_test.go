package lexicon

import (
	"testing"

	"github.com/lifeguardcard/triagecore/internal/model"
)

func TestExtractSymptoms_ChineseInput(t *testing.T) {
	lex := New()

	symptoms := lex.ExtractSymptoms("我头痛发热")

	if !symptoms.Has(model.SymptomHeadache) {
		t.Error("Expected headache to be detected in '我头痛发热'")
	}
	if !symptoms.Has(model.SymptomFever) {
		t.Error("Expected fever to be detected in '我头痛发热'")
	}
	if len(symptoms) != 2 {
		t.Errorf("Expected exactly 2 symptoms, got %d: %v", len(symptoms), symptoms.Tokens())
	}
}

func TestExtractSymptoms_EnglishInput(t *testing.T) {
	lex := New()

	symptoms := lex.ExtractSymptoms("patient reports chest pain and nausea after chemotherapy")

	if !symptoms.Has(model.SymptomChestPain) {
		t.Error("Expected chest pain to be detected")
	}
	if !symptoms.Has(model.SymptomNausea) {
		t.Error("Expected nausea to be detected")
	}
	// "chest pain" contains the bare "pain" surface form as well.
	if !symptoms.Has(model.SymptomPain) {
		t.Error("Expected pain to be detected via containment")
	}
}

func TestExtractSymptoms_CompoundContainment(t *testing.T) {
	lex := New()

	// "剧烈疼痛" contains "疼痛": both the severe and the plain token
	// must be present.
	symptoms := lex.ExtractSymptoms("腹部剧烈疼痛")

	if !symptoms.Has(model.SymptomSeverePain) {
		t.Error("Expected severe pain token")
	}
	if !symptoms.Has(model.SymptomPain) {
		t.Error("Expected plain pain token")
	}
}

func TestExtractSymptoms_NoMatches(t *testing.T) {
	lex := New()

	symptoms := lex.ExtractSymptoms("今天天气很好")

	if len(symptoms) != 0 {
		t.Errorf("Expected empty set, got %v", symptoms.Tokens())
	}
}

func TestExtractSymptoms_Deterministic(t *testing.T) {
	lex := New()
	input := "头晕恶心，伴有呕吐"

	first := lex.ExtractSymptoms(input)
	second := lex.ExtractSymptoms(input)

	if len(first) != len(second) {
		t.Fatalf("Expected identical results, got %d vs %d tokens", len(first), len(second))
	}
	for tok := range first {
		if !second.Has(tok) {
			t.Errorf("Token %q missing from second extraction", tok)
		}
	}
}

func TestExtractMedicalTerms(t *testing.T) {
	lex := New()

	terms := lex.ExtractMedicalTerms("化疗后白细胞偏低")

	if len(terms) != 2 {
		t.Fatalf("Expected 2 terms, got %d: %v", len(terms), terms)
	}
	if terms[0] != "化疗" || terms[1] != "白细胞" {
		t.Errorf("Expected [化疗 白细胞] in vocabulary order, got %v", terms)
	}
}

func TestExtractMedicalTerms_Empty(t *testing.T) {
	lex := New()

	if terms := lex.ExtractMedicalTerms("没有相关词"); len(terms) != 0 {
		t.Errorf("Expected no terms, got %v", terms)
	}
}

func TestExtractKeyPhrases_FewerThanFive(t *testing.T) {
	lex := New()

	phrases := lex.ExtractKeyPhrases("头痛三天了。吃了止痛药没有效果！现在还发热？")

	if len(phrases) != 3 {
		t.Fatalf("Expected 3 phrases, got %d: %v", len(phrases), phrases)
	}
	expected := []string{"头痛三天了", "吃了止痛药没有效果", "现在还发热"}
	for i, want := range expected {
		if phrases[i] != want {
			t.Errorf("Phrase %d: expected %q, got %q", i, want, phrases[i])
		}
	}
}

func TestExtractKeyPhrases_CapsAtFive(t *testing.T) {
	lex := New()

	phrases := lex.ExtractKeyPhrases("一。二。三。四。五。六。七。")

	if len(phrases) != 5 {
		t.Fatalf("Expected 5 phrases, got %d", len(phrases))
	}
	if phrases[0] != "一" || phrases[4] != "五" {
		t.Errorf("Expected first five segments in order, got %v", phrases)
	}
}

func TestExtractKeyPhrases_TrimsAndDropsEmpty(t *testing.T) {
	lex := New()

	phrases := lex.ExtractKeyPhrases("  first segment .  . second segment!")

	if len(phrases) != 2 {
		t.Fatalf("Expected 2 phrases, got %d: %v", len(phrases), phrases)
	}
	if phrases[0] != "first segment" {
		t.Errorf("Expected trimmed phrase, got %q", phrases[0])
	}
	if phrases[1] != "second segment" {
		t.Errorf("Expected trimmed phrase, got %q", phrases[1])
	}
}
