package cache

import (
	"testing"
	"time"

	"github.com/lifeguardcard/triagecore/internal/model"
)

func TestKey_StableForIdenticalRequests(t *testing.T) {
	a := &model.AnalysisRequest{Type: model.ModalityText, Text: "我头痛发热"}
	b := &model.AnalysisRequest{Type: model.ModalityText, Text: "我头痛发热"}

	if Key(a) != Key(b) {
		t.Error("Expected identical requests to produce identical keys")
	}
}

func TestKey_DiffersAcrossInputs(t *testing.T) {
	text := &model.AnalysisRequest{Type: model.ModalityText, Text: "头痛"}
	other := &model.AnalysisRequest{Type: model.ModalityText, Text: "发热"}
	voice := &model.AnalysisRequest{
		Type:  model.ModalityVoice,
		Voice: &model.VoiceInput{Transcript: "头痛"},
	}

	if Key(text) == Key(other) {
		t.Error("Expected different text to produce different keys")
	}
	if Key(text) == Key(voice) {
		t.Error("Expected different modalities to produce different keys")
	}
}

func TestKey_CoversReportedConfidence(t *testing.T) {
	a := &model.AnalysisRequest{
		Type:  model.ModalityVoice,
		Voice: &model.VoiceInput{Transcript: "头痛", Confidence: 0.9},
	}
	b := &model.AnalysisRequest{
		Type:  model.ModalityVoice,
		Voice: &model.VoiceInput{Transcript: "头痛", Confidence: 0.3},
	}

	if Key(a) == Key(b) {
		t.Error("Expected different reported confidences to produce different keys")
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(model.CacheConfig{TTL: time.Minute})

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("Expected hit with value v, got %q (found=%v)", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Error("Expected miss after delete")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("assessment"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "assessment" {
		t.Errorf("Expected hit with stored value, got %q (found=%v)", val, found)
	}
}

func TestDiskCache_ExpiredEntryIsMiss(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Minute)

	if err := c.Set("k", []byte("old"), -time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, found := c.Get("k"); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestNew_SelectsLayerByConfig(t *testing.T) {
	if _, ok := New(model.CacheConfig{TTL: time.Minute}).(*MemoryCache); !ok {
		t.Error("Expected memory cache when no directory is set")
	}
	if _, ok := New(model.CacheConfig{Dir: t.TempDir(), TTL: time.Minute}).(*LayeredCache); !ok {
		t.Error("Expected layered cache when a directory is set")
	}
}

func TestLayeredCache_PromotesDiskHits(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(model.CacheConfig{Dir: dir, TTL: time.Minute})

	// Write through the disk layer only, simulating a restart.
	disk := NewDiskCache(dir, time.Minute)
	if err := disk.Set("k", []byte("persisted"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get("k")
	if !found || string(val) != "persisted" {
		t.Fatalf("Expected disk hit through layered cache, got %q (found=%v)", val, found)
	}

	// After promotion the memory layer serves it directly.
	if val, found := c.memory.Get("k"); !found || string(val) != "persisted" {
		t.Error("Expected entry promoted to memory layer")
	}
}
