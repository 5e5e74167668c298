package worker

import (
	"context"
	"fmt"
	"testing"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// stubAssessor returns a canned severity per request text.
type stubAssessor struct{}

func (s *stubAssessor) Assess(_ context.Context, req *model.AnalysisRequest) (*model.Assessment, error) {
	if req.Text == "fail" {
		return nil, fmt.Errorf("%w: boom", model.ErrAnalysisFailed)
	}
	return &model.Assessment{
		Severity: model.SeverityLow,
		Urgency:  1,
	}, nil
}

func TestBatchProcessor_ResultsInInputOrder(t *testing.T) {
	b := NewBatchProcessor(&stubAssessor{}, 3)

	items := make([]BatchItem, 10)
	for i := range items {
		items[i] = BatchItem{
			Name:    fmt.Sprintf("item-%d", i),
			Request: &model.AnalysisRequest{Type: model.ModalityText, Text: "ok"},
		}
	}

	results := b.Process(context.Background(), items)

	if len(results) != 10 {
		t.Fatalf("Expected 10 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Name != fmt.Sprintf("item-%d", i) {
			t.Errorf("Result %d out of order: %s", i, r.Name)
		}
		if r.Err != nil {
			t.Errorf("Result %d: unexpected error %v", i, r.Err)
		}
	}
}

func TestBatchProcessor_OneFailureDoesNotAbortBatch(t *testing.T) {
	b := NewBatchProcessor(&stubAssessor{}, 2)

	items := []BatchItem{
		{Name: "good", Request: &model.AnalysisRequest{Type: model.ModalityText, Text: "ok"}},
		{Name: "bad", Request: &model.AnalysisRequest{Type: model.ModalityText, Text: "fail"}},
		{Name: "also-good", Request: &model.AnalysisRequest{Type: model.ModalityText, Text: "ok"}},
	}

	results := b.Process(context.Background(), items)

	if results[0].Err != nil || results[2].Err != nil {
		t.Error("Expected healthy items to succeed")
	}
	if results[1].Err == nil {
		t.Error("Expected failing item to carry its error")
	}
	if results[1].Assessment != nil {
		t.Error("Expected no partial result for failed item")
	}
}

func TestBatchProcessor_EmptyInput(t *testing.T) {
	b := NewBatchProcessor(&stubAssessor{}, 2)

	results := b.Process(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestBatchProcessor_DefaultConcurrency(t *testing.T) {
	b := NewBatchProcessor(&stubAssessor{}, 0)
	if b.concurrency != 4 {
		t.Errorf("Expected default concurrency 4, got %d", b.concurrency)
	}
}
