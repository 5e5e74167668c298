package worker

import (
	"context"
	"sync"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// Assessor runs one assessment request. Satisfied by the pipeline.
type Assessor interface {
	Assess(ctx context.Context, req *model.AnalysisRequest) (*model.Assessment, error)
}

// BatchItem is one named request in a batch run.
type BatchItem struct {
	Name    string
	Request *model.AnalysisRequest
}

// BatchResult pairs a batch item with its outcome. Failed items carry
// their error; the batch as a whole never aborts on one bad item.
type BatchResult struct {
	Name       string
	Assessment *model.Assessment
	Err        error
}

// BatchProcessor fans a set of assessment requests out over a fixed
// number of workers. Each assessment is independent, so results come
// back in input order but complete in any order.
type BatchProcessor struct {
	assessor    Assessor
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(assessor Assessor, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &BatchProcessor{assessor: assessor, concurrency: concurrency}
}

// Process runs all items and returns one result per item, in input
// order.
func (b *BatchProcessor) Process(ctx context.Context, items []BatchItem) []BatchResult {
	results := make([]BatchResult, len(items))
	if len(items) == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < b.concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				item := items[idx]
				assessment, err := b.assessor.Assess(ctx, item.Request)
				results[idx] = BatchResult{
					Name:       item.Name,
					Assessment: assessment,
					Err:        err,
				}
			}
		}()
	}

	for i := range items {
		select {
		case <-ctx.Done():
			// Mark the rest cancelled and stop feeding workers.
			for j := i; j < len(items); j++ {
				results[j] = BatchResult{Name: items[j].Name, Err: ctx.Err()}
			}
			close(jobs)
			wg.Wait()
			return results
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
