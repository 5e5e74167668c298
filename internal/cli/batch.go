package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lifeguardcard/triagecore/internal/inference"
	"github.com/lifeguardcard/triagecore/internal/model"
	"github.com/lifeguardcard/triagecore/internal/pipeline"
	"github.com/lifeguardcard/triagecore/internal/worker"
)

var (
	concurrency  int
	batchOut     string
	batchTimeout time.Duration
)

// batchInput is the YAML shape of one batch entry.
type batchInput struct {
	Name       string  `yaml:"name"`
	Text       string  `yaml:"text,omitempty"`
	Transcript string  `yaml:"transcript,omitempty"`
	Confidence float64 `yaml:"confidence,omitempty"`
	ImagePath  string  `yaml:"image,omitempty"`
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Assess multiple inputs from a YAML file in parallel",
	Long: `Batch processes multiple assessment inputs concurrently:
- Read entries from a YAML file (name plus text, transcript or image path)
- Assess entries in parallel with configurable worker count
- Write one combined JSON report

Example input file:
  - name: patient-a
    text: 我头痛发热
  - name: patient-b
    transcript: 持续呕吐两天
    confidence: 0.88

Example:
  triagecore batch inputs.yaml
  triagecore batch inputs.yaml --concurrency 8 --out results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&batchOut, "out", "batch-results.json", "output JSON path")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 5*time.Minute, "total timeout for batch processing")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	items, err := loadBatchFile(file)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "⚙️  Assessing %d inputs with %d workers...\n", len(items), concurrency)

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose

	provider, err := inference.NewProvider(cfg.Inference)
	if err != nil {
		return err
	}

	p := pipeline.New(cfg, provider)
	processor := worker.NewBatchProcessor(p, concurrency)
	results := processor.Process(ctx, items)

	successCount := 0
	failureCount := 0
	type entry struct {
		Name       string            `json:"name"`
		Assessment *model.Assessment `json:"assessment,omitempty"`
		Error      string            `json:"error,omitempty"`
	}
	report := make([]entry, 0, len(results))

	for _, r := range results {
		e := entry{Name: r.Name, Assessment: r.Assessment}
		if r.Err != nil {
			failureCount++
			e.Error = r.Err.Error()
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Name, r.Err)
		} else {
			successCount++
			fmt.Fprintf(os.Stderr, "✓ %s: %s (urgency %d/4)\n", r.Name, r.Assessment.Severity, r.Assessment.Urgency)
		}
		report = append(report, e)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(batchOut, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", batchOut, err)
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d succeeded, %d failed. Results: %s\n", successCount, failureCount, batchOut)
	return nil
}

// loadBatchFile parses the YAML input file into batch items.
func loadBatchFile(path string) ([]worker.BatchItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	var inputs []batchInput
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return nil, fmt.Errorf("parse batch file: %w", err)
	}

	items := make([]worker.BatchItem, 0, len(inputs))
	for i, in := range inputs {
		name := in.Name
		if name == "" {
			name = fmt.Sprintf("entry-%d", i+1)
		}

		req := &model.AnalysisRequest{}
		switch {
		case in.Text != "":
			req.Type = model.ModalityText
			req.Text = in.Text
		case in.Transcript != "":
			req.Type = model.ModalityVoice
			req.Voice = &model.VoiceInput{Transcript: in.Transcript, Confidence: in.Confidence}
		case in.ImagePath != "":
			imgData, err := os.ReadFile(in.ImagePath)
			if err != nil {
				return nil, fmt.Errorf("read image for %s: %w", name, err)
			}
			req.Type = model.ModalityImage
			req.Image = &model.ImageInput{Data: imgData}
		default:
			return nil, fmt.Errorf("entry %s has no input", name)
		}

		items = append(items, worker.BatchItem{Name: name, Request: req})
	}
	return items, nil
}
