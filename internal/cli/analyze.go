package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lifeguardcard/triagecore/internal/inference"
	"github.com/lifeguardcard/triagecore/internal/model"
	"github.com/lifeguardcard/triagecore/internal/pipeline"
)

var (
	analyzeText       string
	analyzeTranscript string
	transcriptConf    float64
	imagePath         string
	outJSON           string
	outMD             string
	analyzeTimeout    time.Duration
	inferProvider     string
	inferModel        string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run one triage assessment from text, transcript or image",
	Long: `Analyze runs a single symptom assessment:
- Extract symptom tokens from the input
- Classify severity (low, moderate, high, critical)
- Derive urgency, specialty routing and recommendations

Exactly one of --text, --transcript or --image must be given.

Example:
  triagecore analyze --text "我头痛发热"
  triagecore analyze --transcript "胸痛，呼吸困难" --transcript-confidence 0.9
  triagecore analyze --image photo.jpg --json assessment.json --md assessment.md
  triagecore analyze --image photo.jpg --provider openai --model gpt-4o-mini`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Input flags
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "free-text symptom description")
	analyzeCmd.Flags().StringVar(&analyzeTranscript, "transcript", "", "voice transcript")
	analyzeCmd.Flags().Float64Var(&transcriptConf, "transcript-confidence", 0.9, "caller-reported transcript confidence")
	analyzeCmd.Flags().StringVar(&imagePath, "image", "", "path to an image file")

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")

	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 30*time.Second, "overall assessment timeout")

	// Inference flags
	analyzeCmd.Flags().StringVar(&inferProvider, "provider", "", "inference provider (static, openai)")
	analyzeCmd.Flags().StringVar(&inferModel, "model", "", "inference model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	req, err := buildRequest()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	if err := configureInference(cfg); err != nil {
		return err
	}

	provider, err := inference.NewProvider(cfg.Inference)
	if err != nil {
		return err
	}

	p := pipeline.New(cfg, provider)

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing %s input...\n", req.Type)
	}

	assessment, err := p.Assess(ctx, req)
	if err != nil {
		return fmt.Errorf("assess: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Detected %d symptoms\n", len(assessment.Symptoms))
		fmt.Fprintf(os.Stderr, "✓ Severity: %s (urgency %d/4)\n", assessment.Severity, assessment.Urgency)
		fmt.Fprintln(os.Stderr)
	}

	if err := p.Render(assessment, outJSON, outMD, verbose); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// buildRequest maps the input flags to an analysis request.
func buildRequest() (*model.AnalysisRequest, error) {
	set := 0
	for _, s := range []string{analyzeText, analyzeTranscript, imagePath} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of --text, --transcript or --image must be given")
	}

	switch {
	case analyzeText != "":
		return &model.AnalysisRequest{
			Type: model.ModalityText,
			Text: analyzeText,
		}, nil

	case analyzeTranscript != "":
		return &model.AnalysisRequest{
			Type: model.ModalityVoice,
			Voice: &model.VoiceInput{
				Transcript: analyzeTranscript,
				Confidence: transcriptConf,
			},
		}, nil

	default:
		data, err := os.ReadFile(imagePath)
		if err != nil {
			return nil, fmt.Errorf("read image: %w", err)
		}
		return &model.AnalysisRequest{
			Type:  model.ModalityImage,
			Image: &model.ImageInput{Data: data},
		}, nil
	}
}

// configureInference fills the inference section from flags and
// environment.
func configureInference(cfg *model.Config) error {
	if inferProvider == "" {
		return nil
	}
	cfg.Inference.Provider = inferProvider
	cfg.Inference.Model = inferModel

	if inferProvider == "openai" {
		cfg.Inference.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Inference.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}
	return nil
}
