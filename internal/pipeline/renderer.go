package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lifeguardcard/triagecore/internal/model"
)

// Renderer writes assessments to files and to stdout.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the assessment as indented JSON.
func (r *Renderer) RenderJSON(a *model.Assessment, path string) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes a human-readable summary of the assessment.
func (r *Renderer) RenderMarkdown(a *model.Assessment, path string) error {
	var b strings.Builder

	b.WriteString("# Triage Assessment\n\n")
	fmt.Fprintf(&b, "- **Severity**: %s\n", a.Severity)
	fmt.Fprintf(&b, "- **Urgency**: %d/4\n", a.Urgency)
	fmt.Fprintf(&b, "- **Confidence**: %.2f\n", a.Confidence)
	fmt.Fprintf(&b, "- **Follow-up required**: %v\n", a.FollowUpRequired)
	if a.SpecialtyRecommended != "" {
		fmt.Fprintf(&b, "- **Specialty**: %s\n", a.SpecialtyRecommended)
	}

	b.WriteString("\n## Detected symptoms\n\n")
	if len(a.Symptoms) == 0 {
		b.WriteString("None detected.\n")
	}
	for _, s := range a.Symptoms {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	b.WriteString("\n## Recommendations\n\n")
	for i, rec := range a.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}

	fmt.Fprintf(&b, "\nAssessed at %s via %s analysis.\n",
		a.AssessedAt.Format("2006-01-02 15:04:05 UTC"), a.ModalityDetail.Modality)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints a one-screen summary to stdout.
func (r *Renderer) RenderSummary(a *model.Assessment) {
	fmt.Printf("Severity:  %s (urgency %d/4, confidence %.2f)\n", a.Severity, a.Urgency, a.Confidence)
	if len(a.Symptoms) > 0 {
		parts := make([]string, len(a.Symptoms))
		for i, s := range a.Symptoms {
			parts[i] = string(s)
		}
		fmt.Printf("Symptoms:  %s\n", strings.Join(parts, ", "))
	}
	if a.SpecialtyRecommended != "" {
		fmt.Printf("Specialty: %s\n", a.SpecialtyRecommended)
	}
	for _, rec := range a.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}

// Render writes the assessment to the requested outputs.
func (p *Pipeline) Render(a *model.Assessment, jsonPath, mdPath string, verbose bool) error {
	renderer := NewRenderer()

	if jsonPath != "" {
		if err := renderer.RenderJSON(a, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := renderer.RenderMarkdown(a, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	renderer.RenderSummary(a)
	return nil
}
