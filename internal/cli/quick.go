package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lifeguardcard/triagecore/internal/quicktriage"
)

// quickCmd represents the quick command
var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Run the quick-triage questionnaire interactively",
	Long: `Quick walks through a short yes/no questionnaire and prints a
triage outcome: emergency, urgent, moderate or low.

A yes on an emergency question ends the questionnaire immediately.

Example:
  triagecore quick`,
	RunE: runQuick,
}

func init() {
	rootCmd.AddCommand(quickCmd)
}

func runQuick(cmd *cobra.Command, args []string) error {
	engine := quicktriage.NewEngine()
	session := engine.NewSession("interactive")
	reader := bufio.NewReader(os.Stdin)
	total := len(engine.Questions())

	fmt.Println("Quick triage. Answer y or n (b to go back, q to quit).")
	fmt.Println()

	for !session.Done() {
		q, ok := engine.CurrentQuestion(session)
		if !ok {
			break
		}
		fmt.Printf("[%d/%d] %s (y/n): ", session.CurrentIndex+1, total, q.Text)

		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			if err := engine.Answer(session, true); err != nil {
				return err
			}
		case "n", "no":
			if err := engine.Answer(session, false); err != nil {
				return err
			}
		case "b", "back":
			engine.Back(session)
		case "q", "quit":
			fmt.Println("Aborted.")
			return nil
		default:
			fmt.Println("Please answer y or n.")
		}
	}

	result := session.Result
	if result == nil {
		return fmt.Errorf("questionnaire ended without a result")
	}

	fmt.Println()
	fmt.Printf("Outcome: %s\n", result.Urgency)
	fmt.Println(result.Message)
	for _, action := range result.Actions {
		fmt.Printf("  - %s\n", action)
	}
	return nil
}
