/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/josephgoksu/jarvis/internal/logger"
	"github.com/josephgoksu/jarvis/internal/ui"
	"github.com/spf13/cobra"
)

// sayCmd represents the say command
var sayCmd = &cobra.Command{
	Use:   "say <utterance>",
	Short: "Process a single command and print the response",
	Long: `Process one plain-English command and print the assistant's response.

Examples:
  jarvis say "what time is it"
  jarvis say "weather in london"
  jarvis say "search for budget"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSay,
}

func init() {
	rootCmd.AddCommand(sayCmd)
}

func runSay(cmd *cobra.Command, args []string) error {
	defer logger.HandlePanic()
	logger.SetVersion(version)
	logger.SetCommand("say")

	utterance := strings.Join(args, " ")
	logger.SetLastUtterance(utterance)

	a, err := newAssistant(false)
	if err != nil {
		return err
	}
	defer a.Scheduler().Stop()

	for _, line := range a.Handle(context.Background(), utterance) {
		fmt.Println(ui.StyleAssistant.Render(line))
	}

	// Reminders need a running session to fire in; a one-shot
	// invocation cannot keep them alive.
	if pending := a.Scheduler().Pending(); pending > 0 {
		fmt.Println(ui.StyleSubtle.Render(
			fmt.Sprintf("Note: %d reminder(s) will not fire outside an interactive session. Use 'jarvis chat' to keep reminders alive.", pending)))
	}
	return nil
}
