/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/jarvis/internal/logger"
	"github.com/josephgoksu/jarvis/internal/ui"
	"github.com/spf13/cobra"
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive assistant session",
	Long: `Start an interactive session. Type commands in plain English; the
assistant responds inline and scheduled reminders pop up as they fire.

Examples:
  jarvis chat
  > what time is it
  > remind me to call mom at 3 pm
  > play music`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	defer logger.HandlePanic()
	logger.SetVersion(version)
	logger.SetCommand("chat")

	a, err := newAssistant(true)
	if err != nil {
		return err
	}
	defer a.Scheduler().Stop()

	model := ui.NewChatModel(context.Background(), a)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("chat session failed: %w", err)
	}
	return nil
}
