/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/jarvis/internal/ui"
	"github.com/spf13/cobra"
)

// commandsCmd represents the commands command
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the phrases the assistant understands",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.StyleTitle.Render("Available Commands"))
		for _, entry := range [][2]string{
			{`"What time is it?"`, "Get the current time"},
			{`"What's the weather like?"`, "Get weather information"},
			{`"Schedule a [task] at [time]"`, "Create a reminder"},
			{`"Show my tasks"`, "List all scheduled tasks"},
			{`"Play music"`, "Start playing music"},
			{`"Pause music" or "Stop music"`, "Pause music playback"},
			{`"Next song"`, "Skip to the next track"},
			{`"Search for [file name]"`, "Search the file catalog"},
			{`"What is [topic]?"`, "Ask a general question"},
		} {
			fmt.Printf("  %s %s\n", ui.StylePrimary.Render(entry[0]), ui.StyleSubtle.Render("- "+entry[1]))
		}
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
