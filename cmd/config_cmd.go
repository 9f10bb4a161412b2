/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/jarvis/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd groups configuration helpers.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the resolved configuration",
}

// configShowCmd prints the effective configuration with the API key
// redacted.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := GetConfig()

		apiKey := "(not set)"
		if cfg.Weather.APIKey != "" {
			apiKey = "***redacted***"
		}

		if used := viper.ConfigFileUsed(); used != "" {
			fmt.Println(ui.StyleSubtle.Render("config file: " + used))
		}
		fmt.Printf("weather.apiKey:       %s\n", apiKey)
		fmt.Printf("weather.baseUrl:      %s\n", cfg.Weather.BaseURL)
		fmt.Printf("weather.defaultCity:  %s\n", cfg.Weather.DefaultCity)
		fmt.Printf("speech.enabled:       %t\n", cfg.Speech.Enabled)
		if cfg.Files.Catalog != "" {
			fmt.Printf("files.catalog:        %s\n", cfg.Files.Catalog)
		}
		if len(cfg.Music.Playlist) > 0 {
			fmt.Printf("music.playlist:       %d track(s)\n", len(cfg.Music.Playlist))
		}
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
