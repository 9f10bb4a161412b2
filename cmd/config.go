/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/jarvis/internal/intent"
	"github.com/josephgoksu/jarvis/internal/weather"
	"github.com/josephgoksu/jarvis/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = ".jarvis"
	envPrefix  = "JARVIS"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single validator instance; it caches struct info.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(config *types.AppConfig) error {
	return validate.Struct(config)
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present. The original assistant sourced
	// its weather key from .env, so absence is not an error.
	_ = godotenv.Load()

	// Environment variable handling must be set up BEFORE reading the
	// config file so env vars can influence config loading.
	viper.SetEnvPrefix(envPrefix) // e.g., JARVIS_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfgFileFlag := viper.GetString("config") // Value from --config flag

	if cfgFileFlag != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFileFlag)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)       // $HOME/.jarvis.yaml
		viper.AddConfigPath(".")        // ./.jarvis.yaml
		viper.SetConfigName(configName) // A file named ".jarvis"
	}

	// Attempt to read the configuration file.
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			} else if viper.GetBool("verbose") {
				// Config file not found by search paths, which is fine.
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	// Set default values
	viper.SetDefault("greeting", "Hello from Jarvis!")
	viper.SetDefault("weather.baseUrl", weather.DefaultBaseURL)
	viper.SetDefault("weather.defaultCity", intent.DefaultCity)
	viper.SetDefault("weather.requestTimeoutSeconds", 10)
	viper.SetDefault("speech.enabled", false)

	// Pin the weather key so Unmarshal sees it even when it only exists
	// as an environment variable. The key historically lived in
	// WEATHER_API_KEY; honor that when the prefixed variable and the
	// config file say nothing.
	key := viper.GetString("weather.apiKey")
	if key == "" {
		key = os.Getenv("WEATHER_API_KEY")
	}
	if key != "" {
		viper.Set("weather.apiKey", key)
	}

	// After all sources are configured, unmarshal into GlobalAppConfig
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	// Validate the populated configuration. A missing weather key is
	// not a validation failure; it only disables the weather intent.
	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}

	if GlobalAppConfig.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
}

// GetConfig returns the resolved application configuration.
func GetConfig() types.AppConfig {
	return GlobalAppConfig
}
