/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Greeting string        `mapstructure:"greeting"`
	Verbose  bool          `mapstructure:"verbose"`
	Config   string        `mapstructure:"config"`
	Weather  WeatherConfig `mapstructure:"weather" validate:"required"`
	Music    MusicConfig   `mapstructure:"music"`
	Files    FilesConfig   `mapstructure:"files"`
	Speech   SpeechConfig  `mapstructure:"speech"`
}

// WeatherConfig holds settings for the weather lookup collaborator.
// An empty APIKey does not fail validation; it disables the weather
// intent with a fixed "not configured" response instead.
type WeatherConfig struct {
	APIKey      string `mapstructure:"apiKey" validate:"omitempty,min=1"`
	BaseURL     string `mapstructure:"baseUrl" validate:"required,url"`
	DefaultCity string `mapstructure:"defaultCity" validate:"required"`
	// RequestTimeoutSeconds controls the HTTP client timeout for weather calls
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=1,max=120"`
}

// MusicConfig holds the playlist the playback cursor walks over.
type MusicConfig struct {
	Playlist []string `mapstructure:"playlist" validate:"omitempty,min=1,dive,min=1"`
}

// FilesConfig points at an optional catalog file for the file-search
// lookup table. When empty, the built-in sample catalog is used.
type FilesConfig struct {
	Catalog string `mapstructure:"catalog" validate:"omitempty"`
	Format  string `mapstructure:"format" validate:"omitempty,oneof=json yaml toml"`
}

// SpeechConfig controls the text-to-speech surface.
type SpeechConfig struct {
	Enabled bool `mapstructure:"enabled"`
}
