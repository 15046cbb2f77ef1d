package config

import "time"

// Config is the full pokedex configuration document.
type Config struct {
	API     APIConfig     `yaml:"api" toml:"api"`
	Artwork ArtworkConfig `yaml:"artwork" toml:"artwork"`
	Display DisplayConfig `yaml:"display" toml:"display"`
	Log     LogConfig     `yaml:"log" toml:"log"`
	Server  ServerConfig  `yaml:"server" toml:"server"`
}

// APIConfig points the data-fetch layer at the upstream REST API.
type APIConfig struct {
	BaseURL       string        `yaml:"base_url" toml:"base_url" validate:"required,http_url"`
	Timeout       time.Duration `yaml:"timeout" toml:"timeout" validate:"min=0"`
	RetryAttempts int           `yaml:"retry_attempts" toml:"retry_attempts" validate:"min=0,max=10"`
	RetryDelay    time.Duration `yaml:"retry_delay" toml:"retry_delay" validate:"min=0"`
	PageSize      int           `yaml:"page_size" toml:"page_size" validate:"min=1,max=200"`
	UserAgent     string        `yaml:"user_agent" toml:"user_agent"`
}

// ArtworkConfig holds the CDN prefix for official artwork.
type ArtworkConfig struct {
	BaseURL string `yaml:"base_url" toml:"base_url" validate:"required,http_url"`
}

// DisplayConfig tunes the interactive screens.
type DisplayConfig struct {
	Language  string `yaml:"language" toml:"language" validate:"required,langtag"`
	Columns   int    `yaml:"columns" toml:"columns" validate:"min=1,max=6"`
	AltScreen bool   `yaml:"alt_screen" toml:"alt_screen"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level         string `yaml:"level" toml:"level" validate:"loglevel"`
	File          string `yaml:"file" toml:"file"`
	HumanReadable bool   `yaml:"human_readable" toml:"human_readable"`
}

// ServerConfig configures the read-only JSON projection served by `pokedex serve`.
type ServerConfig struct {
	Addr            string        `yaml:"addr" toml:"addr" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout" validate:"min=0"`
}

const (
	DefaultAPIBaseURL     = "https://pokeapi.co/api/v2"
	DefaultArtworkBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork"
	DefaultPageSize       = 21
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:       DefaultAPIBaseURL,
			Timeout:       10 * time.Second,
			RetryAttempts: 2,
			RetryDelay:    300 * time.Millisecond,
			PageSize:      DefaultPageSize,
			UserAgent:     "pokedex-tui",
		},
		Artwork: ArtworkConfig{
			BaseURL: DefaultArtworkBaseURL,
		},
		Display: DisplayConfig{
			Language:  "en",
			Columns:   3,
			AltScreen: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
	}
}
