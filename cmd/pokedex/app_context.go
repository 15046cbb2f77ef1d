package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pokedex/internal/config"
	"github.com/alexisbeaulieu97/pokedex/internal/logger"
	"github.com/alexisbeaulieu97/pokedex/internal/pokeapi"
	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
	pokedexerrors "github.com/alexisbeaulieu97/pokedex/pkg/errors"
)

// AppContext bundles the long-lived services a command needs.
type AppContext struct {
	Config    *config.Config
	Logger    *logger.Logger
	Client    *pokeapi.Client
	Service   *pokedex.Service
	SessionID string

	logFile io.Closer
}

// newAppContext loads configuration and wires the services. Interactive
// commands never log to the terminal: without a log file they discard.
func newAppContext(cmd *cobra.Command, flags *rootFlags, interactive bool) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("load configuration", describeConfigError(err), err,
			"Fix the reported field or run without --config to use the defaults.")
	}

	if flags.apiURL != "" {
		cfg.API.BaseURL = flags.apiURL
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, newCommandError("load configuration", "validating flag overrides", err,
			"Pass an absolute http(s) URL to --api-url.")
	}

	app := &AppContext{Config: cfg, SessionID: uuid.NewString()}

	log, err := app.openLogger(cmd, interactive)
	if err != nil {
		return nil, newCommandError("initialise logging", cfg.Log.File, err,
			"Check that the log file directory exists and is writable.")
	}
	app.Logger = log.WithFields(map[string]any{
		"session_id": app.SessionID,
		"command":    cmd.Name(),
	})

	client, err := pokeapi.New(cfg.API, app.Logger)
	if err != nil {
		_ = app.Close()
		return nil, newCommandError("create API client", cfg.API.BaseURL, err,
			"Check api.base_url in your configuration.")
	}
	app.Client = client
	app.Service = pokedex.NewService(client, pokedex.Options{
		ArtworkBaseURL: cfg.Artwork.BaseURL,
		Language:       cfg.Display.Language,
	}, cfg.API.PageSize, app.Logger)

	return app, nil
}

func (a *AppContext) openLogger(cmd *cobra.Command, interactive bool) (*logger.Logger, error) {
	var writer io.Writer
	switch {
	case a.Config.Log.File != "":
		f, err := os.OpenFile(a.Config.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		a.logFile = f
		writer = f
	case interactive:
		return logger.Nop(), nil
	default:
		writer = cmd.ErrOrStderr()
	}

	return logger.New(logger.Options{
		Level:         a.Config.Log.Level,
		HumanReadable: a.Config.Log.HumanReadable,
		Writer:        writer,
	})
}

// Close releases the log file, if any.
func (a *AppContext) Close() error {
	if a == nil || a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

func describeConfigError(err error) string {
	var parseErr *pokedexerrors.ParseError
	if errors.As(err, &parseErr) {
		if parseErr.Line > 0 {
			return fmt.Sprintf("%s (line %d)", parseErr.Path, parseErr.Line)
		}
		return parseErr.Path
	}
	var validationErr *pokedexerrors.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("invalid value for %s", validationErr.Field)
	}
	return "reading configuration"
}
