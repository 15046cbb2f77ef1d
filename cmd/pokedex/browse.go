package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pokedex/internal/tui"
	"github.com/alexisbeaulieu97/pokedex/internal/tui/router"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [route]",
		Short: "Launch the interactive browser",
		Long: `Launch the interactive browser. The optional route opens a screen directly:
"/" for the list (default) or "/pokemon/<id>" for a detail page.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}
			return runBrowse(cmd, flags, path)
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, flags *rootFlags, path string) error {
	route, err := router.Parse(path)
	if err != nil {
		return newCommandError("open browser", path, err, `Use "/" or "/pokemon/<id>".`)
	}

	app, err := newAppContext(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	app.Logger.With("route", route.Path()).Info("launching browser")

	m := tui.NewModel(ctx, tui.Deps{
		Pager:   app.Service.NewPaginator(),
		API:     app.Client,
		Options: app.Service.Options(),
		Columns: app.Config.Display.Columns,
		Logger:  app.Logger,
	}, route)

	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if app.Config.Display.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		app.Logger.Error(err, "browser execution failed")
		return fmt.Errorf("failed to run browser: %w", err)
	}

	app.Logger.Info("browser closed")
	return nil
}
