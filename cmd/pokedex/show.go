package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
	pokedexerrors "github.com/alexisbeaulieu97/pokedex/pkg/errors"
)

type showOptions struct {
	shiny      bool
	jsonOutput bool
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print the detail page of one Pokémon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.shiny, "shiny", false, "Use the shiny artwork")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags, opts *showOptions, id string) error {
	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	detail, err := app.Service.Detail(cmd.Context(), id, opts.shiny)
	if err != nil {
		var fetchErr *pokedexerrors.FetchError
		if errors.As(err, &fetchErr) && fetchErr.NotFound() {
			return newCommandError("show", fmt.Sprintf("pokemon %q", id), err, "Pass a number between 1 and 1008 or a lowercase name.")
		}
		return newCommandError("show", fmt.Sprintf("fetching pokemon %q", id), err, "Check your network connection or --api-url.")
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(detail)
	}
	return renderDetail(cmd.OutOrStdout(), detail)
}

func renderDetail(out io.Writer, d pokedex.Detail) error {
	fmt.Fprintf(out, "%s %s\n\n", d.Name, d.Number)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "Types:\t%s\n", typeLine(out, d.Types))
	fmt.Fprintf(writer, "Weight:\t%s\n", d.Weight)
	fmt.Fprintf(writer, "Height:\t%s\n", d.Height)
	fmt.Fprintf(writer, "Moves:\t%s\n", valueOrPlaceholder(strings.Join(d.Moves, ", ")))
	fmt.Fprintf(writer, "Artwork:\t%s\n", d.ArtworkURL)
	if err := writer.Flush(); err != nil {
		return err
	}

	if d.HasBio {
		fmt.Fprintf(out, "\n%s\n", d.Bio)
	}

	if len(d.Stats) > 0 {
		fmt.Fprintln(out, "\nBase stats")
		writer = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, st := range d.Stats {
			fmt.Fprintf(writer, "  %s\t%03d\n", st.Label, st.Value)
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}

	nav := []string{}
	if d.HasPrevious() {
		nav = append(nav, "previous: "+d.PreviousID)
	}
	if d.HasNext() {
		nav = append(nav, "next: "+d.NextID)
	}
	if len(nav) > 0 {
		fmt.Fprintf(out, "\n%s\n", strings.Join(nav, "  "))
	}
	return nil
}

func valueOrPlaceholder(value string) string {
	if strings.TrimSpace(value) == "" {
		return pokemon.Placeholder
	}
	return value
}
