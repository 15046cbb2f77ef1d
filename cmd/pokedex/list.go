package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
	"github.com/alexisbeaulieu97/pokedex/internal/tui/components"
)

type listOptions struct {
	search     string
	generation int
	types      []string
	sort       string
	pages      int
	jsonOutput bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the Pokémon list after search, filters and sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Keep names containing this text, or the exact number")
	cmd.Flags().IntVarP(&opts.generation, "generation", "g", 0, "Restrict to a generation (1-9, 0 for all)")
	cmd.Flags().StringSliceVar(&opts.types, "type", nil, "Type filter (recorded, list entries carry no type data)")
	cmd.Flags().StringVar(&opts.sort, "sort", string(pokemon.SortIDAsc), "Sort key: id_asc, id_desc, name_asc, name_desc")
	cmd.Flags().IntVarP(&opts.pages, "pages", "p", 1, "Number of list pages to fetch")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	query, err := opts.query()
	if err != nil {
		return newCommandError("list", "parsing flags", err, "Run 'pokedex list --help' for accepted values.")
	}

	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	items, err := app.Service.List(cmd.Context(), query)
	if err != nil {
		return newCommandError("list", "fetching list pages", err, "Check your network connection or --api-url.")
	}

	if opts.jsonOutput {
		return renderListJSON(cmd.OutOrStdout(), query, items)
	}
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No Pokémon match the current search and filters.")
		return nil
	}
	return renderListTable(cmd.OutOrStdout(), items)
}

func (o *listOptions) query() (pokedex.ListQuery, error) {
	key, err := pokemon.ParseSortKey(o.sort)
	if err != nil {
		return pokedex.ListQuery{}, err
	}
	if _, ok := pokemon.Generation(o.generation); !ok {
		return pokedex.ListQuery{}, fmt.Errorf("unknown generation %d", o.generation)
	}
	if o.pages < 1 {
		return pokedex.ListQuery{}, fmt.Errorf("pages must be at least 1, got %d", o.pages)
	}

	filters := pokemon.Filters{Generation: o.generation}
	for _, name := range o.types {
		if !pokemon.IsType(name) {
			return pokedex.ListQuery{}, fmt.Errorf("unknown type %q", name)
		}
		filters = filters.ToggleType(name)
	}

	return pokedex.ListQuery{Search: o.search, Filters: filters, Sort: key, Pages: o.pages}, nil
}

func renderListTable(out io.Writer, items []pokemon.ListItem) error {
	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NUMBER\tNAME")

	for _, item := range items {
		fmt.Fprintf(writer, "%s\t%s\n", pokemon.PaddedNumber(strconv.Itoa(item.ID)), pokemon.DisplayName(item.Name))
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Count   int                `json:"count"`
	Search  string             `json:"search,omitempty"`
	Filters pokemon.Filters    `json:"filters"`
	Sort    pokemon.SortKey    `json:"sort"`
	Items   []pokemon.ListItem `json:"items"`
}

func renderListJSON(out io.Writer, query pokedex.ListQuery, items []pokemon.ListItem) error {
	if items == nil {
		items = []pokemon.ListItem{}
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(listJSONPayload{
		Count:   len(items),
		Search:  query.Search,
		Filters: query.Filters,
		Sort:    query.Sort,
		Items:   items,
	})
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// typeLine renders badges on a terminal and plain names elsewhere.
func typeLine(out io.Writer, typeNames []string) string {
	if len(typeNames) == 0 {
		return pokemon.Placeholder
	}
	if isTerminal(out) {
		return components.Badges(typeNames)
	}
	line := ""
	for i, name := range typeNames {
		if i > 0 {
			line += ", "
		}
		line += pokemon.DisplayName(name)
	}
	return line
}
