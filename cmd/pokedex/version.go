package main

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/pokedex/internal/config"
)

// Set at link time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and the upstream API in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "pokedex %s\n", version)

			writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "commit:\t%s\n", commit)
			fmt.Fprintf(writer, "built:\t%s\n", date)
			fmt.Fprintf(writer, "go:\t%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(writer, "api:\t%s\n", apiBaseURL(flags))
			return writer.Flush()
		},
	}

	return cmd
}

// apiBaseURL reports the upstream the other commands would use. A broken
// config file is not an error here: version falls back to the default.
func apiBaseURL(flags *rootFlags) string {
	if flags.apiURL != "" {
		return flags.apiURL
	}
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Default().API.BaseURL
	}
	return cfg.API.BaseURL
}
