package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
)

func TestListCommand_TableOutput(t *testing.T) {
	isolateConfig(t)
	t.Setenv("POKEDEX_PAGE_SIZE", "2")
	upstream := fakeUpstream(t)

	stdout, _, err := executeCommand(t, "list", "--api-url", upstream.URL+"/api/v2", "--pages", "2")
	require.NoError(t, err)
	require.Contains(t, stdout, "NUMBER  NAME")
	require.Contains(t, stdout, "#001    Bulbasaur")
	require.Contains(t, stdout, "#003    Venusaur")
}

func TestListCommand_JSONOutputWithSearchAndSort(t *testing.T) {
	isolateConfig(t)
	t.Setenv("POKEDEX_PAGE_SIZE", "2")
	upstream := fakeUpstream(t)

	stdout, _, err := executeCommand(t, "list",
		"--api-url", upstream.URL+"/api/v2",
		"--pages", "5",
		"--search", "SAUR",
		"--sort", "name_desc",
		"--json",
	)
	require.NoError(t, err)

	var payload listJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, 3, payload.Count)
	require.Equal(t, pokemon.SortNameDesc, payload.Sort)
	require.Equal(t, "venusaur", payload.Items[0].Name)
	require.Equal(t, "bulbasaur", payload.Items[2].Name)
}

func TestListCommand_EmptyResult(t *testing.T) {
	isolateConfig(t)
	upstream := fakeUpstream(t)

	stdout, _, err := executeCommand(t, "list", "--api-url", upstream.URL+"/api/v2", "--generation", "9")
	require.NoError(t, err)
	require.Contains(t, stdout, "No Pokémon match")
}

func TestListCommand_RejectsBadFlags(t *testing.T) {
	isolateConfig(t)

	for _, args := range [][]string{
		{"list", "--sort", "weight"},
		{"list", "--generation", "12"},
		{"list", "--pages", "0"},
		{"list", "--type", "plasma"},
	} {
		_, _, err := executeCommand(t, args...)
		require.Error(t, err, args)

		var cmdErr *commandError
		require.ErrorAs(t, err, &cmdErr, args)
		require.Contains(t, err.Error(), "Suggestion:")
	}
}

func TestListCommand_UpstreamFailure(t *testing.T) {
	isolateConfig(t)
	t.Setenv("POKEDEX_RETRY_ATTEMPTS", "0")

	_, _, err := executeCommand(t, "list", "--api-url", "http://127.0.0.1:1/api/v2")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to list")
}
