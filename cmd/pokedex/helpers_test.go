package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolateConfig keeps the user's own config and environment out of the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		"POKEDEX_API_BASE_URL", "POKEDEX_PAGE_SIZE", "POKEDEX_LANGUAGE",
		"POKEDEX_LOG_LEVEL", "POKEDEX_LOG_FILE", "POKEDEX_SERVER_ADDR",
		"POKEDEX_RETRY_ATTEMPTS", "POKEDEX_ARTWORK_BASE_URL",
	} {
		t.Setenv(key, "")
	}
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/api/v2/pokemon", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("offset") == "2" {
			writeTestJSON(t, w, map[string]any{
				"count": 3,
				"next":  nil,
				"results": []map[string]string{
					{"name": "venusaur", "url": "https://pokeapi.co/api/v2/pokemon/3/"},
				},
			})
			return
		}
		writeTestJSON(t, w, map[string]any{
			"count": 3,
			"next":  server.URL + "/api/v2/pokemon?offset=2&limit=2",
			"results": []map[string]string{
				{"name": "bulbasaur", "url": "https://pokeapi.co/api/v2/pokemon/1/"},
				{"name": "ivysaur", "url": "https://pokeapi.co/api/v2/pokemon/2/"},
			},
		})
	})
	mux.HandleFunc("/api/v2/pokemon/1", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, map[string]any{
			"id": 1, "name": "bulbasaur", "weight": 69, "height": 7,
			"types": []map[string]any{{"slot": 1, "type": map[string]string{"name": "grass"}}},
			"stats": []map[string]any{{"base_stat": 45, "stat": map[string]string{"name": "hp"}}},
			"moves": []map[string]any{{"move": map[string]string{"name": "razor-wind"}}},
		})
	})
	mux.HandleFunc("/api/v2/pokemon-species/1/", func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, map[string]any{
			"id": 1,
			"flavor_text_entries": []map[string]any{
				{"flavor_text": "A strange seed was\nplanted.", "language": map[string]string{"name": "en"}},
			},
		})
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}
