package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
	pokedexerrors "github.com/alexisbeaulieu97/pokedex/pkg/errors"
)

type fakeService struct {
	lastQuery pokedex.ListQuery
	lastShiny bool
	listErr   error
	detailErr error
}

func (f *fakeService) List(_ context.Context, q pokedex.ListQuery) ([]pokemon.ListItem, error) {
	f.lastQuery = q
	if f.listErr != nil {
		return nil, f.listErr
	}
	items := []pokemon.ListItem{{ID: 1, Name: "bulbasaur"}, {ID: 4, Name: "charmander"}}
	return pokemon.Filter(items, q.Search, q.Filters, q.Sort), nil
}

func (f *fakeService) Detail(_ context.Context, id string, shiny bool) (pokedex.Detail, error) {
	f.lastShiny = shiny
	d := pokedex.BuildDetail(id, nil, nil, shiny, pokedex.Options{ArtworkBaseURL: "https://art.test"})
	return d, f.detailErr
}

func serve(t *testing.T, svc Service, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	NewRouter(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestListHandler(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	rec := serve(t, svc, "/?search=char&sort=name_desc&generation=1&pages=3&types=fire,Water")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body ListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, []pokemon.ListItem{{ID: 4, Name: "charmander"}}, body.Items)
	assert.Equal(t, pokemon.SortNameDesc, body.Sort)

	assert.Equal(t, 3, svc.lastQuery.Pages)
	assert.Equal(t, 1, svc.lastQuery.Filters.Generation)
	assert.Equal(t, []string{"fire", "water"}, svc.lastQuery.Filters.Types)
}

func TestListHandlerDefaults(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	rec := serve(t, svc, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pokedex.ListQuery{Sort: pokemon.SortIDAsc, Pages: 1}, svc.lastQuery)
}

func TestListHandlerRejectsBadQueries(t *testing.T) {
	t.Parallel()

	for _, target := range []string{
		"/?sort=random",
		"/?generation=10",
		"/?generation=x",
		"/?pages=0",
		fmt.Sprintf("/?pages=%d", maxPages+1),
		"/?types=plasma",
	} {
		rec := serve(t, &fakeService{}, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)

		var body errorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.NotEmpty(t, body.Error, target)
		assert.NotEmpty(t, body.RequestID, target)
	}
}

func TestDetailHandler(t *testing.T) {
	t.Parallel()

	svc := &fakeService{}
	rec := serve(t, svc, "/pokemon/25?shiny=true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.lastShiny)

	var body pokedex.Detail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "#025", body.Number)
	assert.Equal(t, "https://art.test/shiny/25.png", body.ArtworkURL)
	assert.Equal(t, "24", body.PreviousID)
}

func TestDetailHandlerErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		target string
		status int
	}{
		{name: "not found", err: pokedexerrors.NewStatusError("u", http.StatusNotFound), target: "/pokemon/9999", status: http.StatusNotFound},
		{name: "upstream down", err: pokedexerrors.NewStatusError("u", http.StatusServiceUnavailable), target: "/pokemon/1", status: http.StatusBadGateway},
		{name: "timeout", err: pokedexerrors.NewFetchError("u", context.DeadlineExceeded), target: "/pokemon/1", status: http.StatusGatewayTimeout},
		{name: "cancelled", err: pokedexerrors.NewFetchError("u", context.Canceled), target: "/pokemon/1", status: http.StatusGatewayTimeout},
		{name: "bare deadline", err: context.DeadlineExceeded, target: "/pokemon/1", status: http.StatusGatewayTimeout},
		{name: "other", err: errors.New("boom"), target: "/pokemon/1", status: http.StatusInternalServerError},
		{name: "bad shiny", target: "/pokemon/1?shiny=maybe", status: http.StatusBadRequest},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := serve(t, &fakeService{detailErr: tc.err}, tc.target)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestRoutesRejectOtherMethods(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewRouter(&fakeService{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pokemon/1", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRequestIDIsPropagated(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec := httptest.NewRecorder()
	NewRouter(&fakeService{}, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "abc", rec.Header().Get("X-Request-ID"))
}

func TestServerShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := New(ln.Addr().String(), NewRouter(&fakeService{}, nil), time.Second, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
