// Package server exposes the list and detail projections as read-only JSON
// over HTTP, mirroring the browser's two routes.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/alexisbeaulieu97/pokedex/internal/logger"
	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
	pokedexerrors "github.com/alexisbeaulieu97/pokedex/pkg/errors"
)

// maxPages caps how many upstream pages a single list request may pull.
const maxPages = 50

// Service is what the handlers need from the pokedex layer.
type Service interface {
	List(ctx context.Context, q pokedex.ListQuery) ([]pokemon.ListItem, error)
	Detail(ctx context.Context, id string, shiny bool) (pokedex.Detail, error)
}

type handlers struct {
	svc Service
	log *logger.Logger
}

// ListResponse is the body of GET /.
type ListResponse struct {
	Count   int                `json:"count"`
	Items   []pokemon.ListItem `json:"items"`
	Search  string             `json:"search,omitempty"`
	Filters pokemon.Filters    `json:"filters"`
	Sort    pokemon.SortKey    `json:"sort"`
	Pages   int                `json:"pages"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// NewRouter registers the routes.
func NewRouter(svc Service, log *logger.Logger) *mux.Router {
	if log == nil {
		log = logger.Nop()
	}
	h := &handlers{svc: svc, log: log.With("component", "server")}

	r := mux.NewRouter()
	r.Use(h.requestID)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/", h.list).Methods(http.MethodGet)
	r.HandleFunc("/pokemon/{id}", h.detail).Methods(http.MethodGet)
	return r
}

type requestIDKey struct{}

func (h *handlers) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		h.log.WithFields(map[string]any{
			"request_id":  id,
			"method":      r.Method,
			"path":        r.URL.Path,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("request served")
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}

	items, err := h.svc.List(r.Context(), q)
	if err != nil {
		h.fail(w, r, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, ListResponse{
		Count:   len(items),
		Items:   items,
		Search:  q.Search,
		Filters: q.Filters,
		Sort:    q.Sort,
		Pages:   q.Pages,
	})
}

func (h *handlers) detail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		h.fail(w, r, http.StatusBadRequest, errors.New("missing pokemon id"))
		return
	}

	shiny := false
	if raw := r.URL.Query().Get("shiny"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.fail(w, r, http.StatusBadRequest, fmt.Errorf("invalid shiny value %q", raw))
			return
		}
		shiny = parsed
	}

	d, err := h.svc.Detail(r.Context(), id, shiny)
	if err != nil {
		h.fail(w, r, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func parseListQuery(r *http.Request) (pokedex.ListQuery, error) {
	values := r.URL.Query()
	q := pokedex.ListQuery{
		Search: values.Get("search"),
		Sort:   pokemon.SortIDAsc,
		Pages:  1,
	}

	if raw := values.Get("sort"); raw != "" {
		key, err := pokemon.ParseSortKey(raw)
		if err != nil {
			return q, err
		}
		q.Sort = key
	}

	if raw := values.Get("generation"); raw != "" {
		gen, err := strconv.Atoi(raw)
		if err != nil || gen < 0 || gen >= pokemon.GenerationCount {
			return q, fmt.Errorf("invalid generation %q: want 0-%d", raw, pokemon.GenerationCount-1)
		}
		q.Filters.Generation = gen
	}

	if raw := values.Get("types"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			if !pokemon.IsType(name) {
				return q, fmt.Errorf("unknown type %q", name)
			}
			q.Filters = q.Filters.ToggleType(name)
		}
	}

	if raw := values.Get("pages"); raw != "" {
		pages, err := strconv.Atoi(raw)
		if err != nil || pages < 1 || pages > maxPages {
			return q, fmt.Errorf("invalid pages %q: want 1-%d", raw, maxPages)
		}
		q.Pages = pages
	}

	return q, nil
}

// statusFor maps a service error to a response status. The client wraps
// context errors in FetchError, so those are checked first.
func statusFor(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	var fetchErr *pokedexerrors.FetchError
	if errors.As(err, &fetchErr) {
		if fetchErr.NotFound() {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	id := requestIDFrom(r.Context())
	h.log.WithFields(map[string]any{
		"request_id": id,
		"status":     status,
		"path":       r.URL.Path,
	}).Error(err, "request failed")
	writeJSON(w, status, errorResponse{Error: err.Error(), RequestID: id})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
