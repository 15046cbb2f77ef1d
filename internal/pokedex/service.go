package pokedex

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/pokedex/internal/logger"
	"github.com/alexisbeaulieu97/pokedex/internal/pokeapi"
	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
)

// API is the slice of the data-fetch layer the service needs.
type API interface {
	pokeapi.PageFetcher
	Pokemon(ctx context.Context, id string) (*pokeapi.Pokemon, error)
	Species(ctx context.Context, id string) (*pokeapi.Species, error)
}

// ListQuery selects and orders list items.
type ListQuery struct {
	Search  string
	Filters pokemon.Filters
	Sort    pokemon.SortKey
	Pages   int
}

// Service composes the data-fetch layer with the derivations for the
// non-interactive surfaces (CLI and HTTP).
type Service struct {
	api      API
	opts     Options
	pageSize int
	log      *logger.Logger
}

// NewService wires a service.
func NewService(api API, opts Options, pageSize int, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if pageSize <= 0 {
		pageSize = 21
	}
	return &Service{api: api, opts: opts, pageSize: pageSize, log: log}
}

// Options returns the derivation options in use.
func (s *Service) Options() Options {
	return s.opts
}

// NewPaginator starts a fresh paginator over the list endpoint.
func (s *Service) NewPaginator() *pokeapi.Paginator {
	return pokeapi.NewPaginator(s.api, pokeapi.FirstPagePath(s.pageSize))
}

// List fetches up to q.Pages pages and runs the filter/sort pipeline over
// the accumulated items.
func (s *Service) List(ctx context.Context, q ListQuery) ([]pokemon.ListItem, error) {
	pages := q.Pages
	if pages <= 0 {
		pages = 1
	}
	sortKey := q.Sort
	if sortKey == "" {
		sortKey = pokemon.SortIDAsc
	}

	paginator := s.NewPaginator()
	for i := 0; i < pages && paginator.HasNextPage(); i++ {
		if _, err := paginator.FetchNextPage(ctx); err != nil {
			return nil, fmt.Errorf("fetch list page %d: %w", i+1, err)
		}
	}

	items := paginator.Items()
	s.log.WithFields(map[string]any{
		"pages": len(paginator.Pages()),
		"items": len(items),
	}).Debug("list fetched")

	return pokemon.Filter(items, q.Search, q.Filters, sortKey), nil
}

// Detail fetches the pokemon and species resources concurrently and
// derives the detail projection. A species failure only drops the bio;
// a pokemon failure is returned.
func (s *Service) Detail(ctx context.Context, id string, shiny bool) (Detail, error) {
	var (
		p  *pokeapi.Pokemon
		sp *pokeapi.Species
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = s.api.Pokemon(gctx, id)
		if err != nil {
			return fmt.Errorf("fetch pokemon %s: %w", id, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sp, err = s.api.Species(gctx, id)
		if err != nil {
			s.log.With("id", id).Error(err, "species fetch failed")
			sp = nil
		}
		return nil
	})

	err := g.Wait()
	return BuildDetail(id, p, sp, shiny, s.opts), err
}
