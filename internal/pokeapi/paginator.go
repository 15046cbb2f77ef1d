package pokeapi

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"github.com/alexisbeaulieu97/pokedex/internal/pokemon"
)

// PageFetcher loads a single list page. *Client satisfies it.
type PageFetcher interface {
	ListPage(ctx context.Context, pathOrURL string) (*ListPage, error)
}

// FirstPagePath returns the relative path of the first list page.
func FirstPagePath(pageSize int) string {
	return fmt.Sprintf("/pokemon?limit=%d", pageSize)
}

// Paginator accumulates list pages by following each page's next link.
// At most one fetch is in flight at a time.
type Paginator struct {
	fetcher  PageFetcher
	first    string
	fetching atomic.Bool

	mu      sync.RWMutex
	pages   []ListPage
	next    string
	started bool
}

// NewPaginator creates a paginator starting at firstPage, e.g. "/pokemon?limit=21".
func NewPaginator(fetcher PageFetcher, firstPage string) *Paginator {
	return &Paginator{fetcher: fetcher, first: firstPage}
}

// FetchNextPage loads the next page. It returns false without issuing a
// request when a fetch is already in flight or no next page exists.
func (p *Paginator) FetchNextPage(ctx context.Context) (bool, error) {
	if !p.fetching.CompareAndSwap(false, true) {
		return false, nil
	}
	defer p.fetching.Store(false)

	target, ok := p.nextTarget()
	if !ok {
		return false, nil
	}

	page, err := p.fetcher.ListPage(ctx, target)
	if err != nil {
		return false, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = true
	p.pages = append(p.pages, *page)
	p.next = ""
	if page.HasNext() {
		p.next = *page.Next
	}
	return true, nil
}

// Pages returns the accumulated pages in fetch order.
func (p *Paginator) Pages() []ListPage {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]ListPage, len(p.pages))
	copy(out, p.pages)
	return out
}

// Items returns every accumulated page flattened into list items.
func (p *Paginator) Items() []pokemon.ListItem {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var items []pokemon.ListItem
	for i := range p.pages {
		items = append(items, p.pages[i].Items()...)
	}
	return items
}

// IsFetching reports whether a page request is in flight.
func (p *Paginator) IsFetching() bool {
	return p.fetching.Load()
}

// HasNextPage reports whether another page can be fetched.
func (p *Paginator) HasNextPage() bool {
	_, ok := p.nextTarget()
	return ok
}

func (p *Paginator) nextTarget() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.started {
		return p.first, true
	}
	return p.next, p.next != ""
}
