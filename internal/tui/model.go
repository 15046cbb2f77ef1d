package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pokedex/internal/logger"
	"github.com/alexisbeaulieu97/pokedex/internal/pokedex"
	"github.com/alexisbeaulieu97/pokedex/internal/tui/router"
)

// Deps wires the browser to its data sources.
type Deps struct {
	Pager   Pager
	API     ResourceFetcher
	Options pokedex.Options
	Columns int
	Logger  *logger.Logger
}

// Model is the root Bubbletea model of the browser. It owns the route
// history and delegates to the list or detail screen.
type Model struct {
	ctx   context.Context
	deps  Deps
	log   *logger.Logger
	stack *router.Stack

	list   listModel
	detail *detailModel

	width  int
	height int
}

// NewModel creates the browser positioned on start.
func NewModel(ctx context.Context, deps Deps, start router.Route) Model {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.With("component", "tui")

	m := Model{
		ctx:    ctx,
		deps:   deps,
		log:    log,
		stack:  router.NewStack(router.List()),
		list:   newListModel(ctx, deps.Pager, deps.Columns, log),
		width:  80,
		height: 24,
	}

	if start.Screen == router.ScreenDetail {
		m.stack.Push(start)
		d := newDetailModel(start.ID, deps.Options, m.width, m.height, log)
		m.detail = &d
	}

	return m
}

// Init starts the first list page fetch and, when opened on a detail
// route, that screen's fetches.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.list.init()}
	if m.detail != nil {
		cmds = append(cmds, m.detail.init(m.ctx, m.deps.API))
	}
	return tea.Batch(cmds...)
}

// Route returns the current route.
func (m Model) Route() router.Route {
	return m.stack.Current()
}

// Depth returns the number of history entries.
func (m Model) Depth() int {
	return m.stack.Len()
}
