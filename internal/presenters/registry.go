package presenters

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/muesli/termenv"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/presenters/console"
	"github.com/fadedpez/blackjack/pkg/presenters/tui"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

const (
	Console = "console"
	TUI     = "tui"
)

// Options are handed to every presenter factory
type Options struct {
	In      io.Reader
	Out     io.Writer
	Logger  *logging.Logger
	NoColor bool
}

// Factory builds a presenter
type Factory func(opts Options) (blackjack.Presenter, error)

// Registry manages presenter factories by name
type Registry struct {
	factories map[string]Factory
	mu        sync.RWMutex
}

// NewRegistry creates a new presenter registry
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Default returns a registry holding the console and tui presenters
func Default() *Registry {
	r := NewRegistry()
	r.MustRegisterPresenter(Console, func(opts Options) (blackjack.Presenter, error) {
		var consoleOpts []console.Option
		if opts.NoColor {
			consoleOpts = append(consoleOpts, console.WithColorProfile(termenv.Ascii))
		}
		return console.NewPresenter(opts.In, opts.Out, opts.Logger, consoleOpts...), nil
	})
	r.MustRegisterPresenter(TUI, func(opts Options) (blackjack.Presenter, error) {
		return tui.NewPresenter(opts.In, opts.Out, opts.Logger), nil
	})
	return r
}

// RegisterPresenter registers a presenter factory with the registry
func (r *Registry) RegisterPresenter(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("Presenter %s is already registered", name))
	}

	r.factories[name] = factory
	return nil
}

// MustRegisterPresenter is like RegisterPresenter but panics if name is taken
func (r *Registry) MustRegisterPresenter(name string, factory Factory) {
	if err := r.RegisterPresenter(name, factory); err != nil {
		panic(err)
	}
}

// GetFactory returns the factory for a given presenter name
func (r *Registry) GetFactory(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, types.NewGameError(types.ErrPresenterNotFound, fmt.Sprintf("Presenter %s not found", name))
	}

	return factory, nil
}

// Create builds the named presenter
func (r *Registry) Create(name string, opts Options) (blackjack.Presenter, error) {
	factory, err := r.GetFactory(name)
	if err != nil {
		return nil, err
	}

	return factory(opts)
}

// ListPresenters returns the registered presenter names in order
func (r *Registry) ListPresenters() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
