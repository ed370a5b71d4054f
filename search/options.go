package search

import (
	"github.com/go-logr/logr"

	"github.com/katalvlaran/stepsearch/core"
)

// GraphFactory builds a fresh graph for Reset.
type GraphFactory func() (*core.Graph, error)

// Option configures an Engine at construction.
type Option func(*options)

type options struct {
	config    Config
	algorithm Algorithm
	logger    logr.Logger
	observers []Observer
	factory   GraphFactory
}

func defaultOptions() options {
	return options{
		config:    DefaultConfig(),
		algorithm: None,
		logger:    logr.Discard(),
	}
}

// WithConfig sets the initial parameters; Reset restores them.
func WithConfig(c Config) Option {
	return func(o *options) { o.config = c }
}

// WithAlgorithm selects the initial algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) { o.algorithm = a }
}

// WithLogger sets the engine logger. Step traces are logged at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver registers an observer. Panics if obs is nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("search: WithObserver(nil)")
	}

	return func(o *options) { o.observers = append(o.observers, obs) }
}

// WithGraphFactory sets the function Reset uses to rebuild the graph.
// Panics if f is nil.
func WithGraphFactory(f GraphFactory) Option {
	if f == nil {
		panic("search: WithGraphFactory(nil)")
	}

	return func(o *options) { o.factory = f }
}
