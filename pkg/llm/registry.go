package llm

import "sync"

// Constructor builds a provider by name. Wired in by the factory package to
// avoid an import cycle.
type Constructor func(name string) (LLMProvider, error)

// Registry lazily constructs providers and caches them by name. A provider
// whose construction failed with a ConfigError stays unavailable until the
// process restarts with new configuration.
type Registry struct {
	mu        sync.Mutex
	construct Constructor
	providers map[string]LLMProvider
	defName   string
}

func NewRegistry(defaultProvider string, construct Constructor) *Registry {
	return &Registry{
		construct: construct,
		providers: make(map[string]LLMProvider),
		defName:   defaultProvider,
	}
}

// DefaultName returns the provider used when a session does not name one.
func (r *Registry) DefaultName() string {
	return r.defName
}

// Get returns a cached provider or constructs it on first use.
func (r *Registry) Get(name string) (LLMProvider, error) {
	if name == "" {
		name = r.defName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.providers[name]; ok {
		return p, nil
	}
	p, err := r.construct(name)
	if err != nil {
		return nil, err
	}
	r.providers[name] = p
	return p, nil
}

// Available reports which of the given providers can currently be constructed.
func (r *Registry) Available(names []string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, n := range names {
		_, err := r.Get(n)
		out[n] = err == nil
	}
	return out
}
