package nlp

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// State is the lifecycle state of a Model.
type State string

const (
	StateNotLoaded State = "not_loaded"
	StateLoading   State = "loading"
	StateReady     State = "ready"
	StateFailed    State = "failed"
)

// Model lazily compiles its rule catalog the first time it is needed.
// Loading happens at most once; the outcome, success or failure, is cached.
type Model struct {
	name string
	src  []byte
	log  zerolog.Logger

	once sync.Once
	done chan struct{}

	mu      sync.RWMutex
	state   State
	catalog *Catalog
	err     error
}

// NewModel creates a model that compiles src on first use.
func NewModel(name string, src []byte, log zerolog.Logger) *Model {
	return &Model{
		name:  name,
		src:   src,
		log:   log.With().Str("model", name).Logger(),
		done:  make(chan struct{}),
		state: StateNotLoaded,
	}
}

// DefaultModel returns a model over the built-in keyword tables.
func DefaultModel(log zerolog.Logger) *Model {
	return NewModel("keyword-rules", defaultRules, log)
}

// Name returns the model identifier.
func (m *Model) Name() string { return m.name }

// State reports where the model is in its lifecycle.
func (m *Model) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Ready reports whether the catalog loaded successfully.
func (m *Model) Ready() bool { return m.State() == StateReady }

// Load starts loading on the first call and waits for it to finish.
// Cancelling ctx stops the wait, not the load.
func (m *Model) Load(ctx context.Context) (*Catalog, error) {
	m.once.Do(func() {
		m.mu.Lock()
		m.state = StateLoading
		m.mu.Unlock()
		go m.compile()
	})

	select {
	case <-m.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog, m.err
}

func (m *Model) compile() {
	defer close(m.done)

	start := time.Now()
	m.log.Info().Msg("loading nlp model")
	catalog, err := ParseCatalog(m.src)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.state = StateFailed
		m.err = err
		m.log.Error().Err(err).Msg("nlp model failed to load")
		return
	}
	m.state = StateReady
	m.catalog = catalog
	m.log.Info().
		Int("intent_rules", len(catalog.Intent.Rules)).
		Int("duration_rules", len(catalog.Duration.Rules)).
		Dur("elapsed", time.Since(start)).
		Msg("nlp model loaded (simulated mode)")
}
