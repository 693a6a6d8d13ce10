package widget

// Store exposes the widget configuration to HTTP handlers.
type Store interface {
	Get() Config
}

// MemoryStore implements Store with a fixed in-memory config, suitable for
// a demo that loads its configuration once at startup.
type MemoryStore struct {
	cfg Config
}

// NewMemoryStore returns a MemoryStore holding the supplied config.
func NewMemoryStore(cfg Config) *MemoryStore {
	return &MemoryStore{cfg: cfg}
}

// Get returns the widget configuration.
func (s *MemoryStore) Get() Config {
	return s.cfg
}
