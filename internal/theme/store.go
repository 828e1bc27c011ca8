package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gkcodebase/folio/internal/storage"
)

// Store owns the theme settings and writes every change through to the
// snapshot store, under a key independent from the portfolio content.
type Store struct {
	mu        sync.Mutex
	snapshots storage.Store
	settings  Settings
	booted    bool
	persisted bool
}

// NewStore creates a theme settings store backed by the given snapshot store.
func NewStore(snapshots storage.Store) *Store {
	return &Store{
		snapshots: snapshots,
		settings:  DefaultSettings(),
		persisted: true,
	}
}

// Init loads persisted settings, merging them over the defaults so a partial
// snapshot (older fields only) still yields a complete record. A snapshot
// that fails to parse is ignored in favor of the defaults. Idempotent.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.booted {
		return nil
	}
	s.booted = true

	raw, ok, err := s.snapshots.Load(ctx, storage.SettingsKey)
	if err != nil {
		log.Printf("theme: loading snapshot: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		log.Printf("theme: discarding malformed snapshot: %v", err)
		return nil
	}
	settings.Normalize()
	s.settings = settings
	return nil
}

// Settings returns the current settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Replace sets the settings wholesale, normalizing invalid fields.
func (s *Store) Replace(ctx context.Context, settings Settings) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings.Normalize()
	s.settings = settings
	s.persist(ctx)
	return s.settings
}

// Apply merges a partial settings object over the current settings. Only the
// fields present in raw change; this backs the per-preference setters.
func (s *Store) Apply(ctx context.Context, raw json.RawMessage) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.settings
	if err := json.Unmarshal(raw, &next); err != nil {
		return s.settings, fmt.Errorf("applying settings: %w", err)
	}
	next.Normalize()

	s.settings = next
	s.persist(ctx)
	return s.settings, nil
}

// ToggleDarkMode flips the dark-mode preference and returns the new state.
func (s *Store) ToggleDarkMode(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.DarkMode = !s.settings.DarkMode
	s.persist(ctx)
	return s.settings.DarkMode
}

// Persisted reports whether the last write-through reached the snapshot
// store.
func (s *Store) Persisted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persisted
}

func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.settings)
	if err != nil {
		log.Printf("theme: serializing settings: %v", err)
		s.persisted = false
		return
	}
	if err := s.snapshots.Save(ctx, storage.SettingsKey, raw); err != nil {
		log.Printf("theme: persistence unavailable: %v", err)
		s.persisted = false
		return
	}
	s.persisted = true
}
