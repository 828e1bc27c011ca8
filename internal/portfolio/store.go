package portfolio

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/gkcodebase/folio/internal/storage"
)

// Event describes one committed mutation, delivered to subscribers so they
// can re-render. Section is empty when the whole document was replaced.
type Event struct {
	Version uint64 `json:"version"`
	Section string `json:"section,omitempty"`
}

// Session is the edit session store: the sole owner and sole mutator of the
// portfolio document. All mutation is funneled through its mutex, so
// operations are strictly serialized and no reader ever observes a document
// mixing two edits. Every mutation writes the whole document through to the
// snapshot store before returning.
type Session struct {
	mu        sync.Mutex
	snapshots storage.Store
	doc       *Document
	version   uint64
	devMode   bool
	editMode  bool
	booted    bool
	persisted bool

	subscribers map[int]chan Event
	nextSubID   int
}

// NewSession creates an edit session backed by the given snapshot store.
// devMode is the capability gate for edit mode, read once at startup.
func NewSession(snapshots storage.Store, devMode bool) *Session {
	return &Session{
		snapshots:   snapshots,
		devMode:     devMode,
		persisted:   true,
		subscribers: make(map[int]chan Event),
	}
}

// Init loads the document from the snapshot store, adopting the built-in
// default (and persisting it immediately) when the snapshot is absent or
// malformed. A malformed snapshot is never partially adopted. Init is
// idempotent; calls after the first are no-ops.
func (s *Session) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.booted {
		return nil
	}

	raw, ok, err := s.snapshots.Load(ctx, storage.PortfolioKey)
	if err != nil {
		log.Printf("portfolio: loading snapshot: %v", err)
	}

	if ok && err == nil {
		var doc Document
		parseErr := json.Unmarshal(raw, &doc)
		if parseErr == nil {
			doc.Normalize()
			s.doc = &doc
			s.booted = true
			return nil
		}
		log.Printf("portfolio: discarding malformed snapshot: %v", parseErr)
	}

	// Absent or corrupt snapshot: adopt the default and self-heal storage.
	s.doc = Default()
	s.booted = true
	s.persist(ctx)
	return nil
}

// persist writes the whole document through to the snapshot store. Storage
// failures degrade to in-memory-only semantics: the error is logged and the
// session keeps serving the in-memory document.
func (s *Session) persist(ctx context.Context) {
	raw, err := json.Marshal(s.doc)
	if err != nil {
		log.Printf("portfolio: serializing document: %v", err)
		s.persisted = false
		return
	}
	if err := s.snapshots.Save(ctx, storage.PortfolioKey, raw); err != nil {
		log.Printf("portfolio: persistence unavailable: %v", err)
		s.persisted = false
		return
	}
	s.persisted = true
}

// notify delivers the event to every subscriber without blocking; slow
// subscribers miss intermediate versions, not the document itself.
func (s *Session) notify(section string) {
	s.version++
	event := Event{Version: s.version, Section: section}
	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe registers a mutation listener. The returned cancel func must be
// called when the listener goes away.
func (s *Session) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan Event, 16)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
	return ch, cancel
}

// Document returns a deep copy of the current document. Callers may mutate
// the copy freely; committing a change goes through UpdateSection.
func (s *Session) Document() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// DocumentJSON returns the current document serialized as one JSON object.
func (s *Session) DocumentJSON() (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.Marshal(s.doc)
}

// SectionJSON returns the named section as JSON.
func (s *Session) SectionJSON(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.SectionJSON(key)
}

// UpdateSection replaces the named section wholesale with the decoded value.
// Partial standard-section objects are normalized (missing required lists
// become empty); a value that does not decode as a record is rejected and
// the prior state is left untouched.
func (s *Session) UpdateSection(ctx context.Context, key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateSectionLocked(ctx, key, value)
}

func (s *Session) updateSectionLocked(ctx context.Context, key string, value json.RawMessage) error {
	next := s.doc.Clone()
	if err := next.setSection(key, value); err != nil {
		log.Printf("portfolio: rejected update for section %s: %v", key, err)
		return fmt.Errorf("updating section %s: %w", key, err)
	}
	next.Normalize()

	s.doc = next
	s.persist(ctx)
	s.notify(key)
	return nil
}

// UpdateDocument replaces the entire document. Used when adding or removing
// whole custom sections.
func (s *Session) UpdateDocument(ctx context.Context, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc Document
	if err := json.Unmarshal(value, &doc); err != nil {
		log.Printf("portfolio: rejected document replacement: %v", err)
		return fmt.Errorf("replacing document: %w", err)
	}
	doc.Normalize()

	s.doc = &doc
	s.persist(ctx)
	s.notify("")
	return nil
}

// AddSection adds a viewer-created custom section seeded for the given kind.
// The ID is normalized; standard section keys cannot be shadowed.
func (s *Session) AddSection(ctx context.Context, id, title string, kind SectionKind, seed string) (string, error) {
	key := NormalizeSectionID(id)
	if key == "" {
		return "", fmt.Errorf("section id is required")
	}
	if IsStandardKey(key) {
		return "", fmt.Errorf("section id %q is reserved", key)
	}

	section, err := NewCustomSection(title, kind, seed)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc.Clone()
	if next.Custom == nil {
		next.Custom = make(map[string]CustomSection)
	}
	next.Custom[key] = section

	s.doc = next
	s.persist(ctx)
	s.notify(key)
	return key, nil
}

// RemoveSection removes a custom section. Standard sections cannot be
// removed; removing an absent custom section is a no-op.
func (s *Session) RemoveSection(ctx context.Context, key string) error {
	if IsStandardKey(key) {
		return fmt.Errorf("section %q cannot be removed", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doc.Custom[key]; !ok {
		return nil
	}

	next := s.doc.Clone()
	delete(next.Custom, key)

	s.doc = next
	s.persist(ctx)
	s.notify(key)
	return nil
}

// AddItem appends an item to the named sub-collection of a section and
// delegates to whole-section replacement. For category-map collections the
// item carries {"category": name, "item": value} and a missing category is
// created. Unknown sections or collections are silent no-ops.
func (s *Session) AddItem(ctx context.Context, sectionKey, collection string, item json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.doc.SectionJSON(sectionKey)
	if !ok {
		return nil
	}

	section, err := sectionToMap(raw)
	if err != nil {
		return fmt.Errorf("adding item to %s: %w", sectionKey, err)
	}

	var value interface{}
	if err := json.Unmarshal(item, &value); err != nil {
		return fmt.Errorf("decoding item for %s.%s: %w", sectionKey, collection, err)
	}

	if !appendToCollection(section, collection, value) {
		return nil
	}

	updated, err := json.Marshal(section)
	if err != nil {
		return fmt.Errorf("encoding section %s: %w", sectionKey, err)
	}
	return s.updateSectionLocked(ctx, sectionKey, updated)
}

// RemoveItem removes an item by locator from the named sub-collection and
// delegates to whole-section replacement. A category emptied by the removal
// is pruned; paragraph-numbered lists are renumbered from 1. Invalid
// locators are silent no-ops.
func (s *Session) RemoveItem(ctx context.Context, sectionKey, collection string, loc Locator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.doc.SectionJSON(sectionKey)
	if !ok {
		return nil
	}

	section, err := sectionToMap(raw)
	if err != nil {
		return fmt.Errorf("removing item from %s: %w", sectionKey, err)
	}

	if !removeFromCollection(section, collection, loc) {
		return nil
	}

	updated, err := json.Marshal(section)
	if err != nil {
		return fmt.Errorf("encoding section %s: %w", sectionKey, err)
	}
	return s.updateSectionLocked(ctx, sectionKey, updated)
}

// ToggleEditMode flips the edit-mode flag and returns the new state. It is a
// no-op unless the session runs in dev mode.
func (s *Session) ToggleEditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.devMode {
		return s.editMode
	}
	s.editMode = !s.editMode
	return s.editMode
}

// EditMode reports whether edit mode is active.
func (s *Session) EditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editMode
}

// DevMode reports whether the session runs with the edit capability enabled.
func (s *Session) DevMode() bool { return s.devMode }

// Version returns the document version, bumped on every mutation.
func (s *Session) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Persisted reports whether the last write-through reached the snapshot
// store. False means the session is running on in-memory state only.
func (s *Session) Persisted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persisted
}
