// Package editor implements section edit drafts: a transient working copy of
// one section, opened for a dialog, that only reaches the committed document
// on an explicit save. Each draft walks the
// viewing -> editing -> saving|canceling state machine.
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gkcodebase/folio/internal/portfolio"
)

// Draft is an open edit dialog: a private deep copy of one section. The
// committed document never sees it until Save.
type Draft struct {
	ID        string          `json:"id"`
	Section   string          `json:"section"`
	Value     json.RawMessage `json:"value"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Manager owns the open drafts for an edit session.
type Manager struct {
	mu      sync.Mutex
	session *portfolio.Session
	drafts  map[string]*Draft
}

// NewManager creates a draft manager bound to the edit session.
func NewManager(session *portfolio.Session) *Manager {
	return &Manager{
		session: session,
		drafts:  make(map[string]*Draft),
	}
}

// Open snapshots the named section into a new draft. Drafts require edit
// mode; the section must exist.
func (m *Manager) Open(section string) (*Draft, error) {
	if !m.session.EditMode() {
		return nil, fmt.Errorf("edit mode is off")
	}

	value, ok := m.session.SectionJSON(section)
	if !ok {
		return nil, fmt.Errorf("section %q not found", section)
	}

	now := time.Now().UTC()
	draft := &Draft{
		ID:        uuid.New().String(),
		Section:   section,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[draft.ID] = draft
	return draft.snapshot(), nil
}

// snapshot copies a draft so callers never share the stored record. Must be
// called with the manager lock held.
func (d *Draft) snapshot() *Draft {
	c := *d
	c.Value = append(json.RawMessage(nil), d.Value...)
	return &c
}

// Get returns a copy of the draft with the given ID.
func (m *Manager) Get(id string) (*Draft, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft, ok := m.drafts[id]
	if !ok {
		return nil, false
	}
	return draft.snapshot(), true
}

// Update replaces the draft's working value and returns a copy. The
// committed document is untouched.
func (m *Manager) Update(id string, value json.RawMessage) (*Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft, ok := m.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft %q not found", id)
	}
	draft.Value = append(json.RawMessage(nil), value...)
	draft.UpdatedAt = time.Now().UTC()
	return draft.snapshot(), nil
}

// Save commits the draft as a whole-section replacement and closes it.
// Paragraph-numbered lists in the draft are renumbered before commit so a
// reordered draft lands contiguous. A rejected commit keeps the draft open.
func (m *Manager) Save(ctx context.Context, id string) error {
	m.mu.Lock()
	stored, ok := m.drafts[id]
	var draft *Draft
	if ok {
		draft = stored.snapshot()
	}
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("draft %q not found", id)
	}

	value, err := renumbered(draft.Value)
	if err != nil {
		return fmt.Errorf("saving draft %s: %w", id, err)
	}

	if err := m.session.UpdateSection(ctx, draft.Section, value); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.drafts, id)
	m.mu.Unlock()
	return nil
}

// Cancel discards the draft. The committed document is untouched. Canceling
// an unknown draft is a no-op.
func (m *Manager) Cancel(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, id)
}

// OpenCount returns the number of open drafts.
func (m *Manager) OpenCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.drafts)
}

// renumbered renumbers every paragraph-carrying list in the draft value.
// Non-record values pass through untouched; the session rejects them.
func renumbered(value json.RawMessage) (json.RawMessage, error) {
	var section map[string]interface{}
	if err := json.Unmarshal(value, &section); err != nil {
		return value, nil
	}
	for _, field := range section {
		if list, ok := field.([]interface{}); ok {
			portfolio.RenumberParagraphs(list)
		}
	}
	return json.Marshal(section)
}
