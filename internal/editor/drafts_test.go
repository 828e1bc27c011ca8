package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/gkcodebase/folio/internal/portfolio"
	"github.com/gkcodebase/folio/internal/storage"
)

func newTestManager(t *testing.T, editMode bool) (*Manager, *portfolio.Session) {
	t.Helper()

	session := portfolio.NewSession(storage.NewMemoryStore(), true)
	if err := session.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if editMode {
		session.ToggleEditMode()
	}
	return NewManager(session), session
}

func TestOpenRequiresEditMode(t *testing.T) {
	manager, _ := newTestManager(t, false)

	if _, err := manager.Open(portfolio.KeyHero); err == nil {
		t.Fatal("expected rejection with edit mode off")
	}
	if manager.OpenCount() != 0 {
		t.Error("no draft should have been created")
	}
}

func TestOpenUnknownSection(t *testing.T) {
	manager, _ := newTestManager(t, true)

	if _, err := manager.Open("missing"); err == nil {
		t.Fatal("expected rejection for unknown section")
	}
}

func TestDraftLifecycle(t *testing.T) {
	manager, session := newTestManager(t, true)
	ctx := context.Background()

	draft, err := manager.Open(portfolio.KeyHero)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if draft.Section != portfolio.KeyHero || draft.ID == "" {
		t.Fatalf("draft = %+v", draft)
	}

	// Editing the draft leaves the committed document alone.
	hero := session.Document().Hero
	hero.Title = "Drafted Name"
	value, _ := json.Marshal(hero)
	if _, err := manager.Update(draft.ID, value); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if session.Document().Hero.Title == "Drafted Name" {
		t.Fatal("draft edit leaked into the committed document")
	}

	// Save commits and closes the draft.
	if err := manager.Save(ctx, draft.ID); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if session.Document().Hero.Title != "Drafted Name" {
		t.Error("save did not commit the draft value")
	}
	if manager.OpenCount() != 0 {
		t.Error("saved draft still open")
	}
}

func TestSaveRenumbersParagraphs(t *testing.T) {
	manager, session := newTestManager(t, true)
	ctx := context.Background()

	draft, err := manager.Open(portfolio.KeyIntroduction)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	intro := session.Document().Introduction
	intro.Content = []portfolio.Paragraph{
		{Paragraph: 7, Text: "first"},
		{Paragraph: 2, Text: "second"},
	}
	value, _ := json.Marshal(intro)
	if _, err := manager.Update(draft.ID, value); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := manager.Save(ctx, draft.ID); err != nil {
		t.Fatalf("Save: %v", err)
	}

	content := session.Document().Introduction.Content
	if len(content) != 2 {
		t.Fatalf("got %d paragraphs", len(content))
	}
	for i, p := range content {
		if p.Paragraph != i+1 {
			t.Errorf("paragraph %d numbered %d, want %d", i, p.Paragraph, i+1)
		}
	}
}

func TestRejectedSaveKeepsDraftOpen(t *testing.T) {
	manager, session := newTestManager(t, true)
	ctx := context.Background()

	draft, err := manager.Open(portfolio.KeyHero)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := manager.Update(draft.ID, json.RawMessage(`[1,2,3]`)); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if err := manager.Save(ctx, draft.ID); err == nil {
		t.Fatal("expected rejection for non-record draft value")
	}
	if _, ok := manager.Get(draft.ID); !ok {
		t.Error("rejected save must keep the draft open")
	}
	if session.Version() != 0 {
		t.Error("rejected save changed the document")
	}
}

func TestReturnedDraftsAreIndependentCopies(t *testing.T) {
	manager, _ := newTestManager(t, true)

	opened, err := manager.Open(portfolio.KeyHero)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	// Scribbling on a returned value must not reach the stored draft.
	for i := range opened.Value {
		opened.Value[i] = 'x'
	}
	got, ok := manager.Get(opened.ID)
	if !ok {
		t.Fatal("draft disappeared")
	}
	if string(got.Value) == strings.Repeat("x", len(got.Value)) {
		t.Error("mutation of the returned draft reached the manager")
	}

	// Update holds its own copy of the caller's bytes.
	value := []byte(`{"title":"Held"}`)
	updated, err := manager.Update(opened.ID, value)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	value[2] = 'X'
	updated.Value[2] = 'Y'
	got, _ = manager.Get(opened.ID)
	if string(got.Value) != `{"title":"Held"}` {
		t.Errorf("stored value was aliased: %s", got.Value)
	}
}

func TestCancelDiscardsDraft(t *testing.T) {
	manager, session := newTestManager(t, true)

	draft, err := manager.Open(portfolio.KeyHero)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	manager.Cancel(draft.ID)

	if _, ok := manager.Get(draft.ID); ok {
		t.Error("canceled draft still retrievable")
	}
	if session.Version() != 0 {
		t.Error("cancel touched the committed document")
	}

	// Unknown IDs are a no-op.
	manager.Cancel("nope")
}

func TestDraftRoutes(t *testing.T) {
	manager, _ := newTestManager(t, true)
	r := chi.NewRouter()
	RegisterRoutes(r, manager)

	// Open.
	req := httptest.NewRequest("POST", "/api/drafts", bytes.NewReader([]byte(`{"section":"title"}`)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("open: status = %d: %s", w.Code, w.Body.String())
	}
	var draft Draft
	if err := json.Unmarshal(w.Body.Bytes(), &draft); err != nil {
		t.Fatalf("decoding draft: %v", err)
	}

	// Fetch it back.
	req = httptest.NewRequest("GET", "/api/drafts/"+draft.ID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get: status = %d", w.Code)
	}

	// Save it.
	req = httptest.NewRequest("POST", "/api/drafts/"+draft.ID+"/save", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("save: status = %d: %s", w.Code, w.Body.String())
	}

	// The saved draft is gone.
	req = httptest.NewRequest("GET", "/api/drafts/"+draft.ID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after save: status = %d, want 404", w.Code)
	}
}

func TestDraftRoutesOpenConflictWithoutEditMode(t *testing.T) {
	manager, _ := newTestManager(t, false)
	r := chi.NewRouter()
	RegisterRoutes(r, manager)

	req := httptest.NewRequest("POST", "/api/drafts", bytes.NewReader([]byte(`{"section":"title"}`)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}
