package history

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gkcodebase/folio/internal/portfolio"
	"github.com/gkcodebase/folio/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.SQLiteStore) {
	t.Helper()

	snapshots, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { snapshots.Close() })
	return NewStore(snapshots.DB()), snapshots
}

func TestLogAndRecent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for v := uint64(1); v <= 3; v++ {
		if err := store.Log(ctx, Entry{Version: v, Section: "title"}); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	// Newest first.
	if entries[0].Version != 3 || entries[2].Version != 1 {
		t.Errorf("order = %d, %d, %d", entries[0].Version, entries[1].Version, entries[2].Version)
	}
	for _, e := range entries {
		if e.ID == "" {
			t.Error("entry missing generated ID")
		}
		if e.Section != "title" {
			t.Errorf("section = %q", e.Section)
		}
		if e.Timestamp.IsZero() {
			t.Error("timestamp not recorded")
		} else if age := time.Since(e.Timestamp); age < 0 || age > time.Minute {
			t.Errorf("timestamp %v is not from this run", e.Timestamp)
		}
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for v := uint64(1); v <= 5; v++ {
		if err := store.Log(ctx, Entry{Version: v}); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}

func TestDeleteBefore(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Log(ctx, Entry{Version: 1}); err != nil {
		t.Fatalf("Log: %v", err)
	}

	// Nothing is older than the epoch.
	deleted, err := store.DeleteBefore(ctx, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("DeleteBefore: %v", err)
	}
	if deleted != 0 {
		t.Errorf("deleted %d, want 0", deleted)
	}

	// Everything is older than an hour from now.
	deleted, err = store.DeleteBefore(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("DeleteBefore: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted %d, want 1", deleted)
	}

	entries, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries after purge", len(entries))
	}
}

func TestFollowRecordsMutations(t *testing.T) {
	store, snapshots := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session := portfolio.NewSession(snapshots, true)
	if err := session.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		Follow(ctx, session, store)
	}()

	hero := session.Document().Hero
	hero.Title = "Recorded"
	raw, _ := json.Marshal(hero)
	if err := session.UpdateSection(ctx, portfolio.KeyHero, raw); err != nil {
		t.Fatalf("UpdateSection: %v", err)
	}

	// The follower runs on its own goroutine; poll briefly for the entry.
	deadline := time.Now().Add(2 * time.Second)
	for {
		entries, err := store.Recent(ctx, 0)
		if err != nil {
			t.Fatalf("Recent: %v", err)
		}
		if len(entries) == 1 {
			if entries[0].Version != 1 || entries[0].Section != portfolio.KeyHero {
				t.Errorf("entry = %+v", entries[0])
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("follower never recorded the mutation")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("follower did not stop on context cancel")
	}
}

func TestHistoryRoute(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for v := uint64(1); v <= 3; v++ {
		if err := store.Log(ctx, Entry{Version: v, Section: "skills"}); err != nil {
			t.Fatalf("Log: %v", err)
		}
	}

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	req := httptest.NewRequest("GET", "/api/history?limit=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var entries []Entry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}

func TestHistoryRouteEmptyFeedIsEmptyArray(t *testing.T) {
	store, _ := newTestStore(t)

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	req := httptest.NewRequest("GET", "/api/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Body.String(); got != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", got)
	}
}
