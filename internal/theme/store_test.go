package theme

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/gkcodebase/folio/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()

	snapshots := storage.NewMemoryStore()
	store := NewStore(snapshots)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return store, snapshots
}

func TestInitEmptyStoreServesDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	if store.Settings() != DefaultSettings() {
		t.Errorf("settings = %+v", store.Settings())
	}
}

func TestInitAdoptsSnapshotAndNormalizes(t *testing.T) {
	snapshots := storage.NewMemoryStore()
	ctx := context.Background()

	// theme is valid; fontSize and primaryColor are not.
	raw := []byte(`{"theme":"spotify","fontSize":"huge","primaryColor":"chartreuse","darkMode":true}`)
	if err := snapshots.Save(ctx, storage.SettingsKey, raw); err != nil {
		t.Fatalf("Save: %v", err)
	}

	store := NewStore(snapshots)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}

	settings := store.Settings()
	if settings.Theme != ThemeSpotify {
		t.Errorf("theme = %q", settings.Theme)
	}
	if !settings.DarkMode {
		t.Error("darkMode lost")
	}
	if settings.FontSize != SizeBase {
		t.Errorf("invalid fontSize must reset to default, got %q", settings.FontSize)
	}
	if settings.PrimaryColor != DefaultSettings().PrimaryColor {
		t.Errorf("invalid primaryColor must reset to default, got %q", settings.PrimaryColor)
	}
}

func TestInitCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	snapshots := storage.NewMemoryStore()
	ctx := context.Background()
	if err := snapshots.Save(ctx, storage.SettingsKey, []byte(`{{{`)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	store := NewStore(snapshots)
	if err := store.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if store.Settings() != DefaultSettings() {
		t.Errorf("settings = %+v", store.Settings())
	}
}

func TestApplyMergesPartialObject(t *testing.T) {
	store, snapshots := newTestStore(t)
	ctx := context.Background()

	got, err := store.Apply(ctx, json.RawMessage(`{"fontFamily":"poppins"}`))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.FontFamily != FontPoppins {
		t.Errorf("fontFamily = %q", got.FontFamily)
	}
	// Untouched fields survive the merge.
	if got.Theme != DefaultSettings().Theme || got.PrimaryColor != DefaultSettings().PrimaryColor {
		t.Errorf("merge clobbered untouched fields: %+v", got)
	}

	// Write-through happened.
	raw, ok, _ := snapshots.Load(ctx, storage.SettingsKey)
	if !ok {
		t.Fatal("settings not persisted")
	}
	var persisted Settings
	if err := json.Unmarshal(raw, &persisted); err != nil {
		t.Fatalf("persisted settings do not parse: %v", err)
	}
	if persisted.FontFamily != FontPoppins {
		t.Error("snapshot does not reflect the change")
	}
}

func TestApplyRejectsMalformedInput(t *testing.T) {
	store, _ := newTestStore(t)

	before := store.Settings()
	if _, err := store.Apply(context.Background(), json.RawMessage(`"just a string"`)); err == nil {
		t.Fatal("expected rejection")
	}
	if store.Settings() != before {
		t.Error("rejected apply changed the settings")
	}
}

func TestReplaceNormalizesInvalidFields(t *testing.T) {
	store, _ := newTestStore(t)

	got := store.Replace(context.Background(), Settings{
		Theme:          "hologram",
		FontFamily:     FontLato,
		PrimaryColor:   "#1g2h3i",
		SecondaryColor: "#10b981",
	})
	if got.Theme != DefaultSettings().Theme {
		t.Errorf("unknown theme must reset, got %q", got.Theme)
	}
	if got.FontFamily != FontLato {
		t.Errorf("fontFamily = %q", got.FontFamily)
	}
	if got.PrimaryColor != DefaultSettings().PrimaryColor {
		t.Errorf("partially-hex color must reset, got %q", got.PrimaryColor)
	}
	if got.SecondaryColor != "#10b981" {
		t.Errorf("valid color must survive, got %q", got.SecondaryColor)
	}
}

func TestToggleDarkMode(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if !store.ToggleDarkMode(ctx) {
		t.Error("expected dark mode on after first toggle")
	}
	if store.ToggleDarkMode(ctx) {
		t.Error("expected dark mode off after second toggle")
	}
}

func newThemeRouter(t *testing.T) (chi.Router, *Store) {
	t.Helper()

	store, _ := newTestStore(t)
	r := chi.NewRouter()
	RegisterRoutes(r, store)
	return r, store
}

func TestSettingsRoutes(t *testing.T) {
	r, _ := newThemeRouter(t)

	req := httptest.NewRequest("GET", "/api/settings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp settingsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Classes) != 3 {
		t.Errorf("classes = %v", resp.Classes)
	}

	// PATCH merges a single preference.
	req = httptest.NewRequest("PATCH", "/api/settings", bytes.NewReader([]byte(`{"theme":"uber"}`)))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("patch: status = %d: %s", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Theme != ThemeUber {
		t.Errorf("theme = %q", resp.Theme)
	}
	if resp.Classes[0] != "theme-uber" {
		t.Errorf("classes = %v", resp.Classes)
	}
}

func TestDarkModeRoute(t *testing.T) {
	r, store := newThemeRouter(t)

	req := httptest.NewRequest("POST", "/api/settings/darkmode", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp["darkMode"] || !store.Settings().DarkMode {
		t.Errorf("response = %v", resp)
	}
}

func TestCSSRoute(t *testing.T) {
	r, _ := newThemeRouter(t)

	req := httptest.NewRequest("GET", "/api/settings/css", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/css") {
		t.Errorf("content type = %q", got)
	}
	if !strings.Contains(w.Body.String(), ":root {") {
		t.Errorf("body = %q", w.Body.String())
	}
}
