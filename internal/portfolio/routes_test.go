package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T, devMode bool) (chi.Router, *Session) {
	t.Helper()

	session, _ := newTestSession(t, devMode)
	r := chi.NewRouter()
	RegisterRoutes(r, session)
	return r, session
}

func TestGetDocument(t *testing.T) {
	r, _ := newTestRouter(t, false)

	req := httptest.NewRequest("GET", "/api/portfolio", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("response is not a JSON object: %v", err)
	}
	// Flat wire format: sections are top-level keys.
	for _, key := range []string{KeyHero, KeyIntroduction, KeySkills, KeyAwards} {
		if _, ok := doc[key]; !ok {
			t.Errorf("missing section %q in document", key)
		}
	}
}

func TestGetSectionAndNotFound(t *testing.T) {
	r, _ := newTestRouter(t, false)

	req := httptest.NewRequest("GET", "/api/portfolio/sections/"+KeyHero, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}

	req = httptest.NewRequest("GET", "/api/portfolio/sections/missing", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestMutationsForbiddenWithoutDevMode(t *testing.T) {
	r, _ := newTestRouter(t, false)

	for _, route := range []struct{ method, path string }{
		{"PUT", "/api/portfolio"},
		{"POST", "/api/portfolio/editmode"},
		{"POST", "/api/portfolio/sections"},
		{"PUT", "/api/portfolio/sections/" + KeyHero},
		{"DELETE", "/api/portfolio/sections/foo"},
		{"POST", "/api/portfolio/sections/" + KeySkills + "/items"},
		{"DELETE", "/api/portfolio/sections/" + KeySkills + "/items"},
	} {
		req := httptest.NewRequest(route.method, route.path, bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s %s: status = %d, want 403", route.method, route.path, w.Code)
		}
	}
}

func TestUpdateSectionRoute(t *testing.T) {
	r, session := newTestRouter(t, true)

	hero := session.Document().Hero
	hero.Title = "Route Updated"
	body, _ := json.Marshal(hero)

	req := httptest.NewRequest("PUT", "/api/portfolio/sections/"+KeyHero, bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var updated HeroSection
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if updated.Title != "Route Updated" {
		t.Errorf("title = %q", updated.Title)
	}
	if session.Document().Hero.Title != "Route Updated" {
		t.Error("session does not reflect the update")
	}
}

func TestUpdateSectionRouteRejectsBadBody(t *testing.T) {
	r, session := newTestRouter(t, true)

	req := httptest.NewRequest("PUT", "/api/portfolio/sections/"+KeyHero, bytes.NewReader([]byte(`[1,2]`)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if session.Version() != 0 {
		t.Error("rejected update bumped the version")
	}
}

func TestAddCustomSectionRoute(t *testing.T) {
	r, session := newTestRouter(t, true)

	body := []byte(`{"id":"Testimonials","title":"Testimonials","type":"gallery"}`)
	req := httptest.NewRequest("POST", "/api/portfolio/sections", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var created map[string]CustomSection
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	section, ok := created["testimonials"]
	if !ok {
		t.Fatalf("response keys = %v, want normalized id", created)
	}
	if section.IsRequired {
		t.Error("viewer-created sections are never required")
	}
	if len(section.Items) != 1 || section.Items[0].Title != "Sample Item" {
		t.Errorf("items = %+v, want one seeded sample", section.Items)
	}
	if _, ok := session.Document().Custom["testimonials"]; !ok {
		t.Error("session missing the new section")
	}
}

func TestAddSectionRouteRejectsReservedID(t *testing.T) {
	r, _ := newTestRouter(t, true)

	body := []byte(`{"id":"` + KeySkills + `","title":"Skills Again"}`)
	req := httptest.NewRequest("POST", "/api/portfolio/sections", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestItemRoutes(t *testing.T) {
	r, session := newTestRouter(t, true)

	// Append a project.
	item, _ := json.Marshal(Project{Title: "New Project", Description: "Added over the wire"})
	body, _ := json.Marshal(itemRequest{Collection: "items", Item: item})
	req := httptest.NewRequest("POST", "/api/portfolio/sections/"+KeyProjects+"/items", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("add: status = %d: %s", w.Code, w.Body.String())
	}

	projects := session.Document().Projects.Items
	added := len(projects)
	if projects[added-1].Title != "New Project" {
		t.Errorf("last project = %q", projects[added-1].Title)
	}

	// Remove it again by index.
	body, _ = json.Marshal(itemRequest{Collection: "items", Locator: Locator{Index: added - 1}})
	req = httptest.NewRequest("DELETE", "/api/portfolio/sections/"+KeyProjects+"/items", bytes.NewReader(body))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("remove: status = %d: %s", w.Code, w.Body.String())
	}
	if got := len(session.Document().Projects.Items); got != added-1 {
		t.Errorf("got %d projects, want %d", got, added-1)
	}
}

func TestItemRouteRequiresCollection(t *testing.T) {
	r, _ := newTestRouter(t, true)

	req := httptest.NewRequest("POST", "/api/portfolio/sections/"+KeyProjects+"/items", bytes.NewReader([]byte(`{"item":{}}`)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestEditModeRoute(t *testing.T) {
	r, _ := newTestRouter(t, true)

	req := httptest.NewRequest("POST", "/api/portfolio/editmode", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp["editMode"] || !resp["devMode"] {
		t.Errorf("response = %v", resp)
	}
}

func TestStatusRoute(t *testing.T) {
	r, session := newTestRouter(t, true)
	if err := session.UpdateSection(context.Background(), KeyHero, mustSectionJSON(t, session, KeyHero)); err != nil {
		t.Fatalf("UpdateSection: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/portfolio/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var status struct {
		Version   uint64 `json:"version"`
		DevMode   bool   `json:"devMode"`
		Persisted bool   `json:"persisted"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if status.Version != 1 || !status.DevMode || !status.Persisted {
		t.Errorf("status = %+v", status)
	}
}

func TestListSectionsRoute(t *testing.T) {
	r, session := newTestRouter(t, true)
	if _, err := session.AddSection(context.Background(), "hobbies", "Hobbies", KindCustom, ""); err != nil {
		t.Fatalf("AddSection: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/portfolio/sections", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp struct {
		Standard []string `json:"standard"`
		Custom   []string `json:"custom"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Standard) != len(StandardKeys) {
		t.Errorf("standard = %v", resp.Standard)
	}
	if len(resp.Custom) != 1 || resp.Custom[0] != "hobbies" {
		t.Errorf("custom = %v", resp.Custom)
	}
}

func mustSectionJSON(t *testing.T, session *Session, key string) json.RawMessage {
	t.Helper()
	raw, ok := session.SectionJSON(key)
	if !ok {
		t.Fatalf("section %s missing", key)
	}
	return raw
}
