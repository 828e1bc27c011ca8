package portfolio

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the portfolio document API. Mutating routes are
// gated on dev mode: a non-dev deployment serves a read-only document.
func RegisterRoutes(r chi.Router, session *Session) {
	r.Route("/api/portfolio", func(r chi.Router) {
		r.Get("/", handleGetDocument(session))
		r.Get("/status", handleStatus(session))
		r.Get("/sections", handleListSections(session))
		r.Get("/sections/{key}", handleGetSection(session))

		r.Group(func(r chi.Router) {
			r.Use(requireDevMode(session))
			r.Put("/", handleReplaceDocument(session))
			r.Post("/editmode", handleToggleEditMode(session))
			r.Post("/sections", handleAddSection(session))
			r.Put("/sections/{key}", handleUpdateSection(session))
			r.Delete("/sections/{key}", handleRemoveSection(session))
			r.Post("/sections/{key}/items", handleAddItem(session))
			r.Delete("/sections/{key}/items", handleRemoveItem(session))
		})
	})
}

// requireDevMode rejects mutating requests when the edit capability is off.
func requireDevMode(session *Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.DevMode() {
				http.Error(w, `{"error":"editing requires dev mode"}`, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func handleGetDocument(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := session.DocumentJSON()
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(raw)
	}
}

func handleReplaceDocument(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if err := session.UpdateDocument(r.Context(), raw); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]uint64{"version": session.Version()})
	}
}

func handleStatus(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"version":   session.Version(),
			"editMode":  session.EditMode(),
			"devMode":   session.DevMode(),
			"persisted": session.Persisted(),
		})
	}
}

func handleListSections(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := session.Document()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"standard": StandardKeys,
			"custom":   doc.CustomKeys(),
		})
	}
}

func handleGetSection(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		raw, ok := session.SectionJSON(key)
		if !ok {
			http.Error(w, `{"error":"section not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(raw)
	}
}

func handleUpdateSection(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		var raw json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if err := session.UpdateSection(r.Context(), key, raw); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}

		updated, _ := session.SectionJSON(key)
		w.Header().Set("Content-Type", "application/json")
		w.Write(updated)
	}
}

// addSectionRequest mirrors the section manager dialog.
type addSectionRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func handleAddSection(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addSectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Type == "" {
			req.Type = string(KindCustom)
		}

		key, err := session.AddSection(r.Context(), req.ID, req.Title, SectionKind(req.Type), req.Description)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}

		raw, _ := session.SectionJSON(key)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]json.RawMessage{key: raw})
	}
}

func handleRemoveSection(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if err := session.RemoveSection(r.Context(), key); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"removed": key})
	}
}

// itemRequest names the sub-collection an item operation targets.
type itemRequest struct {
	Collection string          `json:"collection"`
	Item       json.RawMessage `json:"item,omitempty"`
	Locator
}

func handleAddItem(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		var req itemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Collection == "" || len(req.Item) == 0 {
			http.Error(w, `{"error":"collection and item are required"}`, http.StatusBadRequest)
			return
		}

		if err := session.AddItem(r.Context(), key, req.Collection, req.Item); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}

		raw, ok := session.SectionJSON(key)
		if !ok {
			http.Error(w, `{"error":"section not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(raw)
	}
}

func handleRemoveItem(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		var req itemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Collection == "" {
			http.Error(w, `{"error":"collection is required"}`, http.StatusBadRequest)
			return
		}

		if err := session.RemoveItem(r.Context(), key, req.Collection, req.Locator); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}

		raw, ok := session.SectionJSON(key)
		if !ok {
			http.Error(w, `{"error":"section not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(raw)
	}
}

func handleToggleEditMode(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		editMode := session.ToggleEditMode()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{
			"editMode": editMode,
			"devMode":  session.DevMode(),
		})
	}
}
