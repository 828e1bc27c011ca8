package theme

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the theme settings API.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Route("/api/settings", func(r chi.Router) {
		r.Get("/", handleGetSettings(store))
		r.Put("/", handleReplaceSettings(store))
		r.Patch("/", handleApplySettings(store))
		r.Post("/darkmode", handleToggleDarkMode(store))
		r.Get("/css", handleGetCSS(store))
	})
}

// settingsResponse is the settings record plus the derived styling state.
type settingsResponse struct {
	Settings
	Classes []string `json:"classes"`
}

func respondSettings(w http.ResponseWriter, settings Settings) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(settingsResponse{
		Settings: settings,
		Classes:  settings.Classes(),
	})
}

func handleGetSettings(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondSettings(w, store.Settings())
	}
}

func handleReplaceSettings(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings Settings
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		respondSettings(w, store.Replace(r.Context(), settings))
	}
}

func handleApplySettings(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		settings, err := store.Apply(r.Context(), raw)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		respondSettings(w, settings)
	}
}

func handleToggleDarkMode(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dark := store.ToggleDarkMode(r.Context())
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"darkMode": dark})
	}
}

func handleGetCSS(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(store.Settings().CSSVariables()))
	}
}
