package editor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the draft API.
func RegisterRoutes(r chi.Router, manager *Manager) {
	r.Route("/api/drafts", func(r chi.Router) {
		r.Post("/", handleOpen(manager))
		r.Get("/{id}", handleGet(manager))
		r.Put("/{id}", handleUpdate(manager))
		r.Post("/{id}/save", handleSave(manager))
		r.Delete("/{id}", handleCancel(manager))
	})
}

type openRequest struct {
	Section string `json:"section"`
}

func handleOpen(manager *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req openRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if req.Section == "" {
			http.Error(w, `{"error":"section is required"}`, http.StatusBadRequest)
			return
		}

		draft, err := manager.Open(req.Section)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusConflict)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(draft)
	}
}

func handleGet(manager *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		draft, ok := manager.Get(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, `{"error":"draft not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(draft)
	}
}

type updateRequest struct {
	Value json.RawMessage `json:"value"`
}

func handleUpdate(manager *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}
		if len(req.Value) == 0 {
			http.Error(w, `{"error":"value is required"}`, http.StatusBadRequest)
			return
		}

		draft, err := manager.Update(chi.URLParam(r, "id"), req.Value)
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(draft)
	}
}

func handleSave(manager *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := manager.Save(r.Context(), id); err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "saved"})
	}
}

func handleCancel(manager *Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		manager.Cancel(chi.URLParam(r, "id"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "canceled"})
	}
}
