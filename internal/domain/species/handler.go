package species

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/species", func(sr chi.Router) {
		sr.Get("/", listSpeciesHandler(svc))
		sr.Post("/", createSpeciesHandler(svc))
		sr.Get("/{speciesID}", getSpeciesHandler(svc))
		sr.Put("/{speciesID}", updateSpeciesHandler(svc))
		sr.Delete("/{speciesID}", deleteSpeciesHandler(svc))
	})
}

type createSpeciesRequest struct {
	Name string `json:"name"`
}

type updateSpeciesRequest struct {
	Name *string `json:"name"`
}

type speciesResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func createSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSpeciesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sp, err := svc.Create(r.Context(), req.Name)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toSpeciesResponse(sp))
	}
}

func listSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]speciesResponse, 0, len(items))
		for _, sp := range items {
			out = append(out, toSpeciesResponse(sp))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sp, err := svc.GetByID(r.Context(), chi.URLParam(r, "speciesID"))
		if err != nil {
			http.Error(w, "species not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toSpeciesResponse(sp))
	}
}

func updateSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateSpeciesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		sp, err := svc.Update(r.Context(), chi.URLParam(r, "speciesID"), UpdateInput{Name: req.Name})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toSpeciesResponse(sp))
	}
}

func deleteSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "speciesID")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toSpeciesResponse(sp Species) speciesResponse {
	return speciesResponse{ID: sp.ID, Name: sp.Name}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
