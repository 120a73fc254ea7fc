package breeds

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", listBreedsHandler(svc))
		br.Post("/", createBreedHandler(svc))
		br.Get("/by-species/{speciesID}", listBySpeciesHandler(svc))
		br.Get("/{breedID}", getBreedHandler(svc))
		br.Put("/{breedID}", updateBreedHandler(svc))
		br.Delete("/{breedID}", deleteBreedHandler(svc))
	})
}

type createBreedRequest struct {
	Name      string `json:"name"`
	SpeciesID string `json:"species_id"`
}

type updateBreedRequest struct {
	Name      *string `json:"name"`
	SpeciesID *string `json:"species_id"`
}

type breedResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SpeciesID string `json:"species_id"`
}

func createBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBreedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Name,
			SpeciesID: req.SpeciesID,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toBreedResponse(b))
	}
}

func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]breedResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBreedResponse(b))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func listBySpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListBySpecies(r.Context(), chi.URLParam(r, "speciesID"))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]breedResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBreedResponse(b))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "breedID"))
		if err != nil {
			http.Error(w, "breed not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toBreedResponse(b))
	}
}

func updateBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateBreedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Update(r.Context(), chi.URLParam(r, "breedID"), UpdateInput{
			Name:      req.Name,
			SpeciesID: req.SpeciesID,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toBreedResponse(b))
	}
}

func deleteBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "breedID")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toBreedResponse(b Breed) breedResponse {
	return breedResponse{
		ID:        b.ID,
		Name:      b.Name,
		SpeciesID: b.SpeciesID,
	}
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

// writeJSON está duplicado de propósito nos handlers de cada módulo,
// como em pets/species: ainda não vale a pena um helper comum.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
