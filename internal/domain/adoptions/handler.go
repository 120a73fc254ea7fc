package adoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Get("/", listAdoptionsHandler(svc))
		ar.Post("/", registerAdoptionHandler(svc))
		ar.Get("/{adoptionID}", getAdoptionHandler(svc))
		ar.Delete("/{adoptionID}", rescindAdoptionHandler(svc))
	})
}

type registerAdoptionRequest struct {
	PetID     string `json:"pet_id"`
	AdopterID string `json:"adopter_id"`
}

type adoptionResponse struct {
	ID           string `json:"id"`
	PetID        string `json:"pet_id"`
	AdopterID    string `json:"adopter_id"`
	AdoptionDate string `json:"adoption_date"` // YYYY-MM-DD
}

func registerAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerAdoptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Register(r.Context(), req.PetID, req.AdopterID)
		if err != nil {
			// Referência inválida no registro é erro do chamador (400),
			// não 404: o recurso da URL é a coleção de adoções.
			switch {
			case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrConflict):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toAdoptionResponse(a))
	}
}

func listAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]adoptionResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAdoptionResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "adoptionID"))
		if err != nil {
			http.Error(w, "adoption not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toAdoptionResponse(a))
	}
}

func rescindAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Rescind(r.Context(), chi.URLParam(r, "adoptionID")); err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	return adoptionResponse{
		ID:           a.ID,
		PetID:        a.PetID,
		AdopterID:    a.AdopterID,
		AdoptionDate: a.Date.Format(time.DateOnly),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
