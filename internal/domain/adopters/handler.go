package adopters

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/adopters", func(ar chi.Router) {
		ar.Get("/", listAdoptersHandler(svc))
		ar.Post("/", createAdopterHandler(svc))
		ar.Get("/{adopterID}", getAdopterHandler(svc))
		ar.Put("/{adopterID}", updateAdopterHandler(svc))
		ar.Delete("/{adopterID}", deleteAdopterHandler(svc))
	})
}

type createAdopterRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	TaxpayerID string `json:"taxpayer_id"`
}

type updateAdopterRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	TaxpayerID *string `json:"taxpayer_id"`
}

type adopterResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	TaxpayerID string `json:"taxpayer_id,omitempty"`
}

func createAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdopterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:       req.Name,
			Phone:      req.Phone,
			Email:      req.Email,
			TaxpayerID: req.TaxpayerID,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAdopterResponse(a))
	}
}

func listAdoptersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]adopterResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAdopterResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "adopterID"))
		if err != nil {
			http.Error(w, "adopter not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toAdopterResponse(a))
	}
}

func updateAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateAdopterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Update(r.Context(), chi.URLParam(r, "adopterID"), UpdateInput{
			Name:       req.Name,
			Phone:      req.Phone,
			Email:      req.Email,
			TaxpayerID: req.TaxpayerID,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toAdopterResponse(a))
	}
}

func deleteAdopterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "adopterID")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toAdopterResponse(a Adopter) adopterResponse {
	return adopterResponse{
		ID:         a.ID,
		Name:       a.Name,
		Phone:      a.Phone,
		Email:      a.Email,
		TaxpayerID: a.TaxpayerID,
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

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
