package pets

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Get("/available", listAvailableHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	BreedID     string `json:"breed_id"`
	Description string `json:"description"`
	Photo       []byte `json:"photo"` // base64 no JSON
}

type updatePetRequest struct {
	Name        *string `json:"name"`
	Age         *int    `json:"age"`
	BreedID     *string `json:"breed_id"`
	Description *string `json:"description"`
	Photo       []byte  `json:"photo"`
}

type petResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	BreedID     *string `json:"breed_id,omitempty"`
	SpeciesID   string  `json:"species_id,omitempty"` // derivada via raça
	Age         int     `json:"age"`
	Description string  `json:"description"`
	Photo       []byte  `json:"photo,omitempty"`
	Adopted     bool    `json:"adopted"`
	AdopterID   *string `json:"adopter_id,omitempty"`
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Age:         req.Age,
			BreedID:     req.BreedID,
			Description: req.Description,
			Photo:       req.Photo,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(r, svc, p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(r, svc, p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func listAvailableHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAvailable(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(r, svc, p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(r, svc, p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:        req.Name,
			Age:         req.Age,
			BreedID:     req.BreedID,
			Description: req.Description,
			Photo:       req.Photo,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(r, svc, p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func toPetResponse(r *http.Request, svc *Service, p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		BreedID:     p.BreedID,
		SpeciesID:   svc.SpeciesOf(r.Context(), p),
		Age:         p.Age,
		Description: p.Description,
		Photo:       p.Photo,
		Adopted:     p.Adopted,
		AdopterID:   p.AdopterID,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
