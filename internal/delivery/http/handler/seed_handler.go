package handler

import (
	"net/http"

	"employee-management-api/internal/usecase"
	"employee-management-api/pkg/response"
)

type SeedHandler struct {
	seedUsecase usecase.SeedUsecase
}

func NewSeedHandler(seedUsecase usecase.SeedUsecase) *SeedHandler {
	return &SeedHandler{
		seedUsecase: seedUsecase,
	}
}

// SeedDatabase destroys all data and reloads the sample set.
func (h *SeedHandler) SeedDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.seedUsecase.Seed(r.Context()); err != nil {
		response.InternalServerError(w, "Error seeding the database", err)
		return
	}

	response.Message(w, http.StatusOK, "Database seeded successfully.")
}
