package controllers

import (
	"net/http"

	"github.com/dcode-github/estate-envision/middleware"
	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/services"
)

func RecommendProperty(recommendations *services.RecommendationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RecommendationRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, err)
			return
		}

		rec, err := recommendations.Create(r.Context(), middleware.IdentityFrom(r.Context()), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusCreated, "Recommendation sent successfully", rec)
	}
}

func GetRecommendations(recommendations *services.RecommendationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		received, err := recommendations.Received(r.Context(), middleware.IdentityFrom(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "", received)
	}
}
