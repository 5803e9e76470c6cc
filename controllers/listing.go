package controllers

import (
	"net/http"

	"github.com/dcode-github/estate-envision/middleware"
	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/services"
)

func CreateListing(listings *services.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.SubmittedPropertyInput
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, err)
			return
		}

		listing, err := listings.Submit(r.Context(), middleware.IdentityFrom(r.Context()), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusCreated, "Property added successfully", listing)
	}
}

func GetMyListings(listings *services.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := listings.Mine(r.Context(), middleware.IdentityFrom(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "", list)
	}
}

func GetAllListings(listings *services.ListingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := listings.All(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "", list)
	}
}
