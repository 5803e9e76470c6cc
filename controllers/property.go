package controllers

import (
	"net/http"

	"github.com/dcode-github/estate-envision/middleware"
	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/query"
	"github.com/dcode-github/estate-envision/services"
	"github.com/gorilla/mux"
)

func GetAllProperties(properties *services.PropertyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := query.ParseSearchParams(r.URL.Query())
		list, err := properties.Search(r.Context(), middleware.IdentityFrom(r.Context()), params)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "", list)
	}
}

func GetPropertyByID(properties *services.PropertyService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		property, err := properties.Get(r.Context(), middleware.IdentityFrom(r.Context()), id)
		if err != nil {
			writeError(w, err)
			return
		}
		if property == nil {
			writeJSON(w, http.StatusNotFound, models.APIResponse{Message: "Property not found"})
			return
		}
		writeSuccess(w, http.StatusOK, "", property)
	}
}
