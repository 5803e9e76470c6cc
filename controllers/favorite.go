package controllers

import (
	"net/http"

	"github.com/dcode-github/estate-envision/middleware"
	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/services"
	"github.com/gorilla/mux"
)

func AddFavorite(favorites *services.FavoriteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.FavoriteRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, err)
			return
		}

		status, err := favorites.Add(r.Context(), middleware.IdentityFrom(r.Context()), req.PropertyID)
		if err != nil {
			writeError(w, err)
			return
		}
		if !status.Changed {
			writeSuccess(w, http.StatusOK, "Property is already in favorites", status)
			return
		}
		writeSuccess(w, http.StatusCreated, "Property added to favorites", status)
	}
}

func GetFavorites(favorites *services.FavoriteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := favorites.ListProperties(r.Context(), middleware.IdentityFrom(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "", list)
	}
}

func GetFavoriteIDs(favorites *services.FavoriteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := favorites.ListIDs(r.Context(), middleware.IdentityFrom(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "", ids)
	}
}

// GetFavoriteStatus answers false instead of 401 for anonymous callers.
func GetFavoriteStatus(favorites *services.FavoriteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		isFavorite := favorites.IsFavorite(r.Context(), middleware.IdentityFrom(r.Context()), id)
		writeSuccess(w, http.StatusOK, "", models.FavoriteStatus{PropertyID: id, IsFavorite: isFavorite})
	}
}

func DeleteFavorite(favorites *services.FavoriteService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := favorites.Remove(r.Context(), middleware.IdentityFrom(r.Context()), mux.Vars(r)["id"])
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "Property removed from favorites", status)
	}
}
