package routes

import (
	"net/http"

	"github.com/dcode-github/estate-envision/controllers"
	"github.com/dcode-github/estate-envision/middleware"
	"github.com/dcode-github/estate-envision/services"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Deps is everything the HTTP layer needs.
type Deps struct {
	Auth            *services.AuthService
	Properties      *services.PropertyService
	Listings        *services.ListingService
	Favorites       *services.FavoriteService
	Recommendations *services.RecommendationService
	Descriptions    *services.DescriptionService
	Tokens          middleware.TokenVerifier
	Cookie          controllers.CookieSettings
	Logger          *zap.Logger
}

func Routes(router *mux.Router, d Deps) {
	router.Use(middleware.RequestID)
	router.Use(middleware.AccessLog(d.Logger))
	router.Use(middleware.Authenticate(d.Tokens, d.Logger))

	// Auth routes
	router.HandleFunc("/register", controllers.RegisterUser(d.Auth)).Methods(http.MethodPost)
	router.HandleFunc("/login", controllers.LoginUser(d.Auth, d.Cookie)).Methods(http.MethodPost)
	router.HandleFunc("/logout", controllers.LogoutUser(d.Cookie)).Methods(http.MethodPost)

	// Routes where signing in is optional
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/status", controllers.AuthStatus(d.Auth, d.Cookie)).Methods(http.MethodGet)
	api.HandleFunc("/properties", controllers.GetAllProperties(d.Properties)).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id}", controllers.GetPropertyByID(d.Properties)).Methods(http.MethodGet)
	api.HandleFunc("/listings", controllers.GetAllListings(d.Listings)).Methods(http.MethodGet)
	// Registered ahead of the status route so "ids" is not read as a property id.
	api.Handle("/favorites/ids", middleware.RequireAuth(controllers.GetFavoriteIDs(d.Favorites))).Methods(http.MethodGet)
	api.HandleFunc("/favorites/{id}", controllers.GetFavoriteStatus(d.Favorites)).Methods(http.MethodGet)

	// Routes that require authentication
	authenticated := api.NewRoute().Subrouter()
	authenticated.Use(middleware.RequireAuth)

	authenticated.HandleFunc("/profile", controllers.GetProfile(d.Auth)).Methods(http.MethodGet)

	authenticated.HandleFunc("/listings", controllers.CreateListing(d.Listings)).Methods(http.MethodPost)
	authenticated.HandleFunc("/listings/mine", controllers.GetMyListings(d.Listings)).Methods(http.MethodGet)

	authenticated.HandleFunc("/favorites", controllers.AddFavorite(d.Favorites)).Methods(http.MethodPost)
	authenticated.HandleFunc("/favorites", controllers.GetFavorites(d.Favorites)).Methods(http.MethodGet)
	authenticated.HandleFunc("/favorites/{id}", controllers.DeleteFavorite(d.Favorites)).Methods(http.MethodDelete)

	authenticated.HandleFunc("/recommendations", controllers.RecommendProperty(d.Recommendations)).Methods(http.MethodPost)
	authenticated.HandleFunc("/recommendations", controllers.GetRecommendations(d.Recommendations)).Methods(http.MethodGet)

	authenticated.HandleFunc("/describe", controllers.GenerateDescription(d.Descriptions)).Methods(http.MethodPost)
}
