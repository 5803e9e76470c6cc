package controllers

import (
	"net/http"
	"time"

	"github.com/dcode-github/estate-envision/middleware"
	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/services"
)

// CookieSettings controls the access token cookie.
type CookieSettings struct {
	Secure bool
	TTL    time.Duration
}

func (c CookieSettings) set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.TTL.Seconds()),
		Expires:  time.Now().Add(c.TTL),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c CookieSettings) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func RegisterUser(auth *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, err)
			return
		}

		user, err := auth.Register(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusCreated, "User registered successfully", user)
	}
}

func LoginUser(auth *services.AuthService, cookie CookieSettings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, err)
			return
		}

		resp, err := auth.Login(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}
		cookie.set(w, resp.Token)
		writeSuccess(w, http.StatusOK, "Login successful", resp)
	}
}

func LogoutUser(cookie CookieSettings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie.clear(w)
		writeSuccess(w, http.StatusOK, "Logged out successfully", nil)
	}
}

// AuthStatus reports whether the caller is signed in. A valid token for a
// deleted user counts as signed out and the cookie is cleared.
func AuthStatus(auth *services.AuthService, cookie CookieSettings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := middleware.IdentityFrom(r.Context())
		user, err := auth.CurrentUser(r.Context(), identity)
		if err != nil {
			writeError(w, err)
			return
		}
		if identity != nil && user == nil {
			cookie.clear(w)
		}
		writeSuccess(w, http.StatusOK, "", models.AuthStatus{IsAuthenticated: user != nil, User: user})
	}
}

func GetProfile(auth *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.Profile(r.Context(), middleware.IdentityFrom(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		writeSuccess(w, http.StatusOK, "", user)
	}
}
