package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dcode-github/estate-envision/controllers"
	"github.com/dcode-github/estate-envision/genai"
	"github.com/dcode-github/estate-envision/middleware"
	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/services"
	"github.com/dcode-github/estate-envision/utils"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type echoGenerator struct{}

func (echoGenerator) GenerateDescription(_ context.Context, in genai.DescriptionInput) (string, error) {
	return "About " + in.Title, nil
}

// newRouter wires handlers whose services never reach storage in these tests.
func newRouter(t *testing.T, generator genai.Generator) (*mux.Router, *utils.TokenService) {
	t.Helper()
	tokens, err := utils.NewTokenService("routes-secret", time.Hour)
	require.NoError(t, err)
	logger := zap.NewNop()

	router := mux.NewRouter()
	Routes(router, Deps{
		Auth:            services.NewAuthService(nil, tokens, services.LoginThrottle{}, logger),
		Properties:      services.NewPropertyService(nil, nil, 0, logger),
		Listings:        services.NewListingService(nil, logger),
		Favorites:       services.NewFavoriteService(nil, nil, logger),
		Recommendations: services.NewRecommendationService(nil, nil, nil, nil, logger),
		Descriptions:    services.NewDescriptionService(generator, logger),
		Tokens:          tokens,
		Cookie:          controllers.CookieSettings{TTL: time.Hour},
		Logger:          logger,
	})
	return router, tokens
}

func serve(router http.Handler, req *http.Request) (*httptest.ResponseRecorder, models.APIResponse) {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	var body models.APIResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	return rr, body
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newRouter(t, nil)

	protected := []struct{ method, path string }{
		{http.MethodGet, "/api/profile"},
		{http.MethodGet, "/api/listings/mine"},
		{http.MethodPost, "/api/listings"},
		{http.MethodGet, "/api/favorites"},
		{http.MethodGet, "/api/favorites/ids"},
		{http.MethodPost, "/api/favorites"},
		{http.MethodDelete, "/api/favorites/65f000000000000000000001"},
		{http.MethodGet, "/api/recommendations"},
		{http.MethodPost, "/api/recommendations"},
		{http.MethodPost, "/api/describe"},
	}
	for _, tc := range protected {
		rr, body := serve(router, httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}")))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
		assert.False(t, body.Success)
		assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
	}
}

func TestFavoriteStatusIsOptionalAuth(t *testing.T) {
	router, _ := newRouter(t, nil)

	rr, body := serve(router, httptest.NewRequest(http.MethodGet, "/api/favorites/65f000000000000000000001", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	data := body.Data.(map[string]interface{})
	assert.Equal(t, false, data["isFavorite"])
}

func TestAuthStatusAnonymous(t *testing.T) {
	router, _ := newRouter(t, nil)

	rr, body := serve(router, httptest.NewRequest(http.MethodGet, "/api/auth/status", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	data := body.Data.(map[string]interface{})
	assert.Equal(t, false, data["isAuthenticated"])
	assert.Nil(t, data["user"])
}

func TestLogoutClearsCookie(t *testing.T) {
	router, _ := newRouter(t, nil)

	rr, _ := serve(router, httptest.NewRequest(http.MethodPost, "/logout", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.AccessTokenCookie, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestDescribe(t *testing.T) {
	router, tokens := newRouter(t, echoGenerator{})
	token, err := tokens.Issue(utils.Identity{UserID: "u1", Email: "a@b.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/describe", strings.NewReader(`{"title":"Villa","bedrooms":3}`))
	req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: token})
	rr, body := serve(router, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]interface{}{"propertyDescription": "About Villa"}, body.Data)

	unconfigured, _ := newRouter(t, nil)
	req = httptest.NewRequest(http.MethodPost, "/api/describe", strings.NewReader(`{"title":"Villa"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rr, _ = serve(unconfigured, req)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestFavoriteValidationReachesHandler(t *testing.T) {
	router, tokens := newRouter(t, nil)
	token, err := tokens.Issue(utils.Identity{UserID: "u1"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"propertyId":"nope"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rr, body := serve(router, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid property ID format.", body.Message)

	req = httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{not json`))
	req.Header.Set("Authorization", "Bearer "+token)
	rr, _ = serve(router, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
