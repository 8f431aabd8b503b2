package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dosada05/placement-system/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("middleware-secret")

func signed(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func protected(resource Resource, action Action) (http.Handler, *models.CurrentUser) {
	var seen models.CurrentUser
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := GetCurrentUser(r.Context())
		if err == nil {
			seen = user
		}
		w.WriteHeader(http.StatusNoContent)
	})
	return Authenticate(secret)(Authorize(resource, action)(final)), &seen
}

func serve(h http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_ValidToken(t *testing.T) {
	h, seen := protected(ResourcePlacementMatches, ActionWrite)

	token := signed(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{
		"user_id": 42,
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	w := serve(h, "Bearer "+token)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, models.CurrentUser{ID: 42, Role: models.RoleAdmin}, *seen)
}

func TestAuthenticate_Rejects(t *testing.T) {
	h, _ := protected(ResourcePlacementMatches, ActionWrite)

	expired := signed(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{
		"user_id": 42,
		"role":    "admin",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	otherKey := signed(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"user_id": 42, "role": "admin"})

	for name, header := range map[string]string{
		"missing header": "",
		"no bearer":      "Token abc",
		"empty token":    "Bearer ",
		"garbage":        "Bearer abc.def.ghi",
		"expired":        "Bearer " + expired,
		"wrong key":      "Bearer " + otherKey,
	} {
		w := serve(h, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"), name)
	}
}

func TestAuthorize_PlayerCannotWrite(t *testing.T) {
	h, _ := protected(ResourcePlacementSettings, ActionWrite)

	token := signed(t, jwt.SigningMethodHS256, secret, jwt.MapClaims{"user_id": 7, "role": "player"})
	w := serve(h, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthorize_InvalidClaims(t *testing.T) {
	h, _ := protected(ResourcePlacementSettings, ActionWrite)

	for name, claims := range map[string]jwt.MapClaims{
		"no user id":   {"role": "admin"},
		"zero user id": {"user_id": 0, "role": "admin"},
		"unknown role": {"user_id": 1, "role": "superuser"},
		"no role":      {"user_id": 1},
	} {
		w := serve(h, "Bearer "+signed(t, jwt.SigningMethodHS256, secret, claims))
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}
}

func TestGetCurrentUser_StringUserID(t *testing.T) {
	ctx := context.WithValue(context.Background(), userContextKey, jwt.MapClaims{"user_id": "15", "role": "organizer"})

	user, err := GetCurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CurrentUser{ID: 15, Role: models.RoleOrganizer}, user)

	_, err = GetCurrentUser(context.Background())
	assert.Error(t, err)
}

func TestHasPermission(t *testing.T) {
	admin := models.CurrentUser{ID: 1, Role: models.RoleAdmin}
	organizer := models.CurrentUser{ID: 2, Role: models.RoleOrganizer}
	player := models.CurrentUser{ID: 3, Role: models.RolePlayer}

	for _, resource := range []Resource{ResourcePlacementSettings, ResourcePlacementMatches} {
		assert.True(t, HasPermission(admin, resource, ActionWrite))
		assert.True(t, HasPermission(organizer, resource, ActionWrite))
		assert.False(t, HasPermission(player, resource, ActionWrite))
		assert.True(t, HasPermission(player, resource, ActionRead))
	}
	assert.False(t, HasPermission(admin, Resource("users"), ActionWrite))
}
