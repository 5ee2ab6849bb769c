package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/carbonkhet/carbonkhet/internal/pkg/jwt"
	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
)

var testJWTConfig = models.JWTConfig{
	Secret:     "test-secret",
	Expiration: 168,
	Issuer:     "carbonkhet-test",
}

func runProtected(t *testing.T, authHeader string, extra ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	wrapped := JWTAuthMiddleware(testJWTConfig)(chain(handler, extra...))

	err := wrapped(c)
	require.NoError(t, err)
	return rec
}

func chain(h echo.HandlerFunc, mws ...echo.MiddlewareFunc) echo.HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	// Arrange
	token, _, err := jwtpkg.GenerateToken("farmer-1", models.UserTypeFarmer, testJWTConfig)
	require.NoError(t, err)

	// Act
	rec := runProtected(t, "Bearer "+token)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuthMiddleware_SetsContext(t *testing.T) {
	token, _, err := jwtpkg.GenerateToken("farmer-1", models.UserTypeFarmer, testJWTConfig)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID, gotType string
	handler := JWTAuthMiddleware(testJWTConfig)(func(c echo.Context) error {
		gotID, _ = c.Get(ContextUserID).(string)
		gotType, _ = c.Get(ContextUserType).(string)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "farmer-1", gotID)
	assert.Equal(t, models.UserTypeFarmer, gotType)
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	rec := runProtected(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	rec := runProtected(t, "NotBearer abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_GarbageToken(t *testing.T) {
	rec := runProtected(t, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMiddleware_WrongSecret(t *testing.T) {
	otherCfg := testJWTConfig
	otherCfg.Secret = "other-secret"
	token, _, err := jwtpkg.GenerateToken("farmer-1", models.UserTypeFarmer, otherCfg)
	require.NoError(t, err)

	rec := runProtected(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireUserType(t *testing.T) {
	tests := []struct {
		name     string
		userType string
		required string
		want     int
	}{
		{"matching type", models.UserTypeAdmin, models.UserTypeAdmin, http.StatusOK},
		{"farmer hitting admin route", models.UserTypeFarmer, models.UserTypeAdmin, http.StatusForbidden},
		{"admin hitting farmer route", models.UserTypeAdmin, models.UserTypeFarmer, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := jwtpkg.GenerateToken("user-1", tt.userType, testJWTConfig)
			require.NoError(t, err)

			rec := runProtected(t, "Bearer "+token, RequireUserType(tt.required))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
