package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery/internal/config"
	"delivery/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test_secret"

func makeJWT(t *testing.T, secret string, sub int64, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"iat":  1,
		"exp":  9999999999,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString failed: %v", err)
	}
	return s
}

func newTestEcho(mw ...echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"user_id": c.Get(middleware.CtxUserIDKey),
			"role":    c.Get(middleware.CtxUserRoleKey),
		})
	}, mw...)
	return e
}

func doRequest(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	e := newTestEcho(middleware.AuthJWT(cfg))

	rec := doRequest(e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_NotBearer(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	e := newTestEcho(middleware.AuthJWT(cfg))

	rec := doRequest(e, "Basic abcdef")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	e := newTestEcho(middleware.AuthJWT(cfg))

	token := makeJWT(t, "another_secret", 1, "USER")
	rec := doRequest(e, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ValidTokenSetsContext(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	e := newTestEcho(middleware.AuthJWT(cfg))

	token := makeJWT(t, testSecret, 42, "USER")
	rec := doRequest(e, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":42`)
	assert.Contains(t, rec.Body.String(), `"role":"USER"`)
}

func TestVendorRoleGuard_UserForbidden(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	e := newTestEcho(middleware.AuthJWT(cfg), middleware.VendorRoleGuard())

	token := makeJWT(t, testSecret, 42, "USER")
	rec := doRequest(e, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "vendor only")
}

func TestVendorRoleGuard_VendorAllowed(t *testing.T) {
	cfg := config.Config{JWTSecret: testSecret}
	e := newTestEcho(middleware.AuthJWT(cfg), middleware.VendorRoleGuard())

	token := makeJWT(t, testSecret, 42, "VENDOR")
	rec := doRequest(e, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVendorRoleGuard_NoRoleUnauthorized(t *testing.T) {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, middleware.VendorRoleGuard())

	rec := doRequest(e, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
