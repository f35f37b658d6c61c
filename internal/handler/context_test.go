package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"shopfront/internal/auth"
	"shopfront/internal/model"
)

func newTestContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestCurrentClaims(t *testing.T) {
	c := newTestContext(t)
	c.Set("user", &jwt.Token{Claims: &auth.Claims{
		UserID:   7,
		Email:    "test@example.com",
		UserType: string(model.UserTypeCustomer),
	}})

	claims, err := currentClaims(c)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.False(t, claims.IsAdmin())
}

func TestCurrentClaims_MissingToken(t *testing.T) {
	c := newTestContext(t)

	claims, err := currentClaims(c)

	assert.Nil(t, claims)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestCurrentClaims_WrongClaimsType(t *testing.T) {
	c := newTestContext(t)
	c.Set("user", &jwt.Token{Claims: jwt.MapClaims{"sub": "7"}})

	claims, err := currentClaims(c)

	assert.Nil(t, claims)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
