package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newContext(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestExtractToken(t *testing.T) {
	t.Run("reads the bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")

		tokens, err := ExtractToken(newContext(req))
		assert.NoError(t, err)
		assert.Equal(t, []string{"header-token"}, tokens)
	})

	t.Run("falls back to the query parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?token=query-token", nil)

		tokens, err := ExtractToken(newContext(req))
		assert.NoError(t, err)
		assert.Equal(t, []string{"query-token"}, tokens)
	})

	t.Run("falls back to a JSON body field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"token":"body-token"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		tokens, err := ExtractToken(newContext(req))
		assert.NoError(t, err)
		assert.Equal(t, []string{"body-token"}, tokens)
	})

	t.Run("header wins over query and body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/?token=query-token", strings.NewReader(`{"token":"body-token"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")

		tokens, err := ExtractToken(newContext(req))
		assert.NoError(t, err)
		assert.Equal(t, []string{"header-token"}, tokens)
	})

	t.Run("query wins over body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/?token=query-token", strings.NewReader(`{"token":"body-token"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		tokens, err := ExtractToken(newContext(req))
		assert.NoError(t, err)
		assert.Equal(t, []string{"query-token"}, tokens)
	})

	t.Run("the body stays readable after extraction", func(t *testing.T) {
		payload := `{"token":"body-token","name":"Lina"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := newContext(req)

		_, err := ExtractToken(c)
		assert.NoError(t, err)

		body, err := io.ReadAll(c.Request().Body)
		assert.NoError(t, err)
		assert.Equal(t, payload, string(body))
	})

	t.Run("ignores non-JSON bodies", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("token=form-token"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

		tokens, err := ExtractToken(newContext(req))
		assert.ErrorIs(t, err, ErrNoToken)
		assert.Nil(t, tokens)
	})

	t.Run("errors when no token is present anywhere", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		tokens, err := ExtractToken(newContext(req))
		assert.ErrorIs(t, err, ErrNoToken)
		assert.Nil(t, tokens)
	})

	t.Run("ignores a malformed authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?token=query-token", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")

		tokens, err := ExtractToken(newContext(req))
		assert.NoError(t, err)
		assert.Equal(t, []string{"query-token"}, tokens)
	})
}
