package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
)

// ErrNoToken is returned when no credential is present in any accepted location.
var ErrNoToken = errors.New("no authentication token provided")

// maxBodyPeek caps how much of a request body is buffered while looking for
// an embedded token.
const maxBodyPeek = 1 << 20

// ExtractToken pulls the credential from a request, checking locations in a
// fixed precedence order: Authorization bearer header, then the token query
// parameter, then a "token" field in a JSON body. The body is re-buffered so
// handlers can still bind it afterwards.
func ExtractToken(c echo.Context) ([]string, error) {
	if h := c.Request().Header.Get(echo.HeaderAuthorization); h != "" {
		if token := strings.TrimPrefix(h, "Bearer "); token != h && token != "" {
			return []string{token}, nil
		}
	}

	if token := c.QueryParam("token"); token != "" {
		return []string{token}, nil
	}

	if token := tokenFromBody(c); token != "" {
		return []string{token}, nil
	}

	return nil, ErrNoToken
}

// tokenFromBody peeks into a JSON request body for a top-level "token" field
// and restores the body for downstream binding.
func tokenFromBody(c echo.Context) string {
	req := c.Request()
	if req.Body == nil {
		return ""
	}
	if ct := req.Header.Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMEApplicationJSON) {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(req.Body, maxBodyPeek))
	_ = req.Body.Close()
	req.Body = io.NopCloser(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Token
}
