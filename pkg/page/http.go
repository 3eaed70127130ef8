package page

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmdash/pkg/store"
)

// ErrBadInput marks malformed requests (bad JSON, non-numeric ids).
var ErrBadInput = errors.New("bad input")

// Envelope is the JSON shape of every page read.
type Envelope struct {
	Status
	View    any      `json:"view,omitempty"`
	Notices []Notice `json:"notices,omitempty"`
}

// StatusCode maps command errors onto HTTP statuses.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrBadInput):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConfirmationRequired):
		return http.StatusConflict
	case errors.Is(err, store.ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrTransport):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// RespondView writes a page read. A failed page answers 503 without a view.
func RespondView(c echo.Context, st Status, view any, notices []Notice) error {
	if st.State == Failed {
		return c.JSON(http.StatusServiceUnavailable, Envelope{Status: st, Notices: notices})
	}
	return c.JSON(http.StatusOK, Envelope{Status: st, View: view, Notices: notices})
}

// RespondError writes a failed command.
func RespondError(c echo.Context, err error, notices []Notice) error {
	return c.JSON(StatusCode(err), echo.Map{"error": err.Error(), "notices": notices})
}

// RespondData writes a successful command.
func RespondData(c echo.Context, code int, data any, notices []Notice) error {
	return c.JSON(code, echo.Map{"data": data, "notices": notices})
}

// Command returns the request context with a fresh Inbox attached, so the
// response to a command carries exactly the notices that command produced.
func Command(c echo.Context) (context.Context, *Inbox) {
	inbox := &Inbox{}
	return WithNotifier(c.Request().Context(), inbox), inbox
}

// ParamID reads the :id path parameter.
func ParamID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", ErrBadInput, c.Param("id"))
	}
	return id, nil
}

// Confirmed reports whether the request carries ?confirm=true.
func Confirmed(c echo.Context) bool {
	ok, _ := strconv.ParseBool(c.QueryParam("confirm"))
	return ok
}

// Bind decodes the request into v, tagging failures as bad input.
func Bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	return nil
}

// BindQuery decodes query parameters (tagged `query`) into v whatever the
// request method.
func BindQuery(c echo.Context, v any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	return nil
}
