package controllerImp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"farmdash/database"
)

func serve(h *HealthCtrl) *httptest.ResponseRecorder {
	e := echo.New()
	e.GET("/health", h.Health)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	return rec
}

func TestHealthWithDatabase(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	rec := serve(NewHealthCtrl("remote", WithDB(db)))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, gjson.Get(body, "status.ok").Bool())
	assert.True(t, gjson.Get(body, "checks.database.ok").Bool())
	assert.Equal(t, "remote", gjson.Get(body, "store_mode").String())
}

func TestHealthFailingCheck(t *testing.T) {
	rec := serve(NewHealthCtrl("remote",
		WithCheck("records", func(context.Context) error { return errors.New("connection refused") }),
		WithDB(nil),
	))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := rec.Body.String()
	assert.False(t, gjson.Get(body, "status.ok").Bool())
	assert.Equal(t, "connection refused", gjson.Get(body, "checks.records.err").String())
	assert.Equal(t, "gorm db is nil", gjson.Get(body, "checks.database.err").String())
}

func TestHealthWithoutChecks(t *testing.T) {
	rec := serve(NewHealthCtrl("mock"))
	assert.Equal(t, http.StatusOK, rec.Code)
}
