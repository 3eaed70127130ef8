package controllerImp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

// CheckTimeout bounds every check of one /health call.
const CheckTimeout = 800 * time.Millisecond

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

type namedCheck struct {
	name string
	fn   Check
}

type HealthCtrl struct {
	mode   string
	checks []namedCheck
}

type Option func(*HealthCtrl)

// WithDB pings the database on every health call.
func WithDB(db *gorm.DB) Option {
	return WithCheck("database", func(ctx context.Context) error {
		if db == nil {
			return errors.New("gorm db is nil")
		}
		sqlDB, err := db.DB()
		if err != nil {
			return errors.New("db.DB(): " + err.Error())
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return errors.New("ping: " + err.Error())
		}
		return nil
	})
}

func WithCheck(name string, fn Check) Option {
	return func(h *HealthCtrl) { h.checks = append(h.checks, namedCheck{name, fn}) }
}

// NewHealthCtrl reports the store mode plus the outcome of every check.
func NewHealthCtrl(mode string, opts ...Option) *HealthCtrl {
	h := &HealthCtrl{mode: mode}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), CheckTimeout)
	defer cancel()

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	allOK := true
	checks := make(map[string]any, len(h.checks))
	for _, ch := range h.checks {
		res := sub{OK: true}
		if err := ch.fn(ctx); err != nil {
			allOK = false
			res = sub{OK: false, Err: err.Error()}
		}
		checks[ch.name] = res
	}

	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"store_mode": h.mode,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     checks,
		"time":       time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
