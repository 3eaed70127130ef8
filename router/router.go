package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"farmdash/pkg/metrics"
	"farmdash/pkg/middleware"
)

type crudCtrl interface {
	List(echo.Context) error
	Reload(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

// Controllers are the handlers the dashboard API mounts.
type Controllers struct {
	Dashboard interface {
		Page(echo.Context) error
		Get(echo.Context) error
		Reload(echo.Context) error
		Toggle(echo.Context) error
	}
	Farms interface {
		crudCtrl
		Header(echo.Context) error
	}
	Crops interface{ crudCtrl }
	Tasks interface {
		crudCtrl
		Toggle(echo.Context) error
	}
	Finance interface {
		crudCtrl
		Export(echo.Context) error
	}
	Weather interface {
		Get(echo.Context) error
		Reload(echo.Context) error
	}
	Options interface{ List(echo.Context) error }
	Health  interface{ Health(echo.Context) error }
}

// Base installs the middleware every server shares.
func Base(e *echo.Echo, lggr *zap.Logger) *echo.Echo {
	e.HideBanner = true
	e.HidePort = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.RequestLog(lggr.Named("http")))
	e.Use(middleware.Metrics())
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	return e
}

func New(e *echo.Echo, lggr *zap.Logger, ctl Controllers) *echo.Echo {
	Base(e, lggr)

	e.GET("/", ctl.Dashboard.Page)
	e.GET("/health", ctl.Health.Health)

	api := e.Group("/api")

	api.GET("/dashboard", ctl.Dashboard.Get)
	api.POST("/dashboard/reload", ctl.Dashboard.Reload)
	api.PATCH("/dashboard/tasks/:id/toggle", ctl.Dashboard.Toggle)

	api.GET("/header", ctl.Farms.Header)
	mountCrud(api, "/farms", ctl.Farms)
	mountCrud(api, "/crops", ctl.Crops)

	mountCrud(api, "/tasks", ctl.Tasks)
	api.PATCH("/tasks/:id/toggle", ctl.Tasks.Toggle)

	api.GET("/finance/export.xlsx", ctl.Finance.Export)
	mountCrud(api, "/finance", ctl.Finance)

	api.GET("/weather", ctl.Weather.Get)
	api.POST("/weather/reload", ctl.Weather.Reload)

	api.GET("/options", ctl.Options.List)
	return e
}

func mountCrud(g *echo.Group, prefix string, c crudCtrl) {
	g.GET(prefix, c.List)
	g.POST(prefix, c.Create)
	g.POST(prefix+"/reload", c.Reload)
	g.PUT(prefix+"/:id", c.Update)
	g.DELETE(prefix+"/:id", c.Delete)
}
