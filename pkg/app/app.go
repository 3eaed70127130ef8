// Package app wires the page services, controllers and routes of the
// dashboard server.
package app

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"farmdash/config"
	"farmdash/pkg/logger"
	"farmdash/pkg/store"
	"farmdash/pkg/view"
	"farmdash/router"

	cropCtrlImp "farmdash/pkg/crop/controllerImp"
	cropSvcImp "farmdash/pkg/crop/serviceImp"
	dashCtrlImp "farmdash/pkg/dashboard/controllerImp"
	dashSvcImp "farmdash/pkg/dashboard/serviceImp"
	farmCtrlImp "farmdash/pkg/farm/controllerImp"
	farmSvcImp "farmdash/pkg/farm/serviceImp"
	finCtrlImp "farmdash/pkg/finance/controllerImp"
	finSvcImp "farmdash/pkg/finance/serviceImp"
	healthCtrlImp "farmdash/pkg/health/controllerImp"
	optCtrlImp "farmdash/pkg/options/controllerImp"
	taskCtrlImp "farmdash/pkg/task/controllerImp"
	taskSvcImp "farmdash/pkg/task/serviceImp"
	weatherCtrlImp "farmdash/pkg/weather/controllerImp"
	weatherSvcImp "farmdash/pkg/weather/serviceImp"
)

type Deps struct {
	Config config.AppConfig
	Store  store.Set
	Logger *zap.Logger
	// Now defaults to the wall clock in the configured time zone.
	Now    func() time.Time
	Health []healthCtrlImp.Option
}

// New builds the dashboard server. Pages load lazily on their first request.
func New(d Deps) (*echo.Echo, error) {
	lggr := logger.Or(d.Logger)
	now := d.Now
	if now == nil {
		loc := d.Config.Location()
		now = func() time.Time { return time.Now().In(loc) }
	}
	set := d.Store

	renderer, err := view.New()
	if err != nil {
		return nil, err
	}

	farms := farmSvcImp.NewFarmService(set.Farms, lggr)
	crops := cropSvcImp.NewCropService(set.Crops, set.Farms, lggr)
	tasks := taskSvcImp.NewTaskService(set.Tasks, set.Farms, set.Crops, lggr, taskSvcImp.WithClock(now))
	finance := finSvcImp.NewFinanceService(set.Transactions, set.Farms, lggr, finSvcImp.WithClock(now))
	weather := weatherSvcImp.NewWeatherService(set.Weather, d.Config.ForecastDays, lggr)
	dashboard := dashSvcImp.NewDashboardService(set, lggr, dashSvcImp.WithClock(now))

	e := echo.New()
	e.Renderer = renderer
	return router.New(e, lggr, router.Controllers{
		Dashboard: dashCtrlImp.New(dashboard),
		Farms:     farmCtrlImp.New(farms),
		Crops:     cropCtrlImp.New(crops),
		Tasks:     taskCtrlImp.New(tasks),
		Finance:   finCtrlImp.New(finance, now),
		Weather:   weatherCtrlImp.New(weather),
		Options:   optCtrlImp.New(farms),
		Health:    healthCtrlImp.NewHealthCtrl(d.Config.StoreMode, d.Health...),
	}), nil
}
