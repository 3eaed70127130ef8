package controllerImp

import (
	"github.com/labstack/echo/v4"

	"farmdash/pkg/page"
	"farmdash/pkg/weather/service"
)

type WeatherCtrl struct{ svc service.WeatherService }

func New(svc service.WeatherService) *WeatherCtrl { return &WeatherCtrl{svc} }

func (h *WeatherCtrl) Get(c echo.Context) error {
	_ = h.svc.Load(c.Request().Context())
	return page.RespondView(c, h.svc.Status(), h.svc.View(), nil)
}

func (h *WeatherCtrl) Reload(c echo.Context) error { return h.Get(c) }
