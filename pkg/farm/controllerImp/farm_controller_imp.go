package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/farm/service"
	"farmdash/pkg/page"
)

type FarmCtrl struct{ svc service.FarmService }

func New(svc service.FarmService) *FarmCtrl { return &FarmCtrl{svc} }

func (h *FarmCtrl) List(c echo.Context) error {
	_ = h.svc.Load(c.Request().Context())
	return page.RespondView(c, h.svc.Status(), h.svc.View(), nil)
}

func (h *FarmCtrl) Reload(c echo.Context) error { return h.List(c) }

func (h *FarmCtrl) Header(c echo.Context) error {
	_ = h.svc.Load(c.Request().Context())
	return page.RespondView(c, h.svc.Status(), h.svc.Header(), nil)
}

func (h *FarmCtrl) Create(c echo.Context) error {
	var form entities.FarmForm
	if err := page.Bind(c, &form); err != nil {
		return page.RespondError(c, err, nil)
	}
	ctx, inbox := page.Command(c)
	farm, err := h.svc.SubmitCreate(ctx, form)
	if err != nil {
		return page.RespondError(c, err, inbox.Drain())
	}
	return page.RespondData(c, http.StatusCreated, farm, inbox.Drain())
}

func (h *FarmCtrl) Update(c echo.Context) error {
	id, err := page.ParamID(c)
	if err != nil {
		return page.RespondError(c, err, nil)
	}
	var form entities.FarmForm
	if err := page.Bind(c, &form); err != nil {
		return page.RespondError(c, err, nil)
	}
	ctx, inbox := page.Command(c)
	farm, err := h.svc.SubmitUpdate(ctx, id, form)
	if err != nil {
		return page.RespondError(c, err, inbox.Drain())
	}
	return page.RespondData(c, http.StatusOK, farm, inbox.Drain())
}

func (h *FarmCtrl) Delete(c echo.Context) error {
	id, err := page.ParamID(c)
	if err != nil {
		return page.RespondError(c, err, nil)
	}
	ctx, inbox := page.Command(c)
	if err := h.svc.Remove(ctx, id, page.Confirmed(c)); err != nil {
		return page.RespondError(c, err, inbox.Drain())
	}
	return page.RespondData(c, http.StatusOK, echo.Map{"deleted": id}, inbox.Drain())
}
