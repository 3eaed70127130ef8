package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/crop/service"
	"farmdash/pkg/page"
)

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) *CropCtrl { return &CropCtrl{svc} }

// List answers GET /crops?search=&status=. Every read reloads the page
// through the shared cache.
func (h *CropCtrl) List(c echo.Context) error {
	var f service.Filter
	if err := page.BindQuery(c, &f); err != nil {
		return page.RespondError(c, err, nil)
	}
	_ = h.svc.Load(c.Request().Context())
	return page.RespondView(c, h.svc.Status(), h.svc.View(f), nil)
}

func (h *CropCtrl) Reload(c echo.Context) error { return h.List(c) }

func (h *CropCtrl) Create(c echo.Context) error {
	var form entities.CropForm
	if err := page.Bind(c, &form); err != nil {
		return page.RespondError(c, err, nil)
	}
	ctx, inbox := page.Command(c)
	crop, err := h.svc.SubmitCreate(ctx, form)
	if err != nil {
		return page.RespondError(c, err, inbox.Drain())
	}
	return page.RespondData(c, http.StatusCreated, crop, inbox.Drain())
}

func (h *CropCtrl) Update(c echo.Context) error {
	id, err := page.ParamID(c)
	if err != nil {
		return page.RespondError(c, err, nil)
	}
	var form entities.CropForm
	if err := page.Bind(c, &form); err != nil {
		return page.RespondError(c, err, nil)
	}
	ctx, inbox := page.Command(c)
	crop, err := h.svc.SubmitUpdate(ctx, id, form)
	if err != nil {
		return page.RespondError(c, err, inbox.Drain())
	}
	return page.RespondData(c, http.StatusOK, crop, inbox.Drain())
}

func (h *CropCtrl) Delete(c echo.Context) error {
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
