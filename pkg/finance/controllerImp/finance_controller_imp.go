package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/finance/service"
	"farmdash/pkg/page"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type FinanceCtrl struct {
	svc service.FinanceService
	now func() time.Time
}

// New serves the finance page. now dates the export file name.
func New(svc service.FinanceService, now func() time.Time) *FinanceCtrl {
	if now == nil {
		now = time.Now
	}
	return &FinanceCtrl{svc: svc, now: now}
}

// List answers GET /finance?search=&type=&category=. Every read reloads the
// page through the shared cache.
func (h *FinanceCtrl) List(c echo.Context) error {
	var f service.Filter
	if err := page.BindQuery(c, &f); err != nil {
		return page.RespondError(c, err, nil)
	}
	_ = h.svc.Load(c.Request().Context())
	return page.RespondView(c, h.svc.Status(), h.svc.View(f), nil)
}

func (h *FinanceCtrl) Reload(c echo.Context) error { return h.List(c) }

// Export streams the filtered transactions as a workbook.
func (h *FinanceCtrl) Export(c echo.Context) error {
	var f service.Filter
	if err := page.BindQuery(c, &f); err != nil {
		return page.RespondError(c, err, nil)
	}
	if err := h.svc.Load(c.Request().Context()); err != nil {
		return page.RespondError(c, err, nil)
	}
	name := "transactions-" + h.now().Format(entities.DateLayout) + ".xlsx"
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, mimeXLSX)
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	res.WriteHeader(http.StatusOK)
	return h.svc.Export(res, f)
}

func (h *FinanceCtrl) Create(c echo.Context) error {
	var form entities.TransactionForm
	if err := page.Bind(c, &form); err != nil {
		return page.RespondError(c, err, nil)
	}
	ctx, inbox := page.Command(c)
	tx, err := h.svc.SubmitCreate(ctx, form)
	if err != nil {
		return page.RespondError(c, err, inbox.Drain())
	}
	return page.RespondData(c, http.StatusCreated, tx, inbox.Drain())
}

func (h *FinanceCtrl) Update(c echo.Context) error {
	id, err := page.ParamID(c)
	if err != nil {
		return page.RespondError(c, err, nil)
	}
	var form entities.TransactionForm
	if err := page.Bind(c, &form); err != nil {
		return page.RespondError(c, err, nil)
	}
	ctx, inbox := page.Command(c)
	tx, err := h.svc.SubmitUpdate(ctx, id, form)
	if err != nil {
		return page.RespondError(c, err, inbox.Drain())
	}
	return page.RespondData(c, http.StatusOK, tx, inbox.Drain())
}

func (h *FinanceCtrl) Delete(c echo.Context) error {
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
