package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/pkg/dashboard/service"
	"farmdash/pkg/page"
	"farmdash/pkg/view"
)

type DashboardCtrl struct{ svc service.DashboardService }

func New(svc service.DashboardService) *DashboardCtrl { return &DashboardCtrl{svc} }

// Get reloads the dashboard through the shared cache and answers its view.
func (h *DashboardCtrl) Get(c echo.Context) error {
	_ = h.svc.Load(c.Request().Context())
	return page.RespondView(c, h.svc.Status(), h.svc.View(), nil)
}

func (h *DashboardCtrl) Reload(c echo.Context) error { return h.Get(c) }

// Toggle flips a task from the upcoming list.
func (h *DashboardCtrl) Toggle(c echo.Context) error {
	id, err := page.ParamID(c)
	if err != nil {
		return page.RespondError(c, err, nil)
	}
	ctx, inbox := page.Command(c)
	task, err := h.svc.ToggleComplete(ctx, id)
	if err != nil {
		return page.RespondError(c, err, inbox.Drain())
	}
	return page.RespondData(c, http.StatusOK, task, inbox.Drain())
}

// Page renders the dashboard as HTML.
func (h *DashboardCtrl) Page(c echo.Context) error {
	_ = h.svc.Load(c.Request().Context())
	st := h.svc.Status()
	code := http.StatusOK
	if st.State == page.Failed {
		code = http.StatusServiceUnavailable
	}
	return c.Render(code, "dashboard", view.Dashboard(st, h.svc.View()))
}
