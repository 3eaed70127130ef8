package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	"farmdash/pkg/page"
	"farmdash/pkg/task/service"
)

type TaskCtrl struct{ svc service.TaskService }

func New(svc service.TaskService) *TaskCtrl { return &TaskCtrl{svc} }

// List answers GET /tasks?search=&priority=&status=. Every read reloads the
// page through the shared cache.
func (h *TaskCtrl) List(c echo.Context) error {
	var f service.Filter
	if err := page.BindQuery(c, &f); err != nil {
		return page.RespondError(c, err, nil)
	}
	_ = h.svc.Load(c.Request().Context())
	return page.RespondView(c, h.svc.Status(), h.svc.View(f), nil)
}

func (h *TaskCtrl) Reload(c echo.Context) error { return h.List(c) }

func (h *TaskCtrl) Create(c echo.Context) error {
	var form entities.TaskForm
	if err := page.Bind(c, &form); err != nil {
		return page.RespondError(c, err, nil)
	}
	ctx, inbox := page.Command(c)
	task, err := h.svc.SubmitCreate(ctx, form)
	if err != nil {
		return page.RespondError(c, err, inbox.Drain())
	}
	return page.RespondData(c, http.StatusCreated, task, inbox.Drain())
}

func (h *TaskCtrl) Update(c echo.Context) error {
	id, err := page.ParamID(c)
	if err != nil {
		return page.RespondError(c, err, nil)
	}
	var form entities.TaskForm
	if err := page.Bind(c, &form); err != nil {
		return page.RespondError(c, err, nil)
	}
	ctx, inbox := page.Command(c)
	task, err := h.svc.SubmitUpdate(ctx, id, form)
	if err != nil {
		return page.RespondError(c, err, inbox.Drain())
	}
	return page.RespondData(c, http.StatusOK, task, inbox.Drain())
}

func (h *TaskCtrl) Delete(c echo.Context) error {
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

func (h *TaskCtrl) Toggle(c echo.Context) error {
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
