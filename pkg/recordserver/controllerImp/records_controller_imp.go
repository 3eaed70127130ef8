package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"farmdash/entities"
	"farmdash/pkg/logger"
	"farmdash/pkg/recordserver/repository"
	"farmdash/pkg/recordstore"
)

// DefaultTables are the tables the dashboard reads and writes.
var DefaultTables = []string{"farm_c", "crop_c", "task_c", "transaction_c", "weather_c"}

const msgNotFound = "Record not found"

// RecordsCtrl answers the record protocol over a RecordRepository.
type RecordsCtrl struct {
	repo   repository.RecordRepository
	tables map[string]bool
	log    *zap.Logger
}

func New(repo repository.RecordRepository, lggr *zap.Logger, tables ...string) *RecordsCtrl {
	if len(tables) == 0 {
		tables = DefaultTables
	}
	allowed := make(map[string]bool, len(tables))
	for _, t := range tables {
		allowed[t] = true
	}
	return &RecordsCtrl{repo: repo, tables: allowed, log: logger.Or(lggr).Named("recordserver")}
}

// Register mounts the protocol endpoints on g (usually "/v1/tables").
func (h *RecordsCtrl) Register(g *echo.Group) {
	g.POST("/:table/fetch", h.Fetch)
	g.POST("/:table/get/:id", h.Get)
	g.POST("/:table/create", h.Create)
	g.POST("/:table/update", h.Update)
	g.POST("/:table/delete", h.Delete)
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, recordstore.Response{Success: false, Message: msg})
}

// table resolves the :table param; ok is false once a response was written.
func (h *RecordsCtrl) table(c echo.Context) (string, bool, error) {
	t := c.Param("table")
	if !h.tables[t] {
		return "", false, fail(c, http.StatusNotFound, "unknown table "+t)
	}
	return t, true, nil
}

func toRecord(rec entities.StoredRecord) recordstore.Record {
	out := make(recordstore.Record, len(rec.Fields)+1)
	for k, v := range rec.Fields {
		out[k] = v
	}
	out[recordstore.IDField] = rec.RecordID
	return out
}

func fieldsOf(r recordstore.Record) map[string]any {
	out := make(map[string]any, len(r))
	for k, v := range r {
		if k != recordstore.IDField {
			out[k] = v
		}
	}
	return out
}

func (h *RecordsCtrl) Fetch(c echo.Context) error {
	table, ok, err := h.table(c)
	if !ok {
		return err
	}
	var p recordstore.FetchParams
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "bad json")
	}
	rows, err := h.repo.List(c.Request().Context(), table)
	if err != nil {
		h.log.Error("fetch", zap.String("table", table), zap.Error(err))
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	records := make([]recordstore.Record, len(rows))
	for i, row := range rows {
		records[i] = toRecord(row)
	}
	return c.JSON(http.StatusOK, recordstore.Response{Success: true, Data: p.Apply(records)})
}

func (h *RecordsCtrl) Get(c echo.Context) error {
	table, ok, err := h.table(c)
	if !ok {
		return err
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var p recordstore.FetchParams
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "bad json")
	}
	row, err := h.repo.FindByID(c.Request().Context(), table, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fail(c, http.StatusNotFound, msgNotFound)
	}
	if err != nil {
		h.log.Error("get", zap.String("table", table), zap.Int("id", id), zap.Error(err))
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	data := p.Apply([]recordstore.Record{toRecord(*row)})
	return c.JSON(http.StatusOK, recordstore.Response{Success: true, Data: data[0]})
}

func (h *RecordsCtrl) Create(c echo.Context) error {
	table, ok, err := h.table(c)
	if !ok {
		return err
	}
	var p recordstore.RecordsParams
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "bad json")
	}
	ctx := c.Request().Context()
	results := make([]recordstore.Result, 0, len(p.Records))
	for _, r := range p.Records {
		row, err := h.repo.Create(ctx, table, fieldsOf(r))
		if err != nil {
			h.log.Warn("create", zap.String("table", table), zap.Error(err))
			results = append(results, recordstore.Result{Message: err.Error()})
			continue
		}
		results = append(results, recordstore.Result{Success: true, Data: toRecord(*row)})
	}
	return c.JSON(http.StatusOK, recordstore.Response{Success: true, Results: results})
}

func (h *RecordsCtrl) Update(c echo.Context) error {
	table, ok, err := h.table(c)
	if !ok {
		return err
	}
	var p recordstore.RecordsParams
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "bad json")
	}
	ctx := c.Request().Context()
	results := make([]recordstore.Result, 0, len(p.Records))
	for _, r := range p.Records {
		id, ok := r.ID()
		if !ok {
			results = append(results, recordstore.Result{Message: "Id is required"})
			continue
		}
		row, err := h.repo.Update(ctx, table, id, fieldsOf(r))
		switch {
		case errors.Is(err, repository.ErrNotFound):
			results = append(results, recordstore.Result{Message: msgNotFound})
		case err != nil:
			h.log.Warn("update", zap.String("table", table), zap.Int("id", id), zap.Error(err))
			results = append(results, recordstore.Result{Message: err.Error()})
		default:
			results = append(results, recordstore.Result{Success: true, Data: toRecord(*row)})
		}
	}
	return c.JSON(http.StatusOK, recordstore.Response{Success: true, Results: results})
}

func (h *RecordsCtrl) Delete(c echo.Context) error {
	table, ok, err := h.table(c)
	if !ok {
		return err
	}
	var p recordstore.DeleteParams
	if err := c.Bind(&p); err != nil {
		return fail(c, http.StatusBadRequest, "bad json")
	}
	ctx := c.Request().Context()
	results := make([]recordstore.Result, 0, len(p.RecordIds))
	for _, id := range p.RecordIds {
		err := h.repo.Delete(ctx, table, id)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			results = append(results, recordstore.Result{Message: msgNotFound})
		case err != nil:
			h.log.Warn("delete", zap.String("table", table), zap.Int("id", id), zap.Error(err))
			results = append(results, recordstore.Result{Message: err.Error()})
		default:
			results = append(results, recordstore.Result{Success: true, Data: recordstore.Record{recordstore.IDField: id}})
		}
	}
	return c.JSON(http.StatusOK, recordstore.Response{Success: true, Results: results})
}
