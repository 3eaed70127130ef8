package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmdash/entities"
	farmSvc "farmdash/pkg/farm/service"
)

// Options are the select lists shared by every form.
type Options struct {
	SizeUnits        []entities.Option            `json:"sizeUnits"`
	CropTypes        []entities.Option            `json:"cropTypes"`
	CropStatuses     []entities.Option            `json:"cropStatuses"`
	Priorities       []entities.Option            `json:"priorities"`
	TaskStatuses     []entities.Option            `json:"taskStatuses"`
	TransactionTypes []entities.Option            `json:"transactionTypes"`
	Categories       map[string][]entities.Option `json:"categories"`
	Farms            []entities.Option            `json:"farms"`
}

type OptionsCtrl struct{ farms farmSvc.FarmService }

func New(farms farmSvc.FarmService) *OptionsCtrl { return &OptionsCtrl{farms} }

// List answers GET /options. Farm options are empty while farms fail to load.
func (h *OptionsCtrl) List(c echo.Context) error {
	_ = h.farms.Load(c.Request().Context())
	return c.JSON(http.StatusOK, Options{
		SizeUnits:        entities.SizeUnitOptions,
		CropTypes:        entities.CropTypeOptions,
		CropStatuses:     entities.CropStatusOptions,
		Priorities:       entities.PriorityOptions,
		TaskStatuses:     entities.TaskStatusOptions,
		TransactionTypes: entities.TransactionTypeOptions,
		Categories: map[string][]entities.Option{
			string(entities.Income):  entities.CategoryOptions(entities.Income),
			string(entities.Expense): entities.CategoryOptions(entities.Expense),
		},
		Farms: h.farms.Options(),
	})
}
