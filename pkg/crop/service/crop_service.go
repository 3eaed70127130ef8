package service

import (
	"context"

	"farmdash/entities"
	"farmdash/pkg/page"
)

type Filter struct {
	Search string              `query:"search"`
	Status entities.CropStatus `query:"status"`
}

// Row is a crop as listed, with its farm resolved.
type Row struct {
	entities.Crop
	FarmName string `json:"farmName"`
}

type View struct {
	Crops         []Row             `json:"crops"`
	Shown         int               `json:"shown"`
	Total         int               `json:"total"`
	FarmOptions   []entities.Option `json:"farmOptions"`
	TypeOptions   []entities.Option `json:"typeOptions"`
	StatusOptions []entities.Option `json:"statusOptions"`
}

type CropService interface {
	// Load (re)reads the working set; every page read calls it.
	Load(ctx context.Context) error
	Status() page.Status
	View(f Filter) View
	SubmitCreate(ctx context.Context, form entities.CropForm) (entities.Crop, error)
	SubmitUpdate(ctx context.Context, id int, form entities.CropForm) (entities.Crop, error)
	Remove(ctx context.Context, id int, confirmed bool) error
}
