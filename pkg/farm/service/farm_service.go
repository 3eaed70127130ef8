package service

import (
	"context"

	"farmdash/entities"
	"farmdash/pkg/page"
)

type View struct {
	Farms []entities.Farm `json:"farms"`
	Count int             `json:"count"`
}

// Header is the farm selector shown on every page.
type Header struct {
	Farms    []entities.Option `json:"farms"`
	Selected int               `json:"selected,omitempty"` // first farm by default
}

type FarmService interface {
	// Load (re)fetches farms. Every page read calls it, so it is also the
	// retry of a failed page.
	Load(ctx context.Context) error
	Status() page.Status
	View() View
	Header() Header
	Options() []entities.Option
	SubmitCreate(ctx context.Context, form entities.FarmForm) (entities.Farm, error)
	SubmitUpdate(ctx context.Context, id int, form entities.FarmForm) (entities.Farm, error)
	Remove(ctx context.Context, id int, confirmed bool) error
}
