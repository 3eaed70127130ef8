package service

import (
	"context"

	"farmdash/entities"
	"farmdash/pkg/page"
)

type Insight struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

type View struct {
	Current  *entities.Weather  `json:"current"`
	Forecast []entities.Weather `json:"forecast"`
	Insights []Insight          `json:"insights"`
}

// WeatherService is read-only: weather is seeded, never edited from the page.
type WeatherService interface {
	// Load (re)reads current weather and the forecast; every page read calls it.
	Load(ctx context.Context) error
	Status() page.Status
	View() View
}
