package view

import (
	"strings"

	"farmdash/entities"
	dashboardSvc "farmdash/pkg/dashboard/service"
	"farmdash/pkg/page"
)

// Variant selects a badge colour.
type Variant string

const (
	Default   Variant = "default"
	Success   Variant = "success"
	Warning   Variant = "warning"
	Error     Variant = "error"
	Planted   Variant = "planted"
	Growing   Variant = "growing"
	Ready     Variant = "ready"
	Harvested Variant = "harvested"
)

type Badge struct {
	Variant Variant
	Text    string
}

func PriorityVariant(p entities.Priority) Variant {
	switch entities.Priority(strings.ToLower(string(p))) {
	case entities.High:
		return Error
	case entities.Medium:
		return Warning
	case entities.Low:
		return Success
	}
	return Default
}

func TypeVariant(t entities.TransactionType) Variant {
	switch t {
	case entities.Income:
		return Success
	case entities.Expense:
		return Warning
	}
	return Default
}

// StatusVariant uses the crop status as its own colour.
func StatusVariant(s entities.CropStatus) Variant {
	if s.Valid() {
		return Variant(s)
	}
	return Default
}

var weatherIcons = map[string]string{
	"sunny":    "sun",
	"clear":    "sun",
	"cloudy":   "cloud",
	"rainy":    "cloud-rain",
	"snowy":    "snowflake",
	"stormy":   "zap",
	"overcast": "cloud-drizzle",
}

func WeatherIcon(condition string) string {
	if icon, ok := weatherIcons[strings.ToLower(condition)]; ok {
		return icon
	}
	return "sun"
}

// Stat is one StatCard.
type Stat struct {
	Title string
	Value string
	Icon  string
}

// DashboardPage is what the dashboard template renders.
type DashboardPage struct {
	Status  page.Status
	Stats   []Stat
	Tasks   []dashboardSvc.Upcoming
	Weather *entities.Weather
}

func Dashboard(st page.Status, v dashboardSvc.View) DashboardPage {
	return DashboardPage{
		Status: st,
		Stats: []Stat{
			{Title: "Active Crops", Value: humanizeInt(v.Stats.ActiveCrops), Icon: "sprout"},
			{Title: "Pending Tasks", Value: humanizeInt(v.Stats.PendingTasks), Icon: "check-square"},
			{Title: "Week Expenses", Value: Money(v.Stats.WeekExpenses), Icon: "trending-down"},
			{Title: "Month Income", Value: Money(v.Stats.MonthIncome), Icon: "trending-up"},
		},
		Tasks:   v.Upcoming,
		Weather: v.Weather,
	}
}
