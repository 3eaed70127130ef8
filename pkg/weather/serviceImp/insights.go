package serviceImp

import (
	"fmt"
	"strings"

	"farmdash/entities"
	"farmdash/pkg/weather/service"
)

const (
	KindGrowing    = "growing"
	KindIrrigation = "irrigation"
	KindFieldWork  = "field_work"
	KindPest       = "pest"
)

// Insights derives farming advice from one observation.
func Insights(w entities.Weather) []service.Insight {
	return []service.Insight{
		{Kind: KindGrowing, Title: "Growing Conditions", Message: growing(w), Detail: "Optimal range: 70-85°F"},
		{Kind: KindIrrigation, Title: "Irrigation Needs", Message: irrigation(w),
			Detail: fmt.Sprintf("%s\" precipitation today", entities.FloatValue(w.Precipitation))},
		{Kind: KindFieldWork, Title: "Field Work", Message: fieldWork(w)},
		{Kind: KindPest, Title: "Pest Control", Message: pest(w)},
	}
}

func growing(w entities.Weather) string {
	switch {
	case w.Temperature > 70 && w.Temperature < 85:
		return "Excellent growing conditions for most crops"
	case w.Temperature > 85:
		return "Hot conditions - ensure adequate irrigation"
	}
	return "Cool conditions - monitor sensitive crops"
}

func irrigation(w entities.Weather) string {
	switch {
	case w.Precipitation > 0.1:
		return "Recent rainfall - reduce irrigation schedule"
	case w.Humidity < 40:
		return "Low humidity - increase irrigation frequency"
	}
	return "Normal irrigation schedule recommended"
}

func fieldWork(w entities.Weather) string {
	c := strings.ToLower(w.Condition)
	switch {
	case strings.Contains(c, "rain"), strings.Contains(c, "storm"):
		return "Avoid field work - muddy conditions"
	case strings.Contains(c, "sunny"), strings.Contains(c, "clear"):
		return "Excellent conditions for field operations"
	}
	return "Check soil conditions before heavy machinery use"
}

func pest(w entities.Weather) string {
	if w.Humidity > 70 && w.Temperature > 75 {
		return "High humidity & temperature - monitor for pest activity"
	}
	return "Normal pest monitoring schedule recommended"
}
