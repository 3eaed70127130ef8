package entities

// Weather is a single observation or forecast day. Pages only read it; the
// write forms exist for seeding.
type Weather struct {
	ID            int     `json:"Id"`
	Temperature   int     `json:"temperature"` // °F
	Condition     string  `json:"condition"`   // sunny|cloudy|rainy|snowy|stormy|clear|overcast
	Humidity      int     `json:"humidity"`    // percent
	Precipitation float64 `json:"precipitation"`
	Date          string  `json:"date"`
}

type WeatherForm struct {
	Temperature   FormValue `json:"temperature"`
	Condition     string    `json:"condition"`
	Humidity      FormValue `json:"humidity"`
	Precipitation FormValue `json:"precipitation"`
	Date          string    `json:"date"`
}

func (w Weather) Form() WeatherForm {
	return WeatherForm{
		Temperature:   IntValue(w.Temperature),
		Condition:     w.Condition,
		Humidity:      IntValue(w.Humidity),
		Precipitation: FloatValue(w.Precipitation),
		Date:          w.Date,
	}
}
