package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"farmdash/entities"
	"farmdash/pkg/page"
	"farmdash/pkg/store"
	"farmdash/pkg/store/mock"
)

func TestInsights(t *testing.T) {
	cases := []struct {
		name string
		w    entities.Weather
		want map[string]string
	}{
		{
			name: "warm and sunny",
			w:    entities.Weather{Temperature: 78, Condition: "sunny", Humidity: 45},
			want: map[string]string{
				KindGrowing:    "Excellent growing conditions for most crops",
				KindIrrigation: "Normal irrigation schedule recommended",
				KindFieldWork:  "Excellent conditions for field operations",
				KindPest:       "Normal pest monitoring schedule recommended",
			},
		},
		{
			name: "hot and dry",
			w:    entities.Weather{Temperature: 92, Condition: "Clear", Humidity: 30},
			want: map[string]string{
				KindGrowing:    "Hot conditions - ensure adequate irrigation",
				KindIrrigation: "Low humidity - increase irrigation frequency",
				KindFieldWork:  "Excellent conditions for field operations",
				KindPest:       "Normal pest monitoring schedule recommended",
			},
		},
		{
			name: "humid storm",
			w:    entities.Weather{Temperature: 80, Condition: "stormy", Humidity: 88, Precipitation: 1.2},
			want: map[string]string{
				KindGrowing:    "Excellent growing conditions for most crops",
				KindIrrigation: "Recent rainfall - reduce irrigation schedule",
				KindFieldWork:  "Avoid field work - muddy conditions",
				KindPest:       "High humidity & temperature - monitor for pest activity",
			},
		},
		{
			// 85 is neither inside the range nor hot
			name: "boundary",
			w:    entities.Weather{Temperature: 85, Condition: "overcast", Humidity: 40, Precipitation: 0.1},
			want: map[string]string{
				KindGrowing:    "Cool conditions - monitor sensitive crops",
				KindIrrigation: "Normal irrigation schedule recommended",
				KindFieldWork:  "Check soil conditions before heavy machinery use",
				KindPest:       "Normal pest monitoring schedule recommended",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := map[string]string{}
			for _, in := range Insights(tc.w) {
				got[in.Kind] = in.Message
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestViewLoadsCurrentAndForecast(t *testing.T) {
	f, err := mock.LoadFixtures()
	require.NoError(t, err)
	set := mock.NewSet(f, mock.WithLatency(0))

	svc := NewWeatherService(set.Weather, 5, zaptest.NewLogger(t))
	assert.Nil(t, svc.View().Current)

	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, page.Ready, svc.Status().State)

	v := svc.View()
	require.NotNil(t, v.Current)
	assert.Equal(t, "2025-06-12", v.Current.Date)
	require.Len(t, v.Forecast, 5)
	assert.Equal(t, "2025-06-05", v.Forecast[0].Date)
	assert.Len(t, v.Insights, 4)
	assert.Equal(t, `0" precipitation today`, v.Insights[1].Detail)
}

func TestViewWithoutObservations(t *testing.T) {
	empty := mock.New[entities.Weather, entities.WeatherForm](store.WeatherCodec{}, nil, mock.WithLatency(0))
	svc := NewWeatherService(empty, 0, zaptest.NewLogger(t))
	require.NoError(t, svc.Load(context.Background()))

	v := svc.View()
	assert.Nil(t, v.Current)
	assert.Empty(t, v.Forecast)
	assert.NotNil(t, v.Insights)
}
