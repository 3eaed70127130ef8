package serviceImp

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"farmdash/entities"
	"farmdash/pkg/logger"
	"farmdash/pkg/page"
	"farmdash/pkg/store"
	"farmdash/pkg/weather/service"
)

const loadFailed = "Failed to load weather data"

type weatherSvc struct {
	weather store.Adapter[entities.Weather, entities.WeatherForm]
	days    int
	life    page.Lifecycle
	log     *zap.Logger

	mu       sync.RWMutex
	current  *entities.Weather
	forecast []entities.Weather
}

// NewWeatherService shows the latest observation and the first days of the
// forecast. days <= 0 uses store.DefaultForecastDays.
func NewWeatherService(weather store.Adapter[entities.Weather, entities.WeatherForm], days int, lggr *zap.Logger) service.WeatherService {
	if days <= 0 {
		days = store.DefaultForecastDays
	}
	return &weatherSvc{weather: weather, days: days, log: logger.Or(lggr).Named("page.weather")}
}

func (s *weatherSvc) load(ctx context.Context) error {
	var (
		current  *entities.Weather
		forecast []entities.Weather
	)
	err := page.LoadAll(ctx,
		func(ctx context.Context) (err error) {
			current, err = store.CurrentWeather(ctx, s.weather)
			return err
		},
		page.Into(&forecast, func(ctx context.Context) ([]entities.Weather, error) {
			return store.Forecast(ctx, s.weather, s.days)
		}),
	)
	if err != nil {
		s.log.Error("load", zap.Error(err))
		return err
	}
	s.mu.Lock()
	s.current, s.forecast = current, forecast
	s.mu.Unlock()
	return nil
}

func (s *weatherSvc) Load(ctx context.Context) error { return s.life.Run(ctx, loadFailed, s.load) }
func (s *weatherSvc) Status() page.Status            { return s.life.Status() }

func (s *weatherSvc) View() service.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v := service.View{Forecast: slices.Clone(s.forecast), Insights: []service.Insight{}}
	if v.Forecast == nil {
		v.Forecast = []entities.Weather{}
	}
	if s.current != nil {
		cur := *s.current
		v.Current = &cur
		v.Insights = Insights(cur)
	}
	return v
}
