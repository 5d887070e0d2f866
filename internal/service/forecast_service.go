package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"invtrack/internal/dto"
	"invtrack/internal/forecast"
)

// ForecastHorizon is the fixed number of periods predicted ahead.
const ForecastHorizon = 6

// ForecastService produces a demand forecast from a comma-separated sales
// history. It degrades instead of failing: fewer than two usable values
// yields [0], and any fitting error (including the deadline) yields a zero
// vector of the full horizon. The handler always returns 200.
type ForecastService interface {
	Forecast(ctx context.Context, req dto.ForecastRequest) dto.ForecastResponse
}

type forecastService struct {
	timeout time.Duration
}

func NewForecastService(timeout time.Duration) ForecastService {
	return &forecastService{timeout: timeout}
}

func (s *forecastService) Forecast(ctx context.Context, req dto.ForecastRequest) dto.ForecastResponse {
	series := ParseSeries(req.SalesData)
	if len(series) < 2 {
		// Not enough data — a single zero, not padded to the horizon.
		return dto.ForecastResponse{Product: req.Product, Forecast: []float64{0}}
	}

	values, err := s.fitAndForecast(ctx, series)
	if err != nil {
		log.Error().
			Err(err).
			Str("product", req.Product).
			Int("series_len", len(series)).
			Msg("forecast fit failed — returning zero vector")
		values = make([]float64, ForecastHorizon)
	}
	return dto.ForecastResponse{Product: req.Product, Forecast: values}
}

// fitAndForecast runs the fit under a deadline. The fit itself is a plain
// CPU-bound call, so the bound is enforced by racing it against the context;
// an abandoned fit goroutine finishes quietly on its own.
func (s *forecastService) fitAndForecast(ctx context.Context, series []float64) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type outcome struct {
		values []float64
		err    error
	}
	ch := make(chan outcome, 1)
	go func() {
		m, err := forecast.Fit(series)
		if err != nil {
			ch <- outcome{nil, err}
			return
		}
		ch <- outcome{m.Forecast(ForecastHorizon), nil}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-ch:
		return out.values, out.err
	}
}

// ParseSeries splits a comma-separated string into float values, trimming
// whitespace and skipping empty or non-numeric tokens.
func ParseSeries(raw string) []float64 {
	parts := strings.Split(raw, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		token := strings.TrimSpace(p)
		if token == "" {
			continue
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values
}
