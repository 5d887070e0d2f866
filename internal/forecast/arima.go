// Package forecast fits a small ARIMA(1,1,1) model to a univariate sales
// series. Estimation is by conditional sum of squares: the series is
// differenced once and the ARMA(1,1) coefficients of the differenced series
// are found by minimizing the squared one-step prediction errors with
// Nelder–Mead. That is deliberately simpler than a full maximum-likelihood
// fit, but it is well-behaved on the short, noisy series this service sees.
package forecast

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// minObservations is the shortest series the fit accepts: differencing
// removes one point and the CSS recursion needs a few more to say anything.
const minObservations = 4

var (
	ErrSeriesTooShort = errors.New("forecast: series too short to fit")
	ErrSeriesInvalid  = errors.New("forecast: series contains non-finite values")
	ErrFitDiverged    = errors.New("forecast: optimizer failed to converge")
)

// Model holds the fitted ARIMA(1,1,1) state needed to forecast forward.
type Model struct {
	Const float64 // constant of the differenced process
	AR    float64 // autoregressive coefficient
	MA    float64 // moving-average coefficient

	lastLevel float64 // last observed value of the original series
	lastDiff  float64 // last observed first difference
	lastResid float64 // residual at the final in-sample step
}

// Fit estimates an ARIMA(1,1,1) model on series.
func Fit(series []float64) (*Model, error) {
	if len(series) < minObservations {
		return nil, ErrSeriesTooShort
	}
	for _, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrSeriesInvalid
		}
	}

	// First difference.
	w := make([]float64, len(series)-1)
	for i := range w {
		w[i] = series[i+1] - series[i]
	}

	// Parameters are optimized in an unconstrained space; tanh keeps the AR
	// and MA coefficients inside the stationary/invertible region (-1, 1).
	objective := func(x []float64) float64 {
		c, phi, theta := x[0], math.Tanh(x[1]), math.Tanh(x[2])
		return css(w, c, phi, theta)
	}

	x0 := []float64{floats.Sum(w) / float64(len(w)), 0.0, 0.0}
	problem := optimize.Problem{Func: objective}
	result, err := optimize.Minimize(problem, x0, nil, &optimize.NelderMead{})
	if err != nil || result == nil {
		return nil, ErrFitDiverged
	}
	if math.IsNaN(result.F) || math.IsInf(result.F, 0) {
		return nil, ErrFitDiverged
	}

	c, phi, theta := result.X[0], math.Tanh(result.X[1]), math.Tanh(result.X[2])
	m := &Model{
		Const:     c,
		AR:        phi,
		MA:        theta,
		lastLevel: series[len(series)-1],
		lastDiff:  w[len(w)-1],
		lastResid: finalResidual(w, c, phi, theta),
	}
	return m, nil
}

// Forecast iterates the fitted recursion steps periods ahead and integrates
// the differences back onto the level of the original series.
func (m *Model) Forecast(steps int) []float64 {
	out := make([]float64, steps)
	level := m.lastLevel
	prevDiff := m.lastDiff
	prevResid := m.lastResid
	for k := range out {
		diff := m.Const + m.AR*prevDiff + m.MA*prevResid
		level += diff
		out[k] = level
		prevDiff = diff
		prevResid = 0 // future shocks have zero expectation
	}
	return out
}

// css returns the conditional sum of squared one-step errors of an
// ARMA(1,1) on w, conditioning on e[0] = 0.
func css(w []float64, c, phi, theta float64) float64 {
	sum := 0.0
	prevResid := 0.0
	for t := 1; t < len(w); t++ {
		e := w[t] - c - phi*w[t-1] - theta*prevResid
		sum += e * e
		prevResid = e
	}
	return sum
}

// finalResidual replays the recursion at the fitted parameters and returns
// the residual of the last in-sample observation.
func finalResidual(w []float64, c, phi, theta float64) float64 {
	prevResid := 0.0
	for t := 1; t < len(w); t++ {
		prevResid = w[t] - c - phi*w[t-1] - theta*prevResid
	}
	return prevResid
}
