package service

import (
	"errors"
	"fmt"
	"math"
)

// SeriesPoints is the number of samples produced for every series.
const SeriesPoints = 100

// Series names accepted by ComputeService.Series.
const (
	SeriesExpCos    = "exp_cos"
	SeriesLogistic  = "logistic"
	SeriesMultiBump = "multi_bump"
)

var (
	ErrUnknownSeries = errors.New("unknown series")
	ErrNonFinite     = errors.New("result is not a finite number")
	ErrOverflow      = errors.New("integer overflow")
)

// Series holds sampled x values and, for functions, their y values.
type Series struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y,omitempty"`
}

var seriesFuncs = map[string]func(float64) float64{
	// exponentially damped 5 Hz cosine
	SeriesExpCos: func(x float64) float64 {
		return math.Exp(-3*x) * math.Cos(2*math.Pi*5*x)
	},
	// sigmoid centred on 0.5
	SeriesLogistic: func(x float64) float64 {
		return 1 / (1 + math.Exp(-10*(x-0.5)))
	},
	// two superposed sines
	SeriesMultiBump: func(x float64) float64 {
		return math.Sin(x*math.Pi) + 0.5*math.Sin(x*3*math.Pi)
	},
}

// ComputeService implements the stateless numeric endpoints.
type ComputeService struct{}

func NewComputeService() *ComputeService { return &ComputeService{} }

// Linspace returns n evenly spaced samples over [start, stop]. Both ends are
// included and the last sample is exactly stop.
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

func (s *ComputeService) Linspace(xMin, xMax float64) (Series, error) {
	x := Linspace(xMin, xMax, SeriesPoints)
	if err := checkFinite(x); err != nil {
		return Series{}, err
	}
	return Series{X: x}, nil
}

func (s *ComputeService) Series(name string, xMin, xMax float64) (Series, error) {
	f, ok := seriesFuncs[name]
	if !ok {
		return Series{}, fmt.Errorf("%w: %q", ErrUnknownSeries, name)
	}
	x := Linspace(xMin, xMax, SeriesPoints)
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = f(v)
	}
	if err := checkFinite(x); err != nil {
		return Series{}, err
	}
	if err := checkFinite(y); err != nil {
		return Series{}, err
	}
	return Series{X: x, Y: y}, nil
}

func (s *ComputeService) Double(v int64) (int64, error) {
	if v > math.MaxInt64/2 || v < math.MinInt64/2 {
		return 0, ErrOverflow
	}
	return v * 2, nil
}

func (s *ComputeService) Half(v float64) float64 { return v / 2 }

func (s *ComputeService) Repeat(v string) string { return v + v }

func checkFinite(vs []float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	return nil
}
