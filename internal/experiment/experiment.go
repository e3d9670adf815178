package experiment

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/paperplane/internal/flight"
	"github.com/san-kum/paperplane/internal/metrics"
)

// checkEvery is how many launches run between context checks.
const checkEvery = 1024

type Config struct {
	Plane flight.Plane
	Runs  int
	Seed  int64
}

// Result summarises a batch of independent launches.
type Result struct {
	Plane     flight.Plane
	Base      float64
	Runs      int
	Distances []float64
	Metrics   map[string]float64
}

// Experiment launches the same plane many times from one seeded source.
type Experiment struct {
	cfg     Config
	source  flight.RandomSource
	metrics []metrics.Metric
}

func New(cfg Config) *Experiment {
	return &Experiment{
		cfg:     cfg,
		source:  flight.NewRand(cfg.Seed),
		metrics: metrics.Default(),
	}
}

// WithSource replaces the seeded generator.
func (e *Experiment) WithSource(src flight.RandomSource) *Experiment {
	e.source = src
	return e
}

func (e *Experiment) AddMetric(m metrics.Metric) {
	e.metrics = append(e.metrics, m)
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.cfg.Runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", e.cfg.Runs)
	}
	plane, err := e.cfg.Plane.Normalize()
	if err != nil {
		return nil, err
	}

	for _, m := range e.metrics {
		m.Reset()
	}

	res := &Result{
		Plane:     plane,
		Base:      flight.Base(plane),
		Distances: make([]float64, 0, e.cfg.Runs),
		Metrics:   make(map[string]float64, len(e.metrics)),
	}

	for i := 0; i < e.cfg.Runs; i++ {
		if i%checkEvery == 0 {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			default:
			}
		}

		r := flight.Simulate(plane, e.source)
		for _, m := range e.metrics {
			m.Observe(r)
		}
		res.Distances = append(res.Distances, r.Distance)
		res.Runs++
	}

	for _, m := range e.metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	return res, nil
}

// Histogram buckets distances into bins of equal width between the
// smallest and largest value.
func Histogram(distances []float64, bins int) (counts []float64, lo, width float64) {
	if len(distances) == 0 || bins <= 0 {
		return nil, 0, 0
	}
	lo, hi := distances[0], distances[0]
	for _, d := range distances {
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	width = (hi - lo) / float64(bins)
	counts = make([]float64, bins)
	for _, d := range distances {
		i := bins - 1
		if width > 0 {
			i = min(int((d-lo)/width), bins-1)
		}
		counts[i]++
	}
	return counts, lo, width
}
