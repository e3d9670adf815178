package metrics

import (
	"math"

	"github.com/san-kum/paperplane/internal/flight"
)

// Metric accumulates a statistic over many launches.
type Metric interface {
	Name() string
	Observe(r flight.FlightResult)
	Value() float64
	Reset()
}

// Default returns the metrics reported by batch runs.
func Default() []Metric {
	return []Metric{NewMean(), NewStdDev(), NewMin(), NewMax(), NewWindSpan()}
}

type Mean struct {
	sum     float64
	samples int
}

func NewMean() *Mean { return &Mean{} }

func (m *Mean) Name() string { return "mean" }

func (m *Mean) Observe(r flight.FlightResult) {
	m.sum += r.Distance
	m.samples++
}

func (m *Mean) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *Mean) Reset() {
	m.sum = 0
	m.samples = 0
}

// StdDev is the population standard deviation of distance (Welford).
type StdDev struct {
	n    int
	mean float64
	m2   float64
}

func NewStdDev() *StdDev { return &StdDev{} }

func (s *StdDev) Name() string { return "stddev" }

func (s *StdDev) Observe(r flight.FlightResult) {
	s.n++
	delta := r.Distance - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (r.Distance - s.mean)
}

func (s *StdDev) Value() float64 {
	if s.n == 0 {
		return 0
	}
	return math.Sqrt(s.m2 / float64(s.n))
}

func (s *StdDev) Reset() {
	s.n = 0
	s.mean = 0
	s.m2 = 0
}

type Min struct {
	v    float64
	seen bool
}

func NewMin() *Min { return &Min{} }

func (m *Min) Name() string { return "min" }

func (m *Min) Observe(r flight.FlightResult) {
	if !m.seen || r.Distance < m.v {
		m.v = r.Distance
		m.seen = true
	}
}

func (m *Min) Value() float64 { return m.v }

func (m *Min) Reset() { *m = Min{} }

type Max struct {
	v    float64
	seen bool
}

func NewMax() *Max { return &Max{} }

func (m *Max) Name() string { return "max" }

func (m *Max) Observe(r flight.FlightResult) {
	if !m.seen || r.Distance > m.v {
		m.v = r.Distance
		m.seen = true
	}
}

func (m *Max) Value() float64 { return m.v }

func (m *Max) Reset() { *m = Max{} }

// WindSpan is the largest absolute wind seen; it never exceeds 2.
type WindSpan struct {
	v float64
}

func NewWindSpan() *WindSpan { return &WindSpan{} }

func (w *WindSpan) Name() string { return "wind_span" }

func (w *WindSpan) Observe(r flight.FlightResult) {
	w.v = math.Max(w.v, math.Abs(r.Wind))
}

func (w *WindSpan) Value() float64 { return w.v }

func (w *WindSpan) Reset() { w.v = 0 }
