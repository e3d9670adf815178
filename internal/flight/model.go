package flight

import "fmt"

const (
	// BaseDistance is the distance before any bonus or perturbation.
	BaseDistance = 5.0

	WindMin   = -2.0
	WindMax   = 2.0
	NoiseMean = 0.0
	NoiseSD   = 1.5
)

// FlightResult is the outcome of a single launch. Distance may be negative.
type FlightResult struct {
	Plane    Plane   `json:"plane"`
	Base     float64 `json:"base"`
	Wind     float64 `json:"wind"`
	Noise    float64 `json:"noise"`
	Distance float64 `json:"distance"`
}

// Base returns BaseDistance plus the bonus of every attribute whose
// selection is optimal.
func Base(p Plane) float64 {
	d := BaseDistance
	for _, a := range Attributes {
		if p.Matches(a) {
			d += a.Bonus()
		}
	}
	return d
}

// MaxBase is the base distance of the optimal plane.
func MaxBase() float64 {
	return Base(OptimalPlane())
}

// Simulate launches p once. Wind is drawn before noise.
func Simulate(p Plane, rng RandomSource) FlightResult {
	base := Base(p)
	wind, noise := drawLaunch(rng)
	return FlightResult{
		Plane:    p,
		Base:     base,
		Wind:     wind,
		Noise:    noise,
		Distance: base + wind + noise,
	}
}

// Readout formats a distance the way it is shown to the user.
func Readout(d float64) string {
	return fmt.Sprintf("%.2f m", d)
}
