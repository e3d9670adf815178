// Package flight models the distance a paper airplane travels.
//
// A [Plane] is five categorical choices, one per [Attribute]. Each choice
// that matches the optimal condition adds a fixed bonus to the base
// distance; a launch then adds two random perturbations:
//
//   - wind: uniform in [-2, 2]
//   - noise: normal with mean 0 and standard deviation 1.5
//
// Randomness is injected through [RandomSource] so callers can seed it or
// replace it with a stub.
//
// # Example
//
//	p, _ := flight.ParsePlane("Long", "Medium", "Delta", "Glossy", "Normal")
//	res := flight.Simulate(p, flight.NewRand(42))
//	fmt.Println(flight.Readout(res.Distance))
package flight
