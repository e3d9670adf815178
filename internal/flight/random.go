package flight

import (
	"math/rand"
	"sync"
)

// RandomSource supplies the two independent draws of a launch.
type RandomSource interface {
	// Uniform returns a value in [lo, hi].
	Uniform(lo, hi float64) float64
	// Normal returns a normally distributed value.
	Normal(mean, sd float64) float64
}

// Rand adapts a math/rand generator to RandomSource. It is not safe for
// concurrent use; wrap it with Locked when shared.
type Rand struct {
	r *rand.Rand
}

func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.r.Float64()
}

func (r *Rand) Normal(mean, sd float64) float64 {
	return mean + sd*r.r.NormFloat64()
}

// launchDrawer produces both draws of a launch in one step.
type launchDrawer interface {
	drawLaunch() (wind, noise float64)
}

// drawLaunch draws wind, then noise.
func drawLaunch(rng RandomSource) (wind, noise float64) {
	if d, ok := rng.(launchDrawer); ok {
		return d.drawLaunch()
	}
	return rng.Uniform(WindMin, WindMax), rng.Normal(NoiseMean, NoiseSD)
}

type lockedSource struct {
	mu  sync.Mutex
	src RandomSource
}

// Locked serialises access to src. A launch simulated against it takes
// its wind and noise under a single lock.
func Locked(src RandomSource) RandomSource {
	return &lockedSource{src: src}
}

func (l *lockedSource) drawLaunch() (wind, noise float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return drawLaunch(l.src)
}

func (l *lockedSource) Uniform(lo, hi float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Uniform(lo, hi)
}

func (l *lockedSource) Normal(mean, sd float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Normal(mean, sd)
}

// Fixed returns the same wind and noise on every launch.
type Fixed struct {
	Wind  float64
	Noise float64
}

func (f Fixed) Uniform(lo, hi float64) float64 {
	if f.Wind < lo {
		return lo
	}
	if f.Wind > hi {
		return hi
	}
	return f.Wind
}

func (f Fixed) Normal(mean, sd float64) float64 { return f.Noise }
