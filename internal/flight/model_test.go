package flight_test

import (
	"errors"
	"math"
	"sort"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/paperplane/internal/flight"
)

var _ = Describe("Base", func() {
	It("is 24 when every attribute is optimal", func() {
		p, err := flight.ParsePlane("Long", "Medium", "Delta", "Glossy", "Normal")
		Expect(err).NotTo(HaveOccurred())
		Expect(flight.Base(p)).To(Equal(24.0))
		Expect(flight.MaxBase()).To(Equal(24.0))
	})

	It("is 5 when no attribute is optimal", func() {
		p, err := flight.ParsePlane("Short", "Long", "Arrow", "Recycled", "Humid")
		Expect(err).NotTo(HaveOccurred())
		Expect(flight.Base(p)).To(Equal(5.0))
	})

	DescribeTable("adds exactly one bonus per matching attribute",
		func(attr flight.Attribute, bonus float64) {
			p := flight.Plane{Wing: "Short", Body: "Short", Shape: "Arrow", Material: "Regular", Humidity: "Dry"}
			p.Set(attr, attr.Optimal())
			Expect(flight.Base(p)).To(Equal(flight.BaseDistance + bonus))
		},
		Entry("wing", flight.WingLength, 5.0),
		Entry("body", flight.BodyLength, 4.0),
		Entry("shape", flight.Shape, 5.0),
		Entry("material", flight.Material, 3.0),
		Entry("humidity", flight.Humidity, 2.0),
	)

	It("equals 5 plus the matching bonuses for every combination", func() {
		var visit func(i int, p flight.Plane)
		count := 0
		visit = func(i int, p flight.Plane) {
			if i == len(flight.Attributes) {
				want := flight.BaseDistance
				for _, a := range flight.Attributes {
					if p.Get(a) == a.Optimal() {
						want += a.Bonus()
					}
				}
				Expect(flight.Base(p)).To(Equal(want))
				Expect(flight.Base(p)).To(BeNumerically(">=", 5.0))
				Expect(flight.Base(p)).To(BeNumerically("<=", 24.0))
				count++
				return
			}
			a := flight.Attributes[i]
			for _, v := range a.Options() {
				p.Set(a, v)
				visit(i+1, p)
			}
		}
		visit(0, flight.Plane{})
		Expect(count).To(Equal(243))
	})
})

var _ = Describe("Simulate", func() {
	It("adds wind and noise from the source", func() {
		res := flight.Simulate(flight.OptimalPlane(), flight.Fixed{Wind: -1.5, Noise: 0.25})
		Expect(res.Base).To(Equal(24.0))
		Expect(res.Wind).To(Equal(-1.5))
		Expect(res.Noise).To(Equal(0.25))
		Expect(res.Distance).To(BeNumerically("~", 22.75, 1e-12))
	})

	It("does not clamp negative distances", func() {
		worst, err := flight.ParsePlane("Short", "Long", "Arrow", "Recycled", "Humid")
		Expect(err).NotTo(HaveOccurred())
		res := flight.Simulate(worst, flight.Fixed{Wind: -2, Noise: -4})
		Expect(res.Base).To(Equal(5.0))
		Expect(res.Distance).To(BeNumerically("<", 0))
		Expect(res.Distance).To(BeNumerically("~", -1.0, 1e-12))
		Expect(flight.Readout(res.Distance)).To(Equal("-1.00 m"))
	})

	It("keeps wind within [-2, 2]", func() {
		rng := flight.NewRand(7)
		for i := 0; i < 5000; i++ {
			res := flight.Simulate(flight.DefaultPlane(), rng)
			Expect(res.Wind).To(BeNumerically(">=", flight.WindMin))
			Expect(res.Wind).To(BeNumerically("<=", flight.WindMax))
		}
	})

	It("averages to the base distance over many launches", func() {
		rng := flight.NewRand(1)
		p := flight.OptimalPlane()
		const n = 20000
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += flight.Simulate(p, rng).Distance
		}
		Expect(sum / n).To(BeNumerically("~", 24.0, 0.1))
	})

	It("is reproducible for a fixed seed", func() {
		a := flight.Simulate(flight.OptimalPlane(), flight.NewRand(99))
		b := flight.Simulate(flight.OptimalPlane(), flight.NewRand(99))
		Expect(a).To(Equal(b))
	})

	It("keeps each launch's draws together on a shared locked source", func() {
		type draw struct{ wind, noise float64 }
		const n = 200

		seq := flight.NewRand(5)
		want := make([]draw, n)
		for i := range want {
			r := flight.Simulate(flight.OptimalPlane(), seq)
			want[i] = draw{r.Wind, r.Noise}
		}

		shared := flight.Locked(flight.NewRand(5))
		got := make([]draw, n)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				r := flight.Simulate(flight.OptimalPlane(), shared)
				got[i] = draw{r.Wind, r.Noise}
			}(i)
		}
		wg.Wait()

		byWind := func(d []draw) func(i, j int) bool {
			return func(i, j int) bool { return d[i].wind < d[j].wind }
		}
		sort.Slice(want, byWind(want))
		sort.Slice(got, byWind(got))
		Expect(got).To(Equal(want))
	})

	It("draws noise with a standard deviation near 1.5", func() {
		rng := flight.NewRand(3)
		const n = 20000
		var sum, sumSq float64
		for i := 0; i < n; i++ {
			v := rng.Normal(flight.NoiseMean, flight.NoiseSD)
			sum += v
			sumSq += v * v
		}
		mean := sum / n
		sd := math.Sqrt(sumSq/n - mean*mean)
		Expect(mean).To(BeNumerically("~", 0, 0.05))
		Expect(sd).To(BeNumerically("~", 1.5, 0.05))
	})
})

var _ = Describe("ParsePlane", func() {
	It("canonicalises case", func() {
		p, err := flight.ParsePlane("long", "MEDIUM", " delta ", "glossy", "Normal")
		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(flight.OptimalPlane()))
	})

	It("rejects values outside the options", func() {
		_, err := flight.ParsePlane("Huge", "Medium", "Delta", "Glossy", "Normal")
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, flight.ErrUnknownValue)).To(BeTrue())

		var ve *flight.ValueError
		Expect(errors.As(err, &ve)).To(BeTrue())
		Expect(ve.Attribute).To(Equal(flight.WingLength))
		Expect(ve.Value).To(Equal("Huge"))
	})

	It("rejects empty selections", func() {
		_, err := flight.ParsePlane("Long", "", "Delta", "Glossy", "Normal")
		Expect(errors.Is(err, flight.ErrUnknownValue)).To(BeTrue())
	})
})
