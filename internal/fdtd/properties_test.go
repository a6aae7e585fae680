package fdtd_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/emsim/internal/analysis"
	"github.com/san-kum/emsim/internal/fdtd"
)

func newCavity(lo, hi float64, n int, left, right fdtd.Boundary) *fdtd.Solver {
	xe := fdtd.Linspace(lo, hi, n)
	s, err := fdtd.New(xe, left, right)
	Expect(err).NotTo(HaveOccurred())
	return s
}

func setPulse(s *fdtd.Solver, center, sigma float64) {
	ic := fdtd.Sample(s.Grid().XE(), fdtd.GaussianPulse(center, sigma))
	Expect(s.SetInitialCondition(ic)).To(Succeed())
}

func maxAbs(xs []float64) float64 {
	m := 0.0
	for _, x := range xs {
		if a := math.Abs(x); a > m {
			m = a
		}
	}
	return m
}

var _ = Describe("Solver", func() {
	Describe("PEC boundaries", func() {
		It("pins both edge nodes to exactly zero every step", func() {
			s := newCavity(0, 10, 101, fdtd.PEC, fdtd.PEC)
			setPulse(s, 5, 0.5)
			dt := 0.5 * s.Dx()

			for i := 0; i < 300; i++ {
				Expect(s.Step(dt)).To(Succeed())
				e := s.E()
				Expect(e[0]).To(Equal(0.0))
				Expect(e[len(e)-1]).To(Equal(0.0))
			}
		})
	})

	Describe("lossless cavity", func() {
		It("conserves the leapfrog-paired energy estimate", func() {
			s := newCavity(0, 40, 401, fdtd.PEC, fdtd.PEC)
			setPulse(s, 20, 2.0)
			// The hOld*h pairing carries an O(dt) ripple, so a small
			// fraction of the Courant limit is needed to sit inside
			// the 1e-3 band.
			dt := 0.03 * s.Dx()

			_, err := s.RunUntil(40, dt)
			Expect(err).NotTo(HaveOccurred())

			energy := s.Energy()
			Expect(len(energy)).To(BeNumerically(">", 1000))

			e0 := energy[0]
			Expect(e0).To(BeNumerically(">", 0))
			for _, e := range energy {
				Expect(math.Abs(e-e0) / e0).To(BeNumerically("<", 1e-3))
			}
		})

		It("stays bounded over 1000+ steps at half the Courant limit", func() {
			s := newCavity(0, 10, 501, fdtd.PEC, fdtd.PEC)
			setPulse(s, 5, 0.5)
			dt := 0.5 * s.Dx() / fdtd.C0

			peak0 := maxAbs(s.E())
			for i := 0; i < 1200; i++ {
				Expect(s.Step(dt)).To(Succeed())
			}
			Expect(maxAbs(s.E())).To(BeNumerically("<", 5*peak0))
		})
	})

	Describe("periodic boundaries", func() {
		It("wraps the edges from the opposite interior nodes exactly", func() {
			s := newCavity(0, 10, 101, fdtd.Periodic, fdtd.Periodic)
			setPulse(s, 3, 0.5)
			dt := 0.5 * s.Dx()

			for i := 0; i < 400; i++ {
				Expect(s.Step(dt)).To(Succeed())
				e := s.E()
				n := len(e)
				Expect(e[0]).To(Equal(e[n-2]))
				Expect(e[n-1]).To(Equal(e[1]))
			}
		})
	})

	Describe("dispersive medium", func() {
		It("keeps the auxiliary currents exactly zero without excitation", func() {
			s := newCavity(0, 10, 101, fdtd.PEC, fdtd.PEC)
			dt := 0.5 * s.Dx()
			Expect(s.SetMaterialRegions([]fdtd.MaterialRegion{
				{Start: 3, End: 7, EpsInf: 2.0, Cond: 0.1},
			}, dt)).To(Succeed())

			for i := 0; i < 200; i++ {
				Expect(s.Step(dt)).To(Succeed())
			}

			for _, jp := range s.AuxiliaryCurrents() {
				for _, j := range jp {
					Expect(j).To(Equal(complex(0, 0)))
				}
			}
			Expect(maxAbs(s.E())).To(Equal(0.0))
		})

		It("absorbs a pulse crossing the slab without instability", func() {
			s := newCavity(0, 10, 501, fdtd.PEC, fdtd.PEC)
			setPulse(s, 3, 0.5)
			dt := 0.5 * s.Dx()
			Expect(s.SetMaterialRegions([]fdtd.MaterialRegion{
				{Start: 6, End: 8, EpsInf: 2.0},
			}, dt)).To(Succeed())

			peak0 := maxAbs(s.E())
			for i := 0; i < 3000; i++ {
				Expect(s.Step(dt)).To(Succeed())
				Expect(maxAbs(s.E())).To(BeNumerically("<", 2*peak0))
			}
			// The slab is lossy across the pulse band, so repeated
			// passes drain the cavity.
			Expect(maxAbs(s.E())).To(BeNumerically("<", 0.5*peak0))
		})
	})

	Describe("total-field source", func() {
		It("is additive: a zero waveform changes nothing", func() {
			plain := newCavity(0, 10, 201, fdtd.PEC, fdtd.PEC)
			setPulse(plain, 5, 0.5)

			sourced := newCavity(0, 10, 201, fdtd.PEC, fdtd.PEC)
			setPulse(sourced, 5, 0.5)
			Expect(sourced.AddTotalField(3.0, func(x, t float64) float64 { return 0 })).To(Succeed())

			dt := 0.5 * plain.Dx()
			for i := 0; i < 300; i++ {
				Expect(plain.Step(dt)).To(Succeed())
				Expect(sourced.Step(dt)).To(Succeed())
				Expect(sourced.E()).To(Equal(plain.E()))
				Expect(sourced.H()).To(Equal(plain.H()))
			}
		})
	})

	Describe("two-medium interface", func() {
		It("reproduces the Fresnel reflection and transmission amplitudes", func() {
			const (
				eps2     = 2.0
				iface    = 26.0
				pulseAmp = 0.5 // an E-only pulse splits into two half-amplitude waves
				pulsePos = 18.0
				pulseSig = 0.5
			)
			s := newCavity(0, 40, 2001, fdtd.PEC, fdtd.PEC)
			s.SetPermittivityRegions([]fdtd.Range{{Start: iface, End: 41, Value: eps2}})
			setPulse(s, pulsePos, pulseSig)

			dt := 0.5 * s.Dx()
			_, err := s.RunUntil(15, dt)
			Expect(err).NotTo(HaveOccurred())

			r, tr := analysis.FresnelCoefficients(1.0, eps2)

			xe := s.Grid().XE()
			e := s.E()
			var reflected, transmitted float64
			for i, x := range xe {
				a := math.Abs(e[i])
				switch {
				case x > 10 && x < iface && a > reflected:
					reflected = a
				case x > iface+0.5 && a > transmitted:
					transmitted = a
				}
			}

			Expect(reflected / pulseAmp).To(BeNumerically("~", math.Abs(r), 0.02))
			Expect(transmitted / pulseAmp).To(BeNumerically("~", tr, 0.03))
		})
	})

	Describe("Mur absorbing boundaries", func() {
		It("leave far less residual energy than full PEC reflection", func() {
			run := func(b fdtd.Boundary) float64 {
				s := newCavity(0, 10, 501, b, b)
				setPulse(s, 5, 0.5)
				_, err := s.RunUntil(15, 0.5*s.Dx())
				Expect(err).NotTo(HaveOccurred())
				energy := s.Energy()
				return energy[len(energy)-1]
			}

			murResidual := run(fdtd.Mur)
			pecResidual := run(fdtd.PEC)

			Expect(pecResidual).To(BeNumerically(">", 0))
			Expect(murResidual).To(BeNumerically("<", 0.05*pecResidual))
		})
	})
})
