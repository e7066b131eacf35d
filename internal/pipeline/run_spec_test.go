package pipeline

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbspin/internal/dynamo"
	"github.com/san-kum/orbspin/internal/vec"
)

var _ = Describe("Run", func() {
	var (
		fx   fixture
		opts Options
	)

	BeforeEach(func() {
		fx = defaultFixture()
		opts = DefaultOptions()
	})

	run := func() *Result {
		res, err := Run(context.Background(), memSource{coll: fx.build()}, opts)
		Expect(err).NotTo(HaveOccurred())
		return res
	}

	Context("with a diag(3,2,1) body spinning about x", func() {
		BeforeEach(func() {
			fx.inertia = dynamo.Inertia{Ixx: 3, Iyy: 2, Izz: 1}
			fx.omega = vec.New(1.5, 0, 0)
		})

		It("finds the max axis along x and zero non-principal angle", func() {
			res := run()
			Expect(res.Tilts.SpinMax[0]).To(BeNumerically("~", 0, 1e-9))
			Expect(res.Tilt[0]).To(BeNumerically("~", 0, 1e-9))
			Expect(res.ThetaEu[0]).To(BeNumerically("~", math.Pi/2, 1e-9))
		})

		It("reports ordered moments and asphericity", func() {
			res := run()
			Expect(res.Moments.I3).To(BeNumerically("~", 3, 1e-12))
			Expect(res.Moments.I2).To(BeNumerically("~", 2, 1e-12))
			Expect(res.Moments.I1).To(BeNumerically("~", 1, 1e-12))
			Expect(res.Asphericity.Last.Gamma).To(BeNumerically("~", 1.0/3, 1e-12))
			Expect(res.Asphericity.Last.QEff).To(BeNumerically("~", 0.5, 1e-12))
			Expect(res.Asphericity.First).To(Equal(res.Asphericity.Last))
		})

		It("keeps the spin rate identity at every sample", func() {
			res := run()
			for i := range res.Time {
				Expect(res.Tilts.GDot[i] + res.Tilts.LDot[i]).To(BeNumerically("~", res.Tilts.Lambda1Dot[i], 1e-12))
			}
		})

		It("leaves the obliquity of a spin in the orbit plane at 90 degrees", func() {
			res := run()
			Expect(res.Obliquity).To(HaveEach(BeNumerically("~", 90, 1e-9)))
		})
	})

	Context("with axis tracking", func() {
		BeforeEach(func() {
			fx.inertia = dynamo.Inertia{Ixx: 1, Iyy: 2, Izz: 3, Ixy: 0.1}
			opts.TrackAxes = true
		})

		It("produces a continuous orientation for a constant tensor", func() {
			res := run()
			Expect(res.PhiEu).To(HaveEach(BeNumerically("~", res.PhiEu[0], 1e-12)))
			Expect(res.BPhiEu).To(HaveEach(BeNumerically("~", res.BPhiEu[0], 1e-12)))
		})

		It("does not change the folded tilts", func() {
			tracked := run()
			opts.TrackAxes = false
			plain := run()
			Expect(tracked.Tilt).To(Equal(plain.Tilt))
		})
	})

	Context("with more output steps than the point cap", func() {
		BeforeEach(func() {
			fx.steps = 900
			opts.MaxPoints = 100
		})

		It("samples every ninth step", func() {
			res := run()
			Expect(res.Stride).To(Equal(9))
			Expect(res.Time).To(HaveLen(100))
			Expect(res.Elements[1]).To(HaveLen(100))
			Expect(res.Time[1]).To(BeNumerically("~", 9*fx.dt, 1e-12))
		})
	})
})
