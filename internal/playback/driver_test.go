package playback_test

import (
	"context"
	"math"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/atomviz/internal/atom"
	"github.com/san-kum/atomviz/internal/logging"
	"github.com/san-kum/atomviz/internal/playback"
	"github.com/san-kum/atomviz/internal/scene"
)

var _ = Describe("Driver", func() {
	var (
		models []atom.Model
		list   *scene.DisplayList
		drv    *playback.Driver
	)

	BeforeEach(func() {
		models = atom.Sequence(rand.New(rand.NewSource(11)))
		list = scene.NewDisplayList()

		var err error
		drv, err = playback.New(models, list, playback.DefaultInterval, logging.Discard())
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("rejects an empty sequence", func() {
			_, err := playback.New(nil, list, time.Second, nil)
			Expect(err).To(MatchError(playback.ErrNoModels))
		})

		It("rejects a missing surface", func() {
			_, err := playback.New(models, nil, time.Second, nil)
			Expect(err).To(MatchError(playback.ErrNoSurface))
		})

		It("rejects a non-positive interval", func() {
			_, err := playback.New(models, list, 0, nil)
			Expect(err).To(MatchError(playback.ErrInterval))
		})

		It("starts on frame 0 with Thomson already drawn", func() {
			Expect(drv.Index()).To(Equal(0))
			Expect(drv.Len()).To(Equal(5))
			Expect(drv.Interval()).To(Equal(3 * time.Second))
			Expect(list.Title).To(Equal("Thomson Model (Plum Pudding)"))
			Expect(list.Bounds).To(Equal(scene.Square(1.5)))
			Expect(list.TicksHidden).To(BeTrue())
		})
	})

	Describe("advancing", func() {
		It("lands on n mod 5 after n advances", func() {
			for n := 1; n <= 17; n++ {
				drv.Advance()
				Expect(drv.Index()).To(Equal(n % 5))
				Expect(list.Title).To(Equal(models[n%5].Title()))
			}
		})

		It("wraps back to frame 0 after five advances", func() {
			for i := 0; i < 5; i++ {
				drv.Advance()
			}
			Expect(drv.Index()).To(Equal(0))
			Expect(drv.Current().Name()).To(Equal("thomson"))
		})

		It("clears the previous frame before drawing the next", func() {
			for i := 0; i < 4; i++ {
				drv.Advance()
			}
			Expect(list.Contours).To(HaveLen(1))

			gen := list.Generation
			drv.Advance()
			Expect(list.Generation).To(Equal(gen + 1))
			Expect(list.Contours).To(BeEmpty())
			Expect(list.Circles).To(BeEmpty())
			Expect(list.Disks).To(HaveLen(1))
			Expect(list.Markers).To(HaveLen(6))
		})
	})

	Describe("end to end", func() {
		It("plays Thomson, Rutherford and loops back to a fresh Thomson", func() {
			first := append([]scene.Marker(nil), list.MarkersColored(scene.Negative)...)
			Expect(first).To(HaveLen(6))

			drv.Advance()
			Expect(list.Title).To(Equal("Rutherford Model (Nuclear Model)"))
			electrons := list.MarkersColored(scene.Negative)
			Expect(electrons).To(HaveLen(6))
			for i, e := range electrons {
				angle := float64(i) * math.Pi / 3
				Expect(e.X).To(BeNumerically("~", math.Cos(angle), 1e-9))
				Expect(e.Y).To(BeNumerically("~", math.Sin(angle), 1e-9))
			}

			for i := 0; i < 4; i++ {
				drv.Advance()
			}
			Expect(drv.Index()).To(Equal(0))
			Expect(list.Title).To(Equal("Thomson Model (Plum Pudding)"))
			Expect(list.Bounds).To(Equal(scene.Square(1.5)))
			Expect(list.MarkersColored(scene.Negative)).NotTo(Equal(first))
		})
	})

	Describe("Elapse", func() {
		It("holds the frame until a full interval has passed", func() {
			Expect(drv.Elapse(2999 * time.Millisecond)).To(BeFalse())
			Expect(drv.Index()).To(Equal(0))

			Expect(drv.Elapse(time.Millisecond)).To(BeTrue())
			Expect(drv.Index()).To(Equal(1))
			Expect(drv.Progress()).To(BeNumerically("~", 0, 1e-9))
		})

		It("skips to the frame a long stall lands on", func() {
			gen := list.Generation
			Expect(drv.Elapse(7 * time.Second)).To(BeTrue())
			Expect(drv.Index()).To(Equal(2))
			Expect(list.Generation).To(Equal(gen + 1))
			Expect(drv.Remaining()).To(Equal(2 * time.Second))
		})
	})

	Describe("Run", func() {
		It("advances once per tick up to the limit", func() {
			ticks := make(chan time.Time, 8)
			for i := 0; i < 8; i++ {
				ticks <- time.Now()
			}

			n, err := drv.Run(context.Background(), ticks, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(7))
			Expect(drv.Index()).To(Equal(2))
		})

		It("stops when the context is canceled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			n, err := drv.Run(ctx, make(chan time.Time), 0)
			Expect(err).To(MatchError(context.Canceled))
			Expect(n).To(Equal(0))
		})

		It("stops when the tick source closes", func() {
			ticks := make(chan time.Time, 2)
			ticks <- time.Now()
			ticks <- time.Now()
			close(ticks)

			n, err := drv.Run(context.Background(), ticks, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(2))
			Expect(drv.Index()).To(Equal(2))
		})
	})
})

var _ = Describe("Timer", func() {
	It("counts whole intervals and carries the remainder", func() {
		t, err := playback.NewTimer(100 * time.Millisecond)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Elapse(50 * time.Millisecond)).To(Equal(0))
		Expect(t.Progress()).To(BeNumerically("~", 0.5, 1e-9))
		Expect(t.Elapse(260 * time.Millisecond)).To(Equal(3))
		Expect(t.Remaining()).To(Equal(90 * time.Millisecond))
	})

	It("ignores non-positive deltas", func() {
		t, err := playback.NewTimer(time.Second)
		Expect(err).NotTo(HaveOccurred())
		Expect(t.Elapse(-time.Second)).To(Equal(0))
		Expect(t.Elapse(0)).To(Equal(0))
		Expect(t.Progress()).To(BeZero())
	})

	It("rejects a non-positive interval", func() {
		for _, interval := range []time.Duration{0, -time.Second} {
			t, err := playback.NewTimer(interval)
			Expect(err).To(MatchError(playback.ErrInterval))
			Expect(t).To(BeNil())
		}
	})
})
