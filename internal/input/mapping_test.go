package input

import (
	"fmt"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lander/internal/throttle"
)

var unit = Viewport{Width: 1, Height: 1}

var _ = Describe("Map", func() {
	opts := DefaultOptions()

	DescribeTable("arrow keys",
		func(key string, want throttle.Throttle) {
			got, err := Map(KeyEvent{Key: key}, Viewport{}, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]throttle.Throttle{want}))
		},
		Entry("up fires the bottom engine", KeyArrowUp, throttle.Bottom),
		Entry("left", KeyArrowLeft, throttle.Left),
		Entry("right", KeyArrowRight, throttle.Right),
	)

	It("ignores every other key", func() {
		for _, key := range []string{"ArrowDown", "arrowup", "a", " ", "", "Enter", "Escape", "up"} {
			got, err := Map(KeyEvent{Key: key}, unit, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeEmpty(), "key %q", key)
		}
	})

	DescribeTable("touch regions",
		func(x, y float64, want throttle.Throttle) {
			got, err := Map(Touch(x, y), unit, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]throttle.Throttle{want}))
		},
		Entry("top left corner", 0.0, 0.0, throttle.Bottom),
		Entry("top band right", 0.99, 0.29, throttle.Bottom),
		Entry("band edge goes to the halves", 0.1, 0.3, throttle.Left),
		Entry("band edge right half", 0.7, 0.3, throttle.Right),
		Entry("split edge is right", 0.5, 0.8, throttle.Right),
		Entry("just left of split", 0.4999, 0.8, throttle.Left),
		Entry("bottom right corner", 1.0, 1.0, throttle.Right),
	)

	It("maps the whole unit square to exactly one throttle", func() {
		r := rand.New(rand.NewSource(1))
		for i := 0; i < 2000; i++ {
			x, y := r.Float64(), r.Float64()
			got, err := Map(Touch(x, y), unit, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(HaveLen(1))
			switch {
			case y < 0.3:
				Expect(got[0]).To(Equal(throttle.Bottom), fmt.Sprintf("(%v,%v)", x, y))
			case x < 0.5:
				Expect(got[0]).To(Equal(throttle.Left), fmt.Sprintf("(%v,%v)", x, y))
			default:
				Expect(got[0]).To(Equal(throttle.Right), fmt.Sprintf("(%v,%v)", x, y))
			}
		}
	})

	It("normalizes pixels by the viewport", func() {
		vp := Viewport{Width: 800, Height: 600}
		got, err := Map(TouchEvent{Changed: []TouchPoint{{X: 100, Y: 170}, {X: 700, Y: 400}, {X: 100, Y: 400}}}, vp, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal([]throttle.Throttle{throttle.Bottom, throttle.Right, throttle.Left}))
	})

	It("rejects touches against a zero viewport", func() {
		_, err := Map(Touch(10, 10), Viewport{Width: 0, Height: 600}, opts)
		Expect(err).To(MatchError(ErrZeroViewport))
	})

	Context("with the single-touch policy", func() {
		single := DefaultOptions()
		single.Policy = SingleTouch

		It("drops events with several changed touches", func() {
			ev := TouchEvent{Changed: []TouchPoint{{ID: 1, X: 0.1, Y: 0.1}, {ID: 2, X: 0.9, Y: 0.9}}}
			got, err := Map(ev, unit, single)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeEmpty())
		})

		It("maps a lone touch", func() {
			got, err := Map(Touch(0.9, 0.9), unit, single)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]throttle.Throttle{throttle.Right}))
		})
	})

	Context("with the multi-touch policy", func() {
		It("emits one throttle per changed touch, duplicates included", func() {
			ev := TouchEvent{Changed: []TouchPoint{
				{ID: 1, X: 0.1, Y: 0.9},
				{ID: 2, X: 0.2, Y: 0.8},
				{ID: 3, X: 0.5, Y: 0.1},
			}}
			got, err := Map(ev, unit, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal([]throttle.Throttle{throttle.Left, throttle.Left, throttle.Bottom}))
		})

		It("emits nothing for an empty touch list", func() {
			got, err := Map(TouchEvent{}, unit, opts)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeEmpty())
		})
	})

	It("honours a custom keymap and layout", func() {
		km, err := ParseKeymap(map[string]string{"w": "bottom", "a": "left", "d": "right"})
		Expect(err).NotTo(HaveOccurred())
		custom := Options{Keymap: km, Layout: Layout{BottomBand: 0.5, SplitX: 0.25}}

		got, _ := Map(KeyEvent{Key: "w"}, unit, custom)
		Expect(got).To(Equal([]throttle.Throttle{throttle.Bottom}))
		got, _ = Map(KeyEvent{Key: KeyArrowUp}, unit, custom)
		Expect(got).To(BeEmpty())
		got, _ = Map(Touch(0.3, 0.4), unit, custom)
		Expect(got).To(Equal([]throttle.Throttle{throttle.Bottom}))
		got, _ = Map(Touch(0.3, 0.6), unit, custom)
		Expect(got).To(Equal([]throttle.Throttle{throttle.Right}))
	})
})

var _ = Describe("Layout", func() {
	It("validates thresholds", func() {
		Expect(DefaultLayout().Validate()).To(Succeed())
		Expect(Layout{BottomBand: 0, SplitX: 0.5}.Validate()).To(MatchError(ErrInvalidLayout))
		Expect(Layout{BottomBand: 0.3, SplitX: 1}.Validate()).To(MatchError(ErrInvalidLayout))
	})
})

var _ = Describe("Policy", func() {
	DescribeTable("parsing",
		func(in string, want Policy) {
			p, err := ParsePolicy(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(want))
		},
		Entry("multi", "multi", MultiTouch),
		Entry("default", "", MultiTouch),
		Entry("single", "Single", SingleTouch),
	)

	It("rejects unknown names", func() {
		_, err := ParsePolicy("both")
		Expect(err).To(MatchError(ErrUnknownPolicy))
	})
})

var _ = Describe("ParseKeymap", func() {
	It("rejects unknown throttle names", func() {
		_, err := ParseKeymap(map[string]string{"w": "up"})
		Expect(err).To(MatchError(throttle.ErrUnknown))
	})
})
