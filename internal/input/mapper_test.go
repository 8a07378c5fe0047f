package input

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/san-kum/lander/internal/logger"
	"github.com/san-kum/lander/internal/throttle"
	"github.com/san-kum/lander/internal/world"
)

var _ = Describe("Mapper", func() {
	var (
		rec *world.Recorder
		vp  Viewport
		m   *Mapper
	)

	BeforeEach(func() {
		rec = &world.Recorder{}
		vp = Viewport{Width: 800, Height: 600}
		m = NewMapper(rec, WithViewport(func() Viewport { return vp }))
	})

	It("forwards key down then key up in order", func() {
		Expect(m.Press(KeyEvent{Key: KeyArrowLeft})).To(Equal(1))
		Expect(m.Release(KeyEvent{Key: KeyArrowLeft})).To(Equal(1))

		Expect(rec.Calls()).To(Equal([]world.Call{
			world.Control(throttle.Left, true),
			world.Control(throttle.Left, false),
		}))
	})

	It("pairs touch start and end at the same position", func() {
		ev := Touch(0.2*vp.Width, 0.1*vp.Height)
		m.Press(ev)
		m.Release(ev)

		Expect(rec.Calls()).To(Equal([]world.Call{
			world.Control(throttle.Bottom, true),
			world.Control(throttle.Bottom, false),
		}))
	})

	It("drops unmapped keys silently", func() {
		Expect(m.Press(KeyEvent{Key: "Space"})).To(Equal(0))
		Expect(rec.Calls()).To(BeEmpty())
	})

	It("emits N commands for N touches under the multi-touch policy", func() {
		ev := TouchEvent{Changed: []TouchPoint{{ID: 1, X: 10, Y: 500}, {ID: 2, X: 790, Y: 500}}}
		Expect(m.Press(ev)).To(Equal(2))
		Expect(rec.Controls()).To(Equal([]world.Call{
			world.Control(throttle.Left, true),
			world.Control(throttle.Right, true),
		}))
	})

	It("emits nothing for several touches under the single-touch policy", func() {
		m = NewMapper(rec, WithViewport(func() Viewport { return vp }), WithPolicy(SingleTouch))
		ev := TouchEvent{Changed: []TouchPoint{{ID: 1, X: 10, Y: 500}, {ID: 2, X: 790, Y: 500}}}
		Expect(m.Press(ev)).To(Equal(0))
		Expect(rec.Calls()).To(BeEmpty())
		Expect(m.Policy()).To(Equal(SingleTouch))
	})

	It("notifies observers after the world", func() {
		var seen []Command
		m.AddObserver(ObserverFunc(func(c Command) {
			Expect(rec.Controls()).To(HaveLen(len(seen) + 1))
			seen = append(seen, c)
		}))
		m.Press(KeyEvent{Key: KeyArrowUp})
		m.Release(KeyEvent{Key: KeyArrowUp})
		Expect(seen).To(Equal([]Command{{throttle.Bottom, true}, {throttle.Bottom, false}}))
	})

	It("logs and drops touches before the viewport is known", func() {
		core, logs := observer.New(zapcore.WarnLevel)
		vp = Viewport{}
		m = NewMapper(rec, WithViewport(func() Viewport { return vp }), WithLogger(logger.FromZap(zap.New(core))))

		Expect(m.Press(Touch(1, 1))).To(Equal(0))
		Expect(rec.Calls()).To(BeEmpty())
		Expect(logs.FilterMessage("input dropped").Len()).To(Equal(1))
	})

	It("logs each touch in normalized coordinates", func() {
		core, logs := observer.New(zapcore.DebugLevel)
		m = NewMapper(rec, WithViewport(func() Viewport { return vp }), WithLogger(logger.FromZap(zap.New(core))))

		m.Press(TouchEvent{Changed: []TouchPoint{{ID: 1, X: 400, Y: 150}, {ID: 2, X: 200, Y: 450}}})

		touches := logs.FilterMessage("touch").All()
		Expect(touches).To(HaveLen(2))
		Expect(touches[0].ContextMap()).To(HaveKeyWithValue("x", 0.5))
		Expect(touches[0].ContextMap()).To(HaveKeyWithValue("y", 0.25))
		Expect(touches[1].ContextMap()).To(HaveKeyWithValue("x", 0.25))
		Expect(touches[1].ContextMap()).To(HaveKeyWithValue("y", 0.75))
		Expect(touches[1].ContextMap()).To(HaveKeyWithValue("pressed", true))
	})
})

var _ = Describe("TouchTracker", func() {
	It("reports starts and ends between polls", func() {
		tr := NewTouchTracker()

		started, ended := tr.Update([]TouchPoint{{ID: 2, X: 5, Y: 5}, {ID: 1, X: 1, Y: 1}})
		Expect(started).To(Equal([]TouchPoint{{ID: 1, X: 1, Y: 1}, {ID: 2, X: 5, Y: 5}}))
		Expect(ended).To(BeEmpty())

		started, ended = tr.Update([]TouchPoint{{ID: 2, X: 6, Y: 6}})
		Expect(started).To(BeEmpty())
		Expect(ended).To(Equal([]TouchPoint{{ID: 1, X: 1, Y: 1}}))
		Expect(tr.Active()).To(Equal(1))

		started, ended = tr.Update(nil)
		Expect(started).To(BeEmpty())
		Expect(ended).To(Equal([]TouchPoint{{ID: 2, X: 6, Y: 6}}))
		Expect(tr.Active()).To(BeZero())
	})
})
