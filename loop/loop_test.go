package loop

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeApp struct {
	frames int
	calls  strings.Builder
}

func (a *fakeApp) ProcessEvents() bool {
	a.calls.WriteByte('p')
	return a.frames == 0
}

func (a *fakeApp) Update() { a.calls.WriteByte('u') }

func (a *fakeApp) Draw() {
	a.calls.WriteByte('d')
	a.frames--
}

type startApp struct {
	fakeApp
	starts []time.Time
}

func (a *startApp) FrameStart(t time.Time) { a.starts = append(a.starts, t) }

func TestSimple_Run(t *testing.T) {
	a := &fakeApp{frames: 3}
	var l Simple
	assert.Equal(t, 3, l.Run(a))
	assert.Equal(t, "pudpudpudp", a.calls.String())
}

func TestSimple_quitImmediately(t *testing.T) {
	a := &fakeApp{}
	var l Simple
	assert.Zero(t, l.Run(a))
	assert.Equal(t, "p", a.calls.String())
}

func TestSimple_FrameStart(t *testing.T) {
	a := &startApp{fakeApp: fakeApp{frames: 4}}
	var l Simple
	l.Run(a)
	assert.Len(t, a.starts, 4)
	for i := 1; i < len(a.starts); i++ {
		assert.False(t, a.starts[i].Before(a.starts[i-1]))
	}
}

func TestSimple_MinFrameTime(t *testing.T) {
	const ft = 10 * time.Millisecond
	a := &startApp{fakeApp: fakeApp{frames: 5}}
	var l Simple
	l.MinFrameTime(ft)
	start := time.Now()
	l.Run(a)
	assert.GreaterOrEqual(t, time.Since(start), 4*ft)
	assert.Nil(t, l.ticker, "ticker stopped after Run")

	l.MinFrameTime(0)
	assert.Nil(t, l.ticker)
}
