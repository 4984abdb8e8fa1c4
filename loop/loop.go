// Package loop provides a simple poll-update-draw loop.
//
package loop

import (
	"time"
)

// EventProcessor wraps the ProcessEvents method.
//
// It is up to the implementation to either poll events or wait for events.
//
// Graphical applications that need to swap buffers should swap their buffers in
// their ProcessEvents method, before actually processing events.
//
type EventProcessor interface {
	ProcessEvents() (quit bool)
}

// FrameStarter is the interface implemented by any App that wants the time
// stamp at the beginning of each loop iteration.
//
type FrameStarter interface {
	FrameStart(time.Time)
}

type Updater interface {
	EventProcessor
	Update()
	Draw()
}

// Simple runs ProcessEvents, Update and Draw in sequence until ProcessEvents
// requests to quit. The zero value runs uncapped; frame pacing is then left to
// the buffer swap in ProcessEvents (vsync).
//
type Simple struct {
	ticker *time.Ticker
	minFT  time.Duration
}

// MinFrameTime sets the minimum frame time.
//
// If the t value is greater than 0, the frame rate will be clamped
// to time.Second/t.
//
func (l *Simple) MinFrameTime(t time.Duration) {
	if t == l.minFT {
		return
	}
	l.stopTicker()
	l.minFT = t
	if l.minFT > 0 {
		l.ticker = time.NewTicker(l.minFT)
	}
}

func (l *Simple) now() time.Time {
	if l.ticker != nil {
		return <-l.ticker.C
	}
	return time.Now()
}

func (l *Simple) stopTicker() {
	if l.ticker != nil {
		l.ticker.Stop()
		l.ticker = nil
	}
}

// Run runs the loop. It returns the number of frames drawn.
//
func (l *Simple) Run(a Updater) (frames int) {
	fStart, _ := a.(FrameStarter)
	if l.minFT > 0 && l.ticker == nil {
		l.ticker = time.NewTicker(l.minFT)
	}
	for !a.ProcessEvents() {
		now := l.now()
		if fStart != nil {
			fStart.FrameStart(now)
		}
		a.Update()
		a.Draw()
		frames++
	}
	l.stopTicker()
	return frames
}
