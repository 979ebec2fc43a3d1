package core

import (
	"context"
	"time"

	"github.com/automoto/barr/components"
	"github.com/charmbracelet/log"
)

// InputSource supplies the controls for each frame of a headless run.
type InputSource interface {
	Controls(frame int) components.Controls
}

// RunStats summarises frames driven by a Loop.
type RunStats struct {
	Frames   int
	Restarts int
	Advances int
	Events   map[components.Event]int
}

// Loop drives a Director at a fixed tick rate with scripted input.
type Loop struct {
	director *Director
	source   InputSource
	tickRate int
	frame    int
	stats    RunStats
	logger   *log.Logger
}

func NewLoop(director *Director, source InputSource, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		director: director,
		source:   source,
		tickRate: tickRate,
		stats:    RunStats{Events: make(map[components.Event]int)},
		logger:   director.logger,
	}
}

// RunFrames steps the director n times as fast as possible, using the tick
// rate only as the simulated frame time.
func (l *Loop) RunFrames(n int) RunStats {
	for i := 0; i < n; i++ {
		l.tick()
	}
	return l.Stats()
}

// Run steps the director once per tick until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	l.logger.Info("loop started", "tps", l.tickRate)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("loop stopped", "frames", l.stats.Frames)
			return ctx.Err()
		case <-ticker.C:
			l.tick()
		}
	}
}

func (l *Loop) tick() FrameResult {
	res := l.director.Step(1/float64(l.tickRate), l.source.Controls(l.frame))
	l.frame++

	l.stats.Frames++
	switch res.Outcome {
	case components.OutcomeRestart:
		l.stats.Restarts++
	case components.OutcomeAdvance:
		l.stats.Advances++
	}
	for _, ev := range res.Events {
		l.stats.Events[ev]++
	}
	return res
}

// Stats returns a copy of the counts so far.
func (l *Loop) Stats() RunStats {
	out := l.stats
	out.Events = make(map[components.Event]int, len(l.stats.Events))
	for k, v := range l.stats.Events {
		out.Events[k] = v
	}
	return out
}

func (l *Loop) Frame() int { return l.frame }
