// Package core runs levels headlessly: a Session simulates one level
// attempt, a Director sequences levels and a Loop drives the director at a
// fixed tick rate.
package core

import (
	"github.com/automoto/barr/components"
	cfg "github.com/automoto/barr/config"
	"github.com/automoto/barr/shared/gamemath"
	"github.com/automoto/barr/shared/leveldata"
	"github.com/automoto/barr/systems"
	"github.com/automoto/barr/systems/factory"
	"github.com/automoto/barr/tags"
	"github.com/yohamta/donburi"
)

// FrameResult reports what one step did.
type FrameResult struct {
	Outcome components.Outcome
	Events  []components.Event
	// Level is the level index in play once the step has been applied.
	Level int
}

// Has reports whether the step raised ev.
func (r FrameResult) Has(ev components.Event) bool {
	for _, e := range r.Events {
		if e == ev {
			return true
		}
	}
	return false
}

// Session owns every live entity of one level attempt.
type Session struct {
	level  *leveldata.Level
	index  int
	conf   *cfg.Config
	world  donburi.World
	player *donburi.Entry
	frames int
}

func NewSession(lvl *leveldata.Level, index int, conf *cfg.Config) *Session {
	s := &Session{level: lvl, index: index, conf: conf}
	s.Reset()
	return s
}

// Reset discards every live entity and rebuilds the level from its parsed
// description.
func (s *Session) Reset() {
	s.world = donburi.NewWorld()
	s.player = factory.BuildLevel(s.world, s.level, s.index, s.conf)
	s.frames = 0
}

// Step advances the attempt by dt seconds. Negative dt counts as zero and
// dt is capped by physics.max_step when that is set.
func (s *Session) Step(dt float64, in components.Controls) FrameResult {
	if dt < 0 {
		dt = 0
	}
	if limit := s.conf.Physics.MaxStep; limit > 0 && dt > limit {
		dt = limit
	}

	f := &systems.Frame{DT: dt, Controls: in, Bounce: s.conf.Physics.Bounce}
	systems.Run(s.world, f, systems.Pipeline...)
	s.frames++

	return FrameResult{Outcome: f.Outcome, Events: f.Events, Level: s.index}
}

func (s *Session) World() donburi.World { return s.world }
func (s *Session) Level() *leveldata.Level { return s.level }
func (s *Session) Index() int { return s.index }
func (s *Session) Frames() int { return s.frames }
func (s *Session) Config() *cfg.Config { return s.conf }
func (s *Session) RemainingPickups() int { return systems.RemainingPickups(s.world) }
func (s *Session) PlayerEntry() *donburi.Entry { return s.player }

// Actor is a read-only view of a moving entity.
type Actor struct {
	Rect     gamemath.Rect
	Velocity gamemath.Vector
	Facing   gamemath.Facing
}

// Snapshot is everything a renderer needs to draw one frame.
type Snapshot struct {
	Level    int
	Name     string
	Bounds   gamemath.Rect
	Walls    []gamemath.Rect
	Goals    []gamemath.Rect
	Pickups  []gamemath.Rect
	Enemies  []Actor
	Player   Actor
	Carrying bool
	Grounded bool
}

func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Level:  s.index,
		Name:   s.level.Name,
		Bounds: s.level.Bounds(),
		Walls:  s.level.Walls,
		Goals:  s.level.Goals,
	}

	tags.Pickup.Each(s.world, func(e *donburi.Entry) {
		snap.Pickups = append(snap.Pickups, components.Object.Get(e).Rect())
	})
	tags.Enemy.Each(s.world, func(e *donburi.Entry) {
		snap.Enemies = append(snap.Enemies, Actor{
			Rect:     components.Object.Get(e).Rect(),
			Velocity: components.Physics.Get(e).Velocity,
			Facing:   components.Enemy.Get(e).Facing,
		})
	})

	player := components.Player.Get(s.player)
	rect := components.Object.Get(s.player).Rect()
	snap.Player = Actor{
		Rect:     rect,
		Velocity: components.Physics.Get(s.player).Velocity,
		Facing:   player.Facing,
	}
	snap.Carrying = player.Carrying
	snap.Grounded = systems.IsGrounded(s.world, rect, player.Tuning.GroundProbe)

	return snap
}
