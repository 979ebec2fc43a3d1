package systems

import (
	"github.com/automoto/barr/components"
	"github.com/yohamta/donburi"
)

// Frame carries one step's inputs and collects what happened during it.
type Frame struct {
	DT       float64
	Controls components.Controls
	Bounce   float64 // restitution against walls
	Outcome  components.Outcome
	Events   []components.Event
}

func (f *Frame) emit(e components.Event) {
	f.Events = append(f.Events, e)
}

// Done reports whether a trigger already ended the frame.
func (f *Frame) Done() bool {
	return f.Outcome != components.OutcomeContinue
}

// System advances one concern of the world by a frame.
type System func(w donburi.World, f *Frame)

// Pipeline is the per-frame order. Trigger order decides which outcome
// wins when several overlaps happen in the same frame.
var Pipeline = []System{
	UpdatePlayer,
	UpdateEnemies,
	UpdateCollisions,
	UpdateEnemyContacts,
	UpdatePickups,
	UpdateGoals,
}

// Run applies systems in order and stops as soon as one ends the frame.
func Run(w donburi.World, f *Frame, systems ...System) {
	for _, s := range systems {
		if f.Done() {
			return
		}
		s(w, f)
	}
}
