package systems

import (
	"github.com/automoto/barr/components"
	"github.com/automoto/barr/tags"
	"github.com/yohamta/donburi"
)

// UpdatePickups lets an empty-handed player take the first pickup it touches.
// A player already carrying passes through other pickups.
func UpdatePickups(w donburi.World, f *Frame) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	playerRect := components.Object.Get(playerEntry).Rect()

	var collected *donburi.Entry
	tags.Pickup.Each(w, func(e *donburi.Entry) {
		if player.Carrying {
			return
		}
		if components.Object.Get(e).Rect().Intersects(playerRect) {
			player.Carrying = true
			collected = e
		}
	})

	if collected != nil {
		removeEntry(w, collected)
		f.emit(components.EventPickupCollected)
	}
}

// UpdateGoals handles deliveries. Touching a goal always empties the
// player's hands; the level only advances once no pickups are left.
func UpdateGoals(w donburi.World, f *Frame) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	playerRect := components.Object.Get(playerEntry).Rect()

	tags.Goal.Each(w, func(e *donburi.Entry) {
		if f.Done() || !components.Object.Get(e).Rect().Intersects(playerRect) {
			return
		}
		player.Carrying = false
		if RemainingPickups(w) > 0 {
			f.emit(components.EventDeliveryRejected)
			return
		}
		f.Outcome = components.OutcomeAdvance
		f.emit(components.EventGoalReached)
	})
}

// RemainingPickups counts pickups not yet collected.
func RemainingPickups(w donburi.World) int {
	n := 0
	tags.Pickup.Each(w, func(*donburi.Entry) {
		n++
	})
	return n
}

// removeEntry drops an entity and its collision object.
func removeEntry(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
