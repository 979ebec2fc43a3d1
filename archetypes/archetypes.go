package archetypes

import (
	"github.com/automoto/barr/components"
	"github.com/automoto/barr/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Input,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Physics,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
