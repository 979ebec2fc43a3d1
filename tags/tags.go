package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Wall   = donburi.NewTag().SetName("Wall")
	Pickup = donburi.NewTag().SetName("Pickup")
	Goal   = donburi.NewTag().SetName("Goal")
)

// Resolv tags for broadphase queries
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvPickup = "pickup"
	ResolvGoal   = "goal"
	ResolvQuery  = "query"
)
