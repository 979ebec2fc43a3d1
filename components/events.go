package components

// Outcome is what a simulation step asks of the level director.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeRestart
	OutcomeAdvance
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRestart:
		return "restart"
	case OutcomeAdvance:
		return "advance"
	default:
		return "continue"
	}
}

// Event is something noteworthy that happened during a step. Hosts use
// events for sounds and the HUD; the simulation never reads them back.
type Event int

const (
	EventJumped Event = iota
	EventPickupCollected
	EventDeliveryRejected
	EventGoalReached
	EventEnemyContact
)

func (e Event) String() string {
	switch e {
	case EventJumped:
		return "jumped"
	case EventPickupCollected:
		return "pickup"
	case EventDeliveryRejected:
		return "rejected"
	case EventGoalReached:
		return "goal"
	case EventEnemyContact:
		return "enemy"
	default:
		return "unknown"
	}
}
