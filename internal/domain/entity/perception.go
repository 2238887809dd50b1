package entity

// Proximity buckets the horizontal distance between an enemy and the player
type Proximity string

const (
	ProximityClose  Proximity = "close"
	ProximityMedium Proximity = "medium"
	ProximityFar    Proximity = "far"
)

// BucketProximity returns close below near, far at or beyond far, medium otherwise
func BucketProximity(distance, near, far float64) Proximity {
	if distance < 0 {
		distance = -distance
	}
	switch {
	case distance < near:
		return ProximityClose
	case distance < far:
		return ProximityMedium
	default:
		return ProximityFar
	}
}

// PlayerAction summarizes what the player is doing right now
type PlayerAction string

const (
	ActionIdle      PlayerAction = "idle"
	ActionMoving    PlayerAction = "moving"
	ActionAttacking PlayerAction = "attacking"
)

// ClassifyAction returns attacking over moving over idle
func ClassifyAction(p *Body) PlayerAction {
	switch {
	case p.Attacking:
		return ActionAttacking
	case p.VX != 0:
		return ActionMoving
	default:
		return ActionIdle
	}
}

// BehaviorQuery is the observation sent to a behavior classifier
type BehaviorQuery struct {
	Proximity    Proximity    `json:"playerProximity"`
	PlayerAction PlayerAction `json:"playerAction"`
	EnemyHealth  int          `json:"enemyHealth"`
}

// BehaviorVerdict is a classifier's answer. Behavior is an untrusted label.
type BehaviorVerdict struct {
	Behavior  string `json:"behavior"`
	Reasoning string `json:"reasoning"`
}

// FallbackReasoning accompanies the patrol verdict used when classification fails
const FallbackReasoning = "Fell back to default due to an error."

// FallbackVerdict is substituted for any failed classification
func FallbackVerdict() BehaviorVerdict {
	return BehaviorVerdict{Behavior: BehaviorPatrol.String(), Reasoning: FallbackReasoning}
}
