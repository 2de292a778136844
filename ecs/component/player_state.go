package component

// PlayerState is the player's high level activity.
type PlayerState uint8

const (
	PlayerIdle PlayerState = iota
	PlayerWalking
	PlayerAttacking
	PlayerClimbing
	PlayerCrouching
	PlayerExiting
)

var playerStateNames = [...]string{
	PlayerIdle:      "idle",
	PlayerWalking:   "walking",
	PlayerAttacking: "attacking",
	PlayerClimbing:  "climbing",
	PlayerCrouching: "crouching",
	PlayerExiting:   "exiting",
}

func (s PlayerState) String() string {
	if int(s) >= len(playerStateNames) {
		return "unknown"
	}
	return playerStateNames[s]
}
