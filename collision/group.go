package collision

// Group is the gameplay category a collision object belongs to.
type Group uint8

const (
	GroupPlayer Group = iota
	GroupWall
	GroupFood
	GroupExit
	GroupEnemy

	groupCount
)

var groupNames = [groupCount]string{
	GroupPlayer: "player",
	GroupWall:   "wall",
	GroupFood:   "food",
	GroupExit:   "exit",
	GroupEnemy:  "enemy",
}

func (g Group) String() string {
	if !g.Valid() {
		return "unknown"
	}
	return groupNames[g]
}

// Valid reports whether g is one of the declared groups.
func (g Group) Valid() bool {
	return g < groupCount
}
