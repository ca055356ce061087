package game

// Player tracks one side's live piece count. The two records live inside
// State and are mutated in place by apply/undo for the game's duration.
type Player struct {
	Cell  Cell
	Count int
}

// Opponent returns the other side. The two sides form a fixed pair, so
// the opponent is a lookup rather than a stored back-reference.
func Opponent(c Cell) Cell {
	if c == Dark {
		return Light
	}
	return Dark
}
