package game

// State is the mutable game session: the board plus both players'
// records. The searcher and the effect calculator mutate it in place
// and undo their mutations, so a single State serves an entire game.
type State struct {
	Board   Board
	players [2]Player
}

// NewState returns the standard opening position: Dark at (3,3) and
// (4,4), Light at (3,4) and (4,3), all other cells empty.
func NewState() *State {
	s := &State{}
	s.players[0] = Player{Cell: Dark, Count: 2}
	s.players[1] = Player{Cell: Light, Count: 2}
	s.Board.Set(3, 3, Dark)
	s.Board.Set(4, 4, Dark)
	s.Board.Set(3, 4, Light)
	s.Board.Set(4, 3, Light)
	return s
}

// Player returns the record for the given side.
func (s *State) Player(c Cell) *Player {
	if c == Dark {
		return &s.players[0]
	}
	return &s.players[1]
}

// Occupied returns the number of non-empty cells.
func (s *State) Occupied() int {
	return s.players[0].Count + s.players[1].Count
}

// Full reports whether no empty cells remain.
func (s *State) Full() bool {
	return s.Occupied() == BoardArea
}

// Copy returns an independent snapshot of the state.
func (s *State) Copy() *State {
	dup := *s
	return &dup
}
