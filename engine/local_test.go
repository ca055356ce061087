package engine

import (
	"testing"

	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}

// failingAgent fails the test when the engine asks it to move.
type failingAgent struct {
	t *testing.T
}

func (a failingAgent) FindMove(s *game.State, player game.Cell) (searcher.Move, searcher.SearchMetrics, error) {
	a.t.Fatalf("engine asked a blocked player (%c) for a move", player.Marker())
	return searcher.Move{}, searcher.SearchMetrics{}, nil
}

// testState builds a position directly, keeping counts consistent.
func testState(cells map[game.Coord]game.Cell) *game.State {
	s := &game.State{}
	s.Player(game.Dark).Cell = game.Dark
	s.Player(game.Light).Cell = game.Light
	for q, c := range cells {
		s.Board.Set(q.Row, q.Col, c)
		s.Player(c).Count++
	}
	return s
}

func searchAgent(maxPly int, seed uint64) *SearchAgent {
	return NewSearchAgent(searcher.NewMinimax(
		searcher.WithMaxPly(maxPly),
		searcher.WithRand(rand.New(rand.NewSource(seed))),
		searcher.WithMetrics(),
	))
}

func TestRunFullGame(t *testing.T) {
	s := game.NewState()
	e := New(s, searchAgent(2, 1), searchAgent(2, 2))

	observed := 0
	e.SetObserver(func(player game.Cell, move searcher.Move, s *game.State) {
		observed++
	})

	outcome, moves, err := e.Run()
	if err != nil {
		t.Fatalf("expected a clean game, got %v", err)
	}

	if outcome.Turns == 0 {
		t.Fatal("expected at least one turn")
	}
	if observed != outcome.Turns {
		t.Errorf("observer saw %d moves, outcome counted %d turns", observed, outcome.Turns)
	}
	if len(moves) != outcome.Turns {
		t.Errorf("expected %d move metrics, got %d", outcome.Turns, len(moves))
	}

	dark := s.Player(game.Dark).Count
	light := s.Player(game.Light).Count
	if outcome.DarkCount != dark || outcome.LightCount != light {
		t.Errorf("outcome counts %d/%d do not match state %d/%d",
			outcome.DarkCount, outcome.LightCount, dark, light)
	}
	if dark+light > game.BoardArea {
		t.Errorf("impossible disc total %d", dark+light)
	}

	switch {
	case dark > light && outcome.Winner != game.Dark:
		t.Errorf("dark leads %d-%d but winner is %v", dark, light, outcome.Winner)
	case light > dark && outcome.Winner != game.Light:
		t.Errorf("light leads %d-%d but winner is %v", dark, light, outcome.Winner)
	case dark == light && outcome.Winner != game.Empty:
		t.Errorf("counts tied %d-%d but winner is %v", dark, light, outcome.Winner)
	}

	// The game must actually be over: full board, a wiped-out side, or
	// neither side able to move.
	if !s.Full() && dark > 0 && light > 0 &&
		(s.HasLegalMove(game.Dark) || s.HasLegalMove(game.Light)) {
		t.Error("engine stopped while a player could still move")
	}

	for _, mm := range moves {
		if mm.Search.Nodes == 0 {
			t.Errorf("turn %d recorded no search nodes", mm.Turn)
		}
	}
}

func TestRunSingleBlockedPlayerPasses(t *testing.T) {
	// Dark has no capture line anywhere, Light's only move is (0,2),
	// which wipes out Dark's lone disc and ends the game.
	s := testState(map[game.Coord]game.Cell{
		{Row: 0, Col: 0}: game.Light,
		{Row: 0, Col: 1}: game.Dark,
	})
	e := New(s, failingAgent{t}, searchAgent(1, 3))

	outcome, _, err := e.Run()
	if err != nil {
		t.Fatalf("expected a clean game, got %v", err)
	}

	if outcome.Deadlocked {
		t.Error("a single blocked player is a pass, not a deadlock")
	}
	if outcome.Turns != 1 {
		t.Errorf("expected exactly one turn after the pass, got %d", outcome.Turns)
	}
	if outcome.Winner != game.Light {
		t.Errorf("expected light to win, got %v", outcome.Winner)
	}
	if outcome.DarkCount != 0 || outcome.LightCount != 3 {
		t.Errorf("expected counts 0/3, got %d/%d", outcome.DarkCount, outcome.LightCount)
	}
}

func TestRunDeadlock(t *testing.T) {
	// Two separated pairs: neither side has a capture line, so both
	// consecutive turns fail and the game terminates.
	s := testState(map[game.Coord]game.Cell{
		{Row: 0, Col: 0}: game.Dark,
		{Row: 0, Col: 1}: game.Dark,
		{Row: 0, Col: 6}: game.Light,
		{Row: 0, Col: 7}: game.Light,
	})
	e := New(s, failingAgent{t}, failingAgent{t})

	outcome, moves, err := e.Run()
	if err != nil {
		t.Fatalf("expected a clean termination, got %v", err)
	}

	if !outcome.Deadlocked {
		t.Error("expected a deadlock")
	}
	if outcome.Turns != 0 || len(moves) != 0 {
		t.Errorf("expected no turns in a deadlocked start, got %d", outcome.Turns)
	}
	if outcome.Winner != game.Empty {
		t.Errorf("2-2 deadlock should be a draw, got %v", outcome.Winner)
	}
}
