package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"othello/game"
	"othello/searcher"
)

// ErrQuit reports that the human resigned the session.
var ErrQuit = errors.New("player quit")

// HumanAgent reads moves from an interactive stream. Besides "row,col"
// coordinates it accepts h for a searcher-backed suggestion and q to
// quit. Invalid input re-prompts; the agent only returns moves the
// effect calculator will accept.
type HumanAgent struct {
	in      *bufio.Scanner
	out     io.Writer
	suggest *searcher.Minimax
}

func NewHumanAgent(in *bufio.Scanner, out io.Writer, suggest *searcher.Minimax) *HumanAgent {
	return &HumanAgent{in: in, out: out, suggest: suggest}
}

func (a *HumanAgent) FindMove(s *game.State, player game.Cell) (searcher.Move, searcher.SearchMetrics, error) {
	for {
		fmt.Fprintf(a.out, "%c: ", player.Marker())
		if !a.in.Scan() {
			// EOF counts as quitting.
			return searcher.Move{}, searcher.SearchMetrics{}, ErrQuit
		}
		input := strings.TrimSpace(a.in.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "q":
			return searcher.Move{}, searcher.SearchMetrics{}, ErrQuit
		case "h":
			a.printSuggestion(s, player)
			continue
		}

		var row, col int
		if _, err := fmt.Sscanf(input, "%d,%d", &row, &col); err != nil {
			fmt.Fprintln(a.out, "enter row,column (comma-separated), h for a hint, or q to quit")
			continue
		}
		if !game.InBounds(row, col) {
			fmt.Fprintln(a.out, "invalid coordinates; re-enter:")
			continue
		}
		if cell, _ := s.Board.Get(row, col); cell != game.Empty {
			fmt.Fprintln(a.out, "that position is already occupied; try again:")
			continue
		}
		if !s.IsLegal(row, col, player) {
			fmt.Fprintln(a.out, "zero-yield move; try again:")
			continue
		}
		return searcher.Move{Row: row, Col: col}, searcher.SearchMetrics{}, nil
	}
}

func (a *HumanAgent) printSuggestion(s *game.State, player game.Cell) {
	chain, _, err := a.suggest.FindBestMove(s, player)
	if err != nil {
		fmt.Fprintln(a.out, "no move to suggest")
		return
	}
	fmt.Fprintf(a.out, "suggest (%d,%d) with an effect of %d\n", chain[0].Row, chain[0].Col, chain[0].Score)
}
