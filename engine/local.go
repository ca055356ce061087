package engine

import (
	"fmt"

	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// Outcome summarizes a finished game.
type Outcome struct {
	DarkCount  int
	LightCount int
	Winner     game.Cell // Empty on a draw
	Deadlocked bool      // both players blocked in consecutive turns
	Turns      int
}

// MoveMetrics ties one applied move to the search statistics behind it.
type MoveMetrics struct {
	Turn   int
	Player game.Cell
	Search searcher.SearchMetrics
}

// Observer is called after every applied move, before the turn passes
// to the opponent. The CLI uses it to render the board.
type Observer func(player game.Cell, move searcher.Move, s *game.State)

// Engine drives the turn loop: it checks viability, asks the side's
// agent for a move, applies it, and alternates players until the game
// ends.
type Engine struct {
	State    *game.State
	agents   map[game.Cell]Agent
	observer Observer
}

func New(s *game.State, dark, light Agent) *Engine {
	if dark == nil || light == nil {
		panic("both sides need an agent")
	}
	return &Engine{
		State:  s,
		agents: map[game.Cell]Agent{game.Dark: dark, game.Light: light},
	}
}

// SetObserver registers a post-move callback.
func (e *Engine) SetObserver(observer Observer) {
	e.observer = observer
}

// Run executes the game loop until the board fills, one side loses its
// last piece, or neither side can move in consecutive turns. A single
// blocked player passes; only the second consecutive blocked turn is a
// deadlock. Run returns early with the agent's error when an agent
// gives up (ErrQuit) or produces an illegal move.
func (e *Engine) Run() (Outcome, []MoveMetrics, error) {
	player := game.Dark
	prevCanGo := true
	deadlocked := false
	turns := 0
	var moveMetrics []MoveMetrics

	log.Info().Msgf("%c is starting", player.Marker())

	for turns < meta.MAX_TURNS {
		dark := e.State.Player(game.Dark).Count
		light := e.State.Player(game.Light).Count
		if dark == 0 || light == 0 || e.State.Full() {
			break
		}

		if !e.State.HasLegalMove(player) {
			log.Info().Msgf("%c cannot move", player.Marker())
			if !prevCanGo {
				log.Info().Msg("deadlock: game terminated")
				deadlocked = true
				break
			}
			prevCanGo = false
			player = game.Opponent(player)
			continue
		}
		prevCanGo = true

		move, metrics, err := e.agents[player].FindMove(e.State, player)
		if err != nil {
			return e.outcome(deadlocked, turns), moveMetrics, err
		}

		eff, err := e.State.Apply(move.Row, move.Col, player)
		if err != nil {
			return e.outcome(deadlocked, turns), moveMetrics,
				fmt.Errorf("agent played an illegal move for %c: %w", player.Marker(), err)
		}

		turns++
		moveMetrics = append(moveMetrics, MoveMetrics{Turn: turns, Player: player, Search: metrics})
		log.Info().Msgf("%c placed at (%d,%d), effect %d, flipped %d",
			player.Marker(), move.Row, move.Col, eff.Score, len(eff.Flips))

		if e.observer != nil {
			e.observer(player, move, e.State)
		}

		player = game.Opponent(player)
	}

	return e.outcome(deadlocked, turns), moveMetrics, nil
}

func (e *Engine) outcome(deadlocked bool, turns int) Outcome {
	dark := e.State.Player(game.Dark).Count
	light := e.State.Player(game.Light).Count
	out := Outcome{
		DarkCount:  dark,
		LightCount: light,
		Deadlocked: deadlocked,
		Turns:      turns,
	}
	switch {
	case dark > light:
		out.Winner = game.Dark
	case light > dark:
		out.Winner = game.Light
	}
	return out
}
