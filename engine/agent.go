package engine

import (
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// Agent chooses the next placement for one side. The engine only asks
// once it has verified the side has at least one legal move.
type Agent interface {
	// FindMove returns the move to play for player on s, plus search
	// metrics when the agent ran a search.
	FindMove(s *game.State, player game.Cell) (searcher.Move, searcher.SearchMetrics, error)
}

// SearchAgent plays engine-controlled turns via the minimax searcher.
type SearchAgent struct {
	minimax *searcher.Minimax
}

func NewSearchAgent(m *searcher.Minimax) *SearchAgent {
	return &SearchAgent{minimax: m}
}

func (a *SearchAgent) FindMove(s *game.State, player game.Cell) (searcher.Move, searcher.SearchMetrics, error) {
	chain, metrics, err := a.minimax.FindBestMove(s, player)
	if err != nil {
		return searcher.Move{}, metrics, err
	}

	// The chain alternates movers from the root player downward.
	mover := player
	for _, mv := range chain {
		log.Debug().Msgf("expected line: %c at (%d,%d)", mover.Marker(), mv.Row, mv.Col)
		mover = game.Opponent(mover)
	}
	log.Info().
		Int64("nodes", metrics.Nodes).
		Int64("prunes", metrics.Prunes).
		Dur("duration", metrics.Duration).
		Msgf("%c searched %d plies", player.Marker(), metrics.MaxPly)

	return chain[0], metrics, nil
}
