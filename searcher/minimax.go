package searcher

import (
	"errors"
	"time"

	"othello/game"
	"othello/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// initialBest sits below any reachable net score (the weights of all 64
// cells sum to 484), so the first applicable move at a node always
// becomes the running best.
const initialBest = -9 * game.BoardArea

// ErrNoMove reports that the searched player has no capturing placement
// anywhere on the board. The caller decides whether that is a pass or,
// after two in a row, the end of the game.
var ErrNoMove = errors.New("no legal move")

type Option func(m *Minimax)

// WithMaxPly sets the search depth in plies.
func WithMaxPly(maxPly int) Option {
	return func(m *Minimax) {
		if maxPly > 0 {
			m.maxPly = maxPly
		}
	}
}

// WithRand replaces the tie-break source, for deterministic searches in
// tests.
func WithRand(rng *rand.Rand) Option {
	return func(m *Minimax) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithMetrics enables per-search statistics collection.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

// Minimax searches the game tree to a fixed depth with alpha-beta
// pruning and returns the principal variation it expects play to
// follow. A search mutates the state in place and undoes every trial,
// so a Minimax must not be shared between concurrent searches.
type Minimax struct {
	maxPly  int
	rng     *rand.Rand
	pool    chainPool
	metrics MetricsCollector
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		maxPly:  meta.DEFAULT_PLY,
		rng:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindBestMove runs a full search for player and returns the chosen
// chain: the root move followed by the best responses gathered during
// recursion, one per ply. Among equally scored root moves one is picked
// uniformly at random so play is not exploitable by repetition.
//
// Returns ErrNoMove when no empty cell captures anything for player.
func (m *Minimax) FindBestMove(s *game.State, player game.Cell) (Chain, SearchMetrics, error) {
	m.metrics.Start(m.maxPly)
	poolHits := m.pool.hits
	_, chain := m.search(s, player, 1, 0, 0)
	m.metrics.SetPoolHits(m.pool.hits - poolHits)
	metric := m.metrics.Complete()
	if chain == nil {
		return nil, metric, ErrNoMove
	}
	return chain, metric, nil
}

// search evaluates one node of the minimax recursion and returns the
// best net score for player along with its chain, or (0, nil) when
// player has no applicable move at this node.
//
// parentScore is the raw score of the parent move that led here;
// bestSibling is the best net score among the parent's already-explored
// children. Once a move refutes the parent's line, meaning
// parentScore-score can no longer beat bestSibling, the remaining cells
// at this node are skipped.
func (m *Minimax) search(s *game.State, player game.Cell, ply, parentScore, bestSibling int) (int, Chain) {
	maxScore := initialBest
	var candidates []Chain
	done := false

	for row := 0; row < game.BoardSize && !done; row++ {
		for col := 0; col < game.BoardSize && !done; col++ {
			if s.Board[row][col] != game.Empty {
				continue
			}

			eff, err := s.Apply(row, col, player)
			if err != nil {
				// Zero-yield cell: not a candidate.
				continue
			}
			m.metrics.AddNode()
			log.Debug().Msgf("ply %d: %c placed at (%d,%d)", ply, player.Marker(), row, col)

			score := eff.Score
			var reply Chain
			if ply < m.maxPly && !s.Full() {
				// The opponent's gain is this player's loss.
				var replyScore int
				replyScore, reply = m.search(s, game.Opponent(player), ply+1, score, maxScore)
				score -= replyScore
				if score <= initialBest {
					panic("net score fell below the initial bound; apply/undo symmetry is broken")
				}
			}

			if score > maxScore {
				for _, c := range candidates {
					m.pool.release(c)
				}
				candidates = candidates[:0]

				if ply > 1 && parentScore-score < bestSibling {
					// Alpha-beta cutoff: this node already
					// refutes the parent's move.
					log.Debug().Msgf("prune: %d - %d < %d", parentScore, score, bestSibling)
					m.metrics.AddPrune()
					done = true
				}

				maxScore = score
			}

			if score == maxScore {
				chain := m.pool.acquire()
				chain = append(chain, Move{Row: row, Col: col, Score: score})
				chain = append(chain, reply...)
				m.pool.release(reply)
				candidates = append(candidates, chain)
			} else {
				m.pool.release(reply)
			}

			s.Undo(row, col, player, eff.Flips)
		}
	}

	if len(candidates) == 0 {
		// No applicable move: worth nothing to the parent.
		log.Debug().Msgf("ply %d: no move for %c", ply, player.Marker())
		return 0, nil
	}

	chosen := m.rng.Intn(len(candidates))
	for i, c := range candidates {
		if i != chosen {
			m.pool.release(c)
		}
	}
	log.Debug().Msgf("ply %d: chose move %d of %d, score %d", ply, chosen, len(candidates), maxScore)
	return maxScore, candidates[chosen]
}
