package experiments

import (
	"fmt"
	"time"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// DefaultGames is the number of games played per matchup.
const DefaultGames = 20

var skillConfigs = []metrics.AgentConfig{
	{ID: 1, MaxPly: 1},
	{ID: 2, MaxPly: 2},
	{ID: 3, MaxPly: 3},
	{ID: 4, MaxPly: 4},
	{ID: 5, MaxPly: 6},
}

// RunSkillLadder pits a fixed baseline depth against a ladder of search
// depths and writes per-game and per-move records as CSV under root.
// Each matchup plays games alternating seeds so equal-score tie-breaks
// differ between games.
func RunSkillLadder(root string, games int) error {
	if games <= 0 {
		games = DefaultGames
	}

	baseline := metrics.AgentConfig{ID: 0, MaxPly: 2}
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range skillConfigs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msg("starting skill ladder experiment...")

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), config1, config2)

		for i := 0; i < games; i++ {
			// Reseed per game so tie-breaks vary across the run
			// but each game stays reproducible from its record.
			config1.Seed = uint64(mi*games+i)*2 + 1
			config2.Seed = uint64(mi*games+i)*2 + 2

			outcome, moves, err := runGame(config1, config2)
			if err != nil {
				return fmt.Errorf("matchup %d game %d failed: %w", mi+1, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				Winner:     sideName(outcome.Winner),
				DarkCount:  outcome.DarkCount,
				LightCount: outcome.LightCount,
				Turns:      outcome.Turns,
				Deadlocked: outcome.Deadlocked,
				Duration:   gameDuration(moves),
			})
			for _, mm := range moves {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:     count,
					Turn:     mm.Turn,
					Player:   sideName(mm.Player),
					MaxPly:   mm.Search.MaxPly,
					Nodes:    mm.Search.Nodes,
					Prunes:   mm.Search.Prunes,
					PoolHits: mm.Search.PoolHits,
					Duration: mm.Search.Duration,
				})
			}

			log.Info().Msgf("matchup %d game %d over: winner=%s dark=%d light=%d turns=%d",
				mi+1, i+1, sideName(outcome.Winner), outcome.DarkCount,
				outcome.LightCount, outcome.Turns)
		}
	}

	writer, err := metrics.NewWriter(root, "skill_ladder")
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs(append(skillConfigs, baseline)); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	log.Info().Msgf("finished skill ladder experiment: %d games recorded under %s",
		count, writer.BaseDir())
	return nil
}

func runGame(config1, config2 metrics.AgentConfig) (engine.Outcome, []engine.MoveMetrics, error) {
	dark := engine.NewSearchAgent(newMinimax(config1))
	light := engine.NewSearchAgent(newMinimax(config2))
	e := engine.New(game.NewState(), dark, light)
	return e.Run()
}

func newMinimax(config metrics.AgentConfig) *searcher.Minimax {
	return searcher.NewMinimax(
		searcher.WithMaxPly(config.MaxPly),
		searcher.WithRand(rand.New(rand.NewSource(config.Seed))),
		searcher.WithMetrics(),
	)
}

func sideName(c game.Cell) string {
	switch c {
	case game.Dark:
		return "dark"
	case game.Light:
		return "light"
	default:
		return "draw"
	}
}

func gameDuration(moves []engine.MoveMetrics) time.Duration {
	var total time.Duration
	for _, mm := range moves {
		total += mm.Search.Duration
	}
	return total
}
