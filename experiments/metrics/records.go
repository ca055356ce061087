package metrics

import (
	"time"
)

// AgentConfig describes one self-play agent.
type AgentConfig struct {
	ID     int
	MaxPly int
	Seed   uint64
}

// GameRecord summarizes one finished self-play game.
type GameRecord struct {
	ID         int
	Agent1     int // AgentConfig.ID, plays Dark
	Agent2     int // AgentConfig.ID, plays Light
	Winner     string
	DarkCount  int
	LightCount int
	Turns      int
	Deadlocked bool
	Duration   time.Duration
}

// MoveRecord captures the search statistics behind one applied move.
type MoveRecord struct {
	Game     int // GameRecord.ID
	Turn     int
	Player   string
	MaxPly   int
	Nodes    int64
	Prunes   int64
	PoolHits int64
	Duration time.Duration
}
