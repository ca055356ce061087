package main

import (
	"flag"
	"os"

	"othello/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	games := flag.Int("games", experiments.DefaultGames, "games per matchup")
	root := flag.String("out", "experiments", "directory for CSV records")
	debug := flag.Bool("debug", false, "log search traces")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	if err := experiments.RunSkillLadder(*root, *games); err != nil {
		log.Fatal().Err(err).Msg("selfplay failed")
	}
}
