package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"othello/engine"
	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	in := bufio.NewScanner(os.Stdin)
	out := os.Stdout

	verbose := askYesNo(in, out, "verbose? ")
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	skill := askSkill(in, out)
	humans := map[game.Cell]bool{
		game.Dark:  askHuman(in, out, game.Dark),
		game.Light: askHuman(in, out, game.Light),
	}
	pauseAfter := askYesNo(in, out, "pause after computer move? ")

	state := game.NewState()
	e := engine.New(state,
		newAgent(in, out, humans[game.Dark], skill),
		newAgent(in, out, humans[game.Light], skill))
	e.SetObserver(func(player game.Cell, move searcher.Move, s *game.State) {
		printCounts(out, s)
		drawBoard(out, &s.Board)
		if pauseAfter && !humans[player] {
			fmt.Fprintln(out, "press RETURN to continue...")
			in.Scan()
		}
	})

	drawBoard(out, &state.Board)
	fmt.Fprintf(out, "enter: row,column (both in range 0-%d); h for a hint, q to quit\n",
		game.BoardSize-1)

	outcome, _, err := e.Run()
	if err != nil && !errors.Is(err, engine.ErrQuit) {
		log.Fatal().Err(err).Msg("game aborted")
	}

	printCounts(out, state)
	switch {
	case errors.Is(err, engine.ErrQuit):
		fmt.Fprintln(out, "game abandoned")
	case outcome.Winner == game.Empty:
		fmt.Fprintln(out, "draw")
	default:
		fmt.Fprintf(out, "%c wins\n", outcome.Winner.Marker())
	}
}

func newAgent(in *bufio.Scanner, out io.Writer, human bool, skill int) engine.Agent {
	minimax := searcher.NewMinimax(searcher.WithMaxPly(skill), searcher.WithMetrics())
	if human {
		return engine.NewHumanAgent(in, out, minimax)
	}
	return engine.NewSearchAgent(minimax)
}

func askYesNo(in *bufio.Scanner, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	return strings.HasPrefix(strings.ToLower(readToken(in)), "y")
}

func askSkill(in *bufio.Scanner, out io.Writer) int {
	for {
		fmt.Fprintf(out, "enter skill level (%d-%d): ", meta.MIN_SKILL, meta.MAX_SKILL)
		skill, err := strconv.Atoi(readToken(in))
		if err == nil && skill >= meta.MIN_SKILL && skill <= meta.MAX_SKILL {
			return skill
		}
	}
}

func askHuman(in *bufio.Scanner, out io.Writer, player game.Cell) bool {
	for {
		fmt.Fprintf(out, "%c: (h)uman or (c)omputer: ", player.Marker())
		switch strings.ToLower(readToken(in)) {
		case "h":
			return true
		case "c":
			return false
		}
	}
}

func readToken(in *bufio.Scanner) string {
	if !in.Scan() {
		// EOF on a prompt: abandon rather than loop forever.
		fmt.Fprintln(os.Stderr, "eof on stdin")
		os.Exit(1)
	}
	return strings.TrimSpace(in.Text())
}

func printCounts(w io.Writer, s *game.State) {
	fmt.Fprintf(w, "X: %d;  O: %d\n",
		s.Player(game.Dark).Count, s.Player(game.Light).Count)
}

func drawBoard(w io.Writer, b *game.Board) {
	fmt.Fprintln(w, "\n       01234567")
	fmt.Fprintln(w, "      +--------+")
	for row := 0; row < game.BoardSize; row++ {
		var line strings.Builder
		for col := 0; col < game.BoardSize; col++ {
			line.WriteByte(b[row][col].Marker())
		}
		fmt.Fprintf(w, "    %d |%s|\n", row, line.String())
	}
	fmt.Fprintln(w, "      +--------+")
	fmt.Fprintln(w)
}
