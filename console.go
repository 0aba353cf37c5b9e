package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kevinrjones/chessengine-sub000/board"
	"github.com/kevinrjones/chessengine-sub000/perft"
)

func main() {
	log.SetFlags(0)
	if err := consoleLoop(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("reading commands: %v", err)
	}
}

// consoleLoop reads one command per line until quit or end of input.
func consoleLoop(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	b, _ := board.FromFEN(board.StartFEN)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "quit":
			return nil
		case "new":
			b, _ = board.FromFEN(board.StartFEN)
		case "position":
			next, err := parsePosition(tokens[1:])
			if err != nil {
				fmt.Fprintln(out, "info string", err)
				continue
			}
			b = next
		case "print", "d":
			fmt.Fprintln(out, b)
		case "fen":
			fmt.Fprintln(out, b.ToFEN())
		case "moves":
			legal := b.LegalMoves()
			names := make([]string, 0, len(legal))
			for _, m := range legal {
				names = append(names, m.String())
			}
			fmt.Fprintf(out, "%d: %s\n", len(names), strings.Join(names, " "))
		case "move":
			if len(tokens) < 2 {
				fmt.Fprintln(out, "info string Malformed move command")
				continue
			}
			for _, mv := range tokens[1:] {
				if err := applyMove(b, mv); err != nil {
					fmt.Fprintln(out, "info string", err)
					break
				}
			}
			reportStatus(out, b)
		case "undo":
			if b.HistoryPly() == 0 {
				fmt.Fprintln(out, "info string Nothing to undo")
				continue
			}
			b.TakeMove()
		case "perft", "divide":
			depth, err := parseDepth(tokens)
			if err != nil {
				fmt.Fprintln(out, "info string", err)
				continue
			}
			start := time.Now()
			var nodes uint64
			if strings.ToLower(tokens[0]) == "divide" {
				entries := perft.Divide(b, depth)
				for _, e := range entries {
					fmt.Fprintf(out, "%s: %d\n", e.Move, e.Nodes)
				}
				nodes = perft.Total(entries)
			} else {
				nodes = perft.Perft(b, depth)
			}
			fmt.Fprintf(out, "Nodes: %d Time: %s\n", nodes, time.Since(start).Round(time.Millisecond))
		case "status":
			reportStatus(out, b)
		default:
			fmt.Fprintln(out, "info string Unknown command", tokens[0])
		}
	}
	return scanner.Err()
}

// parsePosition handles "startpos [moves ...]" and "fen <fields> [moves ...]".
func parsePosition(args []string) (*board.Board, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("malformed position command")
	}
	var fenFields []string
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		fenFields = strings.Fields(board.StartFEN)
	case "fen":
		for len(rest) > 0 && strings.ToLower(rest[0]) != "moves" {
			fenFields = append(fenFields, rest[0])
			rest = rest[1:]
		}
	default:
		return nil, fmt.Errorf("invalid position subcommand %q", args[0])
	}
	b, err := board.FromFEN(strings.Join(fenFields, " "))
	if err != nil {
		return nil, err
	}
	if len(rest) == 0 {
		return b, nil
	}
	if strings.ToLower(rest[0]) != "moves" {
		return nil, fmt.Errorf("unexpected token %q", rest[0])
	}
	for _, mv := range rest[1:] {
		if err := applyMove(b, mv); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func applyMove(b *board.Board, mv string) error {
	m, err := b.FindMove(mv)
	if err != nil {
		return err
	}
	if !b.MakeMove(m) {
		return fmt.Errorf("%w: %s", board.ErrIllegalMove, mv)
	}
	return nil
}

func parseDepth(tokens []string) (int, error) {
	if len(tokens) < 2 {
		return 0, fmt.Errorf("malformed %s command", tokens[0])
	}
	depth, err := strconv.Atoi(tokens[1])
	if err != nil || depth < 1 {
		return 0, fmt.Errorf("invalid depth %q", tokens[1])
	}
	return depth, nil
}

func reportStatus(out io.Writer, b *board.Board) {
	switch {
	case b.IsCheckmate():
		fmt.Fprintln(out, "checkmate")
	case b.IsStalemate():
		fmt.Fprintln(out, "stalemate")
	case b.IsDrawBy50():
		fmt.Fprintln(out, "draw by fifty-move rule")
	case b.IsRepetition():
		fmt.Fprintln(out, "repetition")
	case b.InCheck(b.SideToMove()):
		fmt.Fprintln(out, "check")
	}
}
