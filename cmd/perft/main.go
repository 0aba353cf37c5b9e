package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/kevinrjones/chessengine-sub000/board"
	"github.com/kevinrjones/chessengine-sub000/perft"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	stats := flag.Bool("stats", false, "Count captures, en passant, castles, promotions and checks at the leaves instead of timing")
	flag.Parse()

	if err := checkFlags(*depth, *repeat, *divide, *stats); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	b, err := board.FromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FromFEN error: %v\n", err)
		os.Exit(2)
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	if *divide {
		entries := perft.Divide(b, *depth)
		for _, e := range entries {
			fmt.Printf("%s: %d\n", e.Move, e.Nodes)
		}
		fmt.Printf("Total: %d\n", perft.Total(entries))
		writeHeapProfile(*memProf)
		return
	}

	if *stats {
		s := perft.Count(b, *depth)
		fmt.Printf("nodes=%d captures=%d ep=%d castles=%d promotions=%d checks=%d\n",
			s.Nodes, s.Captures, s.EnPassant, s.Castles, s.Promotions, s.Checks)
		writeHeapProfile(*memProf)
		return
	}

	// Timing loop; per-run rates feed the mean and spread.
	var totalNodes uint64
	rates := make([]float64, 0, *repeat)
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		runStart := time.Now()
		n := perft.Perft(b, *depth)
		rates = append(rates, float64(n)/time.Since(runStart).Seconds())
		totalNodes += n
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
	if *repeat > 1 {
		mean, std := stat.MeanStdDev(rates, nil)
		fmt.Printf("nps mean=%.0f stddev=%.0f runs=%d\n", mean, std, len(rates))
	}

	writeHeapProfile(*memProf)
}

// checkFlags rejects flag combinations that would be silently ignored.
func checkFlags(depth, repeat int, divide, stats bool) error {
	switch {
	case depth <= 0:
		return errors.New("-depth must be > 0")
	case repeat < 1:
		return errors.New("-repeat must be >= 1")
	case divide && stats:
		return errors.New("-divide and -stats are mutually exclusive")
	case (divide || stats) && repeat > 1:
		return errors.New("-repeat only applies to timed runs, not -divide or -stats")
	}
	return nil
}

func writeHeapProfile(path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
		os.Exit(2)
	}
	if err := pprof.WriteHeapProfile(f); err != nil {
		fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
		os.Exit(2)
	}
	_ = f.Close()
}
