package main

import (
	"cmp"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"abalone_go/internal/config"
	"abalone_go/internal/game"
)

func main() {
	cfgPath := flag.String("config", "", "YAML config file")
	boardFile := flag.String("board", "", "Text board file (defaults to the starting position)")
	turn := flag.String("turn", "white", "Side to move: black or white")
	depth := flag.Int("depth", 0, "Perft depth (0 = config value)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (ignored with -divide)")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if *depth <= 0 {
		*depth = cfg.Perft.Depth
	}
	logger := cfg.Log.Logger()

	g, err := setupGame(*boardFile, *turn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
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
		writeDivide(os.Stdout, g, *depth)
		return
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += game.Perft(g, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	logger.Debug("perft done", "depth", *depth, "repeat", *repeat, "nodes", totalNodes)
	fmt.Printf("depth %d  nodes %s  time %s  nps %s\n",
		*depth, humanize.Comma(int64(totalNodes)), elapsed.Round(time.Microsecond), humanize.Comma(int64(nps)))
}

// writeDivide prints the node count below each root move, sorted by move,
// followed by the total.
func writeDivide(w io.Writer, g *game.Game, depth int) uint64 {
	div := game.PerftDivide(g, depth)
	type kv struct {
		m game.Move
		n uint64
	}
	arr := make([]kv, 0, len(div))
	var sum uint64
	for m, n := range div {
		arr = append(arr, kv{m, n})
		sum += n
	}
	slices.SortFunc(arr, func(a, b kv) int { return cmp.Compare(fmt.Sprint(a.m), fmt.Sprint(b.m)) })
	for _, x := range arr {
		fmt.Fprintf(w, "%v: %d\n", x.m, x.n)
	}
	fmt.Fprintf(w, "Total: %s\n", humanize.Comma(int64(sum)))
	return sum
}

func setupGame(boardFile, turn string) (*game.Game, error) {
	g := game.NewGame()
	if boardFile != "" {
		data, err := os.ReadFile(boardFile)
		if err != nil {
			return nil, fmt.Errorf("read board: %w", err)
		}
		b, err := game.ParseBoard(string(data))
		if err != nil {
			return nil, fmt.Errorf("parse board %s: %w", boardFile, err)
		}
		g.Board = b
	}
	if err := g.Turn.UnmarshalText([]byte(turn)); err != nil || g.Turn == game.Empty {
		return nil, fmt.Errorf("invalid side to move %q", turn)
	}
	return g, nil
}
