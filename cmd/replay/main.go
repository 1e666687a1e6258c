// cmd/replay/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"abalone_go/internal/config"
	"abalone_go/internal/game"
	"abalone_go/internal/store"
)

func main() {
	cfgPath := flag.String("config", "", "YAML 配置文件")
	dbPath := flag.String("db", "", "SQLite 文件 (空 = 配置值)")
	id := flag.String("id", "", "要回放的对局 id")
	list := flag.Int("list", 0, "列出最近 N 局后退出")
	ply := flag.Int("ply", -1, "只回放到第几步 (-1 = 全部)")
	delay := flag.Duration("delay", 0, "每步之间的停顿")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.Store.Path = *dbPath
	}
	logger := cfg.Log.Logger()
	slog.SetDefault(logger)

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		logger.Error("failed to open store", "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	switch {
	case *list > 0:
		err = listGames(ctx, os.Stdout, db, *list)
	case *id != "":
		var g *game.Game
		g, err = db.Load(ctx, *id)
		if err == nil {
			err = replay(os.Stdout, g, *ply, *delay)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("replay failed", "error", err)
		os.Exit(1)
	}
}

func listGames(ctx context.Context, w io.Writer, db *store.DB, n int) error {
	games, err := db.List(ctx, n)
	if err != nil {
		return err
	}
	for _, s := range games {
		winner := "-"
		if s.Winner != game.Empty {
			winner = s.Winner.String()
		}
		fmt.Fprintf(w, "%s  %3d/%-3d plies  black %d  white %d  winner %-5s  %s\n",
			s.ID, s.Cursor, s.Moves, s.BlackScore, s.WhiteScore, winner, humanize.Time(s.Updated))
	}
	return nil
}

// replay 回到开局，然后逐步 Redo 打印每个局面
func replay(w io.Writer, g *game.Game, upTo int, delay time.Duration) error {
	for g.CanUndo() {
		g.Undo()
	}
	if upTo < 0 || upTo > len(g.Moves) {
		upTo = len(g.Moves)
	}

	printPosition(w, g, 0, nil)
	for i := 0; i < upTo; i++ {
		if !g.CanRedo() {
			return fmt.Errorf("history ended at ply %d", i)
		}
		mv := g.Moves[g.Cursor]
		g.Redo()
		if delay > 0 {
			time.Sleep(delay)
		}
		printPosition(w, g, i+1, mv)
	}
	if winner, ok := g.Winner(); ok {
		fmt.Fprintf(w, "%s wins\n", winner)
	}
	return nil
}

func printPosition(w io.Writer, g *game.Game, ply int, mv game.Move) {
	black, white := g.Score()
	if mv == nil {
		fmt.Fprintf(w, "ply %d  start  (%s to move)\n", ply, g.Turn)
	} else {
		fmt.Fprintf(w, "ply %d  %v  black %d  white %d  (%s to move)\n", ply, mv, black, white, g.Turn)
	}
	fmt.Fprintln(w, g.Board)
}
