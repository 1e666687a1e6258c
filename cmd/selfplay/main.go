package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"abalone_go/internal/config"
	"abalone_go/internal/game"
	"abalone_go/internal/store"
)

type result struct {
	id     string
	plies  int
	winner game.Cell
}

func main() {
	// ───── 参数 ─────
	cfgPath := flag.String("config", "", "YAML 配置文件")
	numGames := flag.Int("n", 0, "目标总对局数 (0 = 配置值)")
	workers := flag.Int("workers", 0, "worker 数 (0 = 配置值)")
	dbPath := flag.String("db", "", "SQLite 文件 (空 = 配置值)")
	seed := flag.Int64("seed", 0, "随机种子 (0 = 配置值或时间)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *numGames > 0 {
		cfg.SelfPlay.Games = *numGames
	}
	if *workers > 0 {
		cfg.SelfPlay.Workers = *workers
	}
	if *dbPath != "" {
		cfg.Store.Path = *dbPath
	}
	if *seed != 0 {
		cfg.SelfPlay.Seed = *seed
	}
	if cfg.SelfPlay.Seed == 0 {
		cfg.SelfPlay.Seed = time.Now().UnixNano()
	}

	logger := cfg.Log.Logger()
	slog.SetDefault(logger)

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		logger.Error("failed to open store", "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("selfplay starting",
		"games", cfg.SelfPlay.Games,
		"workers", cfg.SelfPlay.Workers,
		"max_plies", cfg.SelfPlay.MaxPlies,
		"seed", cfg.SelfPlay.Seed,
		"store", cfg.Store.Path,
	)

	start := time.Now()
	results := run(context.Background(), db, cfg.SelfPlay, logger)

	var plies uint64
	var black, white, undecided int
	for _, r := range results {
		plies += uint64(r.plies)
		switch r.winner {
		case game.Black:
			black++
		case game.White:
			white++
		default:
			undecided++
		}
	}
	logger.Info("selfplay finished",
		"games", humanize.Comma(int64(len(results))),
		"plies", humanize.Comma(int64(plies)),
		"black_wins", black,
		"white_wins", white,
		"undecided", undecided,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
}

// run 并行自对弈，返回成功保存的对局
func run(ctx context.Context, db *store.DB, cfg config.SelfPlayConfig, logger *slog.Logger) []result {
	workers := max(cfg.Workers, 1)

	jobs := make(chan int, workers*2)
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []result
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(cfg.Seed + int64(workerID))) // 独立随机源

			for n := range jobs {
				g, err := playOneGame(r, cfg.MaxPlies, cfg.Verify)
				if err != nil {
					logger.Error("game failed", "game", n, "worker", workerID, "error", err)
					continue
				}
				id, err := db.Create(ctx, g)
				if err != nil {
					logger.Error("failed to save game", "game", n, "error", err)
					continue
				}
				winner, _ := g.Winner()
				logger.Debug("game saved", "game", n, "id", id, "plies", len(g.Moves), "winner", winner)

				mu.Lock()
				results = append(results, result{id: id, plies: len(g.Moves), winner: winner})
				mu.Unlock()
			}
		}(i)
	}

	// ───── 投任务 ─────
	for n := 0; n < cfg.Games; n++ {
		jobs <- n
		if (n+1)%100 == 0 {
			logger.Info("投放进度", "queued", n+1, "total", cfg.Games)
		}
	}
	close(jobs)
	wg.Wait()
	return results
}

// playOneGame 随机走子直到分出胜负或达到 maxPlies。
// verify 时每一步都检查 Undo/Redo 能精确还原局面。
func playOneGame(r *rand.Rand, maxPlies int, verify bool) (*game.Game, error) {
	g := game.NewGame()
	for len(g.Moves) < maxPlies {
		if _, over := g.Winner(); over {
			break
		}
		moves := g.LegalMoves()
		if len(moves) == 0 {
			break
		}
		before := g.Board
		mv := moves[r.Intn(len(moves))]
		g.Submit(mv)

		if !verify {
			continue
		}
		after := g.Board
		g.Undo()
		if g.Board != before {
			return nil, fmt.Errorf("undo of %v at ply %d did not restore the board", mv, len(g.Moves))
		}
		g.Redo()
		if g.Board != after {
			return nil, fmt.Errorf("redo of %v at ply %d did not reapply the move", mv, len(g.Moves))
		}
	}

	if verify {
		final := g.Board
		for g.CanUndo() {
			g.Undo()
		}
		if g.Board != game.NewBoard() || g.Turn != game.White {
			return nil, fmt.Errorf("undoing %d moves did not reach the start position", len(g.Moves))
		}
		for g.CanRedo() {
			g.Redo()
		}
		if g.Board != final {
			return nil, fmt.Errorf("redoing %d moves did not reach the final position", len(g.Moves))
		}
	}
	return g, nil
}
