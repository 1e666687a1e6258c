// Package store provides SQLite-based storage of saved games.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"abalone_go/internal/game"
)

// ErrNotFound is returned when no game has the requested id.
var ErrNotFound = errors.New("game not found")

// DB wraps a SQLite connection for saved games.
type DB struct {
	conn *sqlx.DB
}

// Summary describes a saved game without decoding it.
type Summary struct {
	ID         string
	Created    time.Time
	Updated    time.Time
	Turn       game.Cell
	Cursor     int
	Moves      int
	BlackScore int
	WhiteScore int
	Winner     game.Cell // Empty while the game is undecided
}

type summaryRow struct {
	ID         string `db:"id"`
	Created    int64  `db:"created_at"`
	Updated    int64  `db:"updated_at"`
	Turn       string `db:"turn"`
	Cursor     int    `db:"cursor"`
	Moves      int    `db:"moves"`
	BlackScore int    `db:"black_score"`
	WhiteScore int    `db:"white_score"`
	Winner     string `db:"winner"`
}

// Open opens or creates a SQLite database at the given path.
// Missing parent directories are created.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// SQLite 只允许一个写连接
	conn.SetMaxOpenConns(1)

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		turn TEXT NOT NULL,
		cursor INTEGER NOT NULL,
		moves INTEGER NOT NULL,
		black_score INTEGER NOT NULL,
		white_score INTEGER NOT NULL,
		winner TEXT NOT NULL DEFAULT '',
		state_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_games_updated ON games(updated_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Create stores g under a new id and returns it.
func (db *DB) Create(ctx context.Context, g *game.Game) (string, error) {
	id := uuid.NewString()
	if err := db.Save(ctx, id, g); err != nil {
		return "", err
	}
	return id, nil
}

// Save writes a snapshot of g under id, replacing any previous one.
func (db *DB) Save(ctx context.Context, id string, g *game.Game) error {
	state, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", id, err)
	}

	black, white := g.Score()
	winner := ""
	if w, ok := g.Winner(); ok {
		winner = w.String()
	}
	now := time.Now().UnixMilli()

	_, err = db.conn.ExecContext(ctx, `INSERT INTO games
		(id, created_at, updated_at, turn, cursor, moves, black_score, white_score, winner, state_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			updated_at = excluded.updated_at,
			turn = excluded.turn,
			cursor = excluded.cursor,
			moves = excluded.moves,
			black_score = excluded.black_score,
			white_score = excluded.white_score,
			winner = excluded.winner,
			state_json = excluded.state_json`,
		id, now, now, g.Turn.String(), g.Cursor, len(g.Moves), black, white, winner, string(state),
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", id, err)
	}
	slog.Debug("game saved", "id", id, "moves", len(g.Moves), "cursor", g.Cursor)
	return nil
}

// Load decodes the game stored under id.
func (db *DB) Load(ctx context.Context, id string) (*game.Game, error) {
	var state string
	err := db.conn.GetContext(ctx, &state, "SELECT state_json FROM games WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", id, err)
	}

	var g game.Game
	if err := json.Unmarshal([]byte(state), &g); err != nil {
		return nil, fmt.Errorf("decode game %s: %w", id, err)
	}
	return &g, nil
}

// List returns up to limit saved games, most recently updated first.
func (db *DB) List(ctx context.Context, limit int) ([]Summary, error) {
	var rows []summaryRow
	err := db.conn.SelectContext(ctx, &rows, `SELECT
		id, created_at, updated_at, turn, cursor, moves, black_score, white_score, winner
		FROM games ORDER BY updated_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	out := make([]Summary, 0, len(rows))
	for _, r := range rows {
		s := Summary{
			ID:         r.ID,
			Created:    time.UnixMilli(r.Created),
			Updated:    time.UnixMilli(r.Updated),
			Cursor:     r.Cursor,
			Moves:      r.Moves,
			BlackScore: r.BlackScore,
			WhiteScore: r.WhiteScore,
		}
		if err := s.Turn.UnmarshalText([]byte(r.Turn)); err != nil {
			return nil, fmt.Errorf("game %s: %w", r.ID, err)
		}
		if r.Winner != "" {
			if err := s.Winner.UnmarshalText([]byte(r.Winner)); err != nil {
				return nil, fmt.Errorf("game %s: %w", r.ID, err)
			}
		}
		out = append(out, s)
	}
	return out, nil
}

// Delete removes the game stored under id.
func (db *DB) Delete(ctx context.Context, id string) error {
	res, err := db.conn.ExecContext(ctx, "DELETE FROM games WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	return nil
}
