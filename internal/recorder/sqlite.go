package recorder

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"ChartGrader/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists graded charts to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL so dashboards can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id               TEXT PRIMARY KEY,
			timestamp        INTEGER NOT NULL,
			symbol           TEXT,
			source           TEXT,
			confidence       REAL,
			grade            TEXT NOT NULL,
			total_score      INTEGER NOT NULL,
			should_enter     INTEGER NOT NULL,
			confluence_count INTEGER NOT NULL,
			entry_price      REAL,
			stop_loss        REAL,
			take_profit      REAL,
			risk_reward      REAL,
			input_json       TEXT,
			result_json      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ts ON analyses(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_symbol ON analyses(symbol)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(ctx context.Context, rec *model.AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	in, err := json.Marshal(rec.Input)
	if err != nil {
		return fmt.Errorf("marshal input: %w", err)
	}
	out, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	res := rec.Result

	_, err = r.db.ExecContext(ctx, `INSERT INTO analyses
		(id, timestamp, symbol, source, confidence, grade, total_score, should_enter, confluence_count,
		 entry_price, stop_loss, take_profit, risk_reward, input_json, result_json)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.ID.String(), rec.CreatedAt.Unix(), rec.Symbol, rec.Source, rec.Confidence,
		string(res.Grade), res.TotalScore, boolInt(res.ShouldEnter), res.ConfluenceCount,
		nullable(res.EntryPrice), nullable(res.StopLoss), nullable(res.TakeProfit), nullable(res.RiskRewardRatio),
		string(in), string(out),
	)
	return err
}

func (r *SQLiteRecorder) Summarize(ctx context.Context, since time.Time) (*Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.QueryContext(ctx, `SELECT grade, COUNT(*), SUM(should_enter), SUM(total_score)
		FROM analyses WHERE timestamp >= ? GROUP BY grade`, since.Unix())
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	var out []gradeRow
	for rows.Next() {
		var g gradeRow
		if err := rows.Scan(&g.grade, &g.count, &g.entered, &g.scoreSum); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return buildSummary(since, out), nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
