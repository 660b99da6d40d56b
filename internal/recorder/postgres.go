package recorder

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"ChartGrader/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig tunes the Postgres connection pool.
type PoolConfig struct {
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxConns:          10,
		MinConns:          2,
		MaxConnLifetime:   30 * time.Minute,
		MaxConnIdleTime:   5 * time.Minute,
		HealthCheckPeriod: 30 * time.Second,
	}
}

// PoolConfigFromEnv applies DB_* overrides on top of the defaults.
func PoolConfigFromEnv() PoolConfig {
	cfg := DefaultPoolConfig()

	if v := strings.TrimSpace(os.Getenv("DB_MAX_CONNS")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			cfg.MaxConns = int32(n)
		}
	}
	if v := strings.TrimSpace(os.Getenv("DB_MIN_CONNS")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			cfg.MinConns = int32(n)
		}
	}
	if v := strings.TrimSpace(os.Getenv("DB_MAX_CONN_LIFETIME")); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.MaxConnLifetime = d
		}
	}
	if v := strings.TrimSpace(os.Getenv("DB_MAX_CONN_IDLE_TIME")); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.MaxConnIdleTime = d
		}
	}

	if cfg.MaxConns < 1 {
		cfg.MaxConns = 1
	}
	if cfg.MinConns < 0 {
		cfg.MinConns = 0
	}
	if cfg.MinConns > cfg.MaxConns {
		cfg.MinConns = cfg.MaxConns
	}
	return cfg
}

// withSSLMode adds sslmode=require unless the URL already sets one.
func withSSLMode(dbURL string) string {
	u, err := url.Parse(dbURL)
	if err != nil {
		// pgx will surface the parse error on connect.
		return dbURL
	}
	q := u.Query()
	if q.Get("sslmode") == "" {
		q.Set("sslmode", "require")
		u.RawQuery = q.Encode()
	}
	return strings.TrimSpace(u.String())
}

// PostgresRecorder persists graded charts to Postgres.
type PostgresRecorder struct {
	pool *pgxpool.Pool
}

// NewPostgresRecorder connects, pings and migrates.
func NewPostgresRecorder(ctx context.Context, databaseURL string, cfg PoolConfig) (*PostgresRecorder, error) {
	poolCfg, err := pgxpool.ParseConfig(withSSLMode(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("parse postgres url: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolCfg.HealthCheckPeriod = cfg.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	r := &PostgresRecorder{pool: pool}
	if err := r.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Println("[INFO] postgres recorder opened")
	return r, nil
}

func (r *PostgresRecorder) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS chart_analyses (
			id               UUID PRIMARY KEY,
			created_at       TIMESTAMPTZ NOT NULL,
			symbol           TEXT,
			source           TEXT,
			confidence       DOUBLE PRECISION,
			grade            TEXT NOT NULL,
			total_score      INTEGER NOT NULL,
			should_enter     BOOLEAN NOT NULL,
			confluence_count INTEGER NOT NULL,
			entry_price      DOUBLE PRECISION,
			stop_loss        DOUBLE PRECISION,
			take_profit      DOUBLE PRECISION,
			risk_reward      DOUBLE PRECISION,
			input            JSONB,
			result           JSONB
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chart_analyses_created ON chart_analyses(created_at)`,
	}
	for _, s := range stmts {
		if _, err := r.pool.Exec(ctx, s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *PostgresRecorder) RecordAnalysis(ctx context.Context, rec *model.AnalysisRecord) error {
	in, err := json.Marshal(rec.Input)
	if err != nil {
		return fmt.Errorf("marshal input: %w", err)
	}
	out, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	res := rec.Result

	_, err = r.pool.Exec(ctx, `INSERT INTO chart_analyses
		(id, created_at, symbol, source, confidence, grade, total_score, should_enter, confluence_count,
		 entry_price, stop_loss, take_profit, risk_reward, input, result)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		rec.ID, rec.CreatedAt, rec.Symbol, rec.Source, rec.Confidence,
		string(res.Grade), res.TotalScore, res.ShouldEnter, res.ConfluenceCount,
		res.EntryPrice, res.StopLoss, res.TakeProfit, res.RiskRewardRatio,
		in, out,
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

func (r *PostgresRecorder) Summarize(ctx context.Context, since time.Time) (*Summary, error) {
	rows, err := r.pool.Query(ctx, `SELECT grade, COUNT(*), COUNT(*) FILTER (WHERE should_enter), COALESCE(SUM(total_score), 0)
		FROM chart_analyses WHERE created_at >= $1 GROUP BY grade`, since)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	var out []gradeRow
	for rows.Next() {
		var (
			g                      string
			count, entered, scores int64
		)
		if err := rows.Scan(&g, &count, &entered, &scores); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, gradeRow{grade: g, count: int(count), entered: int(entered), scoreSum: int(scores)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return buildSummary(since, out), nil
}

func (r *PostgresRecorder) Close() error {
	log.Println("[INFO] closing postgres recorder")
	r.pool.Close()
	return nil
}
