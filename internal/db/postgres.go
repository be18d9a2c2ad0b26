package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/records/internal/config"
	"github.com/yigit/records/internal/pkg/apperrors"
	"github.com/yigit/records/internal/pkg/logger"
	"github.com/yigit/records/internal/pkg/metrics"
)

// Querier is the parameterized statement surface the repositories depend on.
// Statements are squirrel builders, so values always travel as bind
// parameters and never through string concatenation.
type Querier interface {
	Query(ctx context.Context, stmt squirrel.Sqlizer) (pgx.Rows, error)
	QueryRow(ctx context.Context, stmt squirrel.Sqlizer) pgx.Row
	Exec(ctx context.Context, stmt squirrel.Sqlizer) (pgconn.CommandTag, error)
}

// StatementBuilder returns a squirrel builder using PostgreSQL placeholders.
func StatementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// PostgresDB database connection structure
type PostgresDB struct {
	Pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewPostgresDB creates a new PostgreSQL connection pool bounded by
// Database.MaxOpenConns. Callers beyond the limit wait for a free connection.
func NewPostgresDB(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*PostgresDB, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, apperrors.NewConnectionError("failed to parse pgxpool config", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)

	maxLifetime, err := time.ParseDuration(cfg.Database.ConnMaxLifetime)
	if err != nil {
		return nil, apperrors.NewConnectionError("failed to parse connection max lifetime", err)
	}
	poolConfig.MaxConnLifetime = maxLifetime

	poolConfig.BeforeAcquire = func(ctx context.Context, conn *pgx.Conn) bool {
		if err := conn.Ping(ctx); err != nil {
			logger.Warn().Err(err).Msg("Unhealthy connection detected")
			return false
		}
		return true
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, apperrors.NewConnectionError("failed to create database connection pool", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, apperrors.NewConnectionError("failed to establish database connection", err)
	}

	logger.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.DBName).
		Int32("maxConns", poolConfig.MaxConns).
		Msg("Database connection pool created")

	return &PostgresDB{Pool: pool, metrics: m}, nil
}

// NewPostgresDBFromPool wraps an existing pool.
func NewPostgresDBFromPool(pool *pgxpool.Pool, m *metrics.Metrics) *PostgresDB {
	return &PostgresDB{Pool: pool, metrics: m}
}

// Close closing method
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// Ping checks that a pooled connection can reach the server.
func (db *PostgresDB) Ping(ctx context.Context) error {
	if err := db.Pool.Ping(ctx); err != nil {
		return apperrors.NewConnectionError("postgres ping failed", err)
	}
	return nil
}

// Query runs stmt and returns its rows. The caller must close them.
func (db *PostgresDB) Query(ctx context.Context, stmt squirrel.Sqlizer) (pgx.Rows, error) {
	started := time.Now()
	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, apperrors.NewQueryError("failed to build query", err)
	}

	rows, err := db.Pool.Query(ctx, sql, args...)
	db.metrics.ObserveStore(metrics.StorePostgres, "query", started, err)
	if err != nil {
		logger.Error().Err(err).Str("sql", sql).Msg("Error executing query")
		return nil, apperrors.NewQueryError("relational query failed", err)
	}
	return rows, nil
}

// QueryRow runs stmt and returns a single row. Scan reports pgx.ErrNoRows
// unchanged so callers can map it to a not-found result.
func (db *PostgresDB) QueryRow(ctx context.Context, stmt squirrel.Sqlizer) pgx.Row {
	started := time.Now()
	sql, args, err := stmt.ToSql()
	if err != nil {
		return errRow{err: apperrors.NewQueryError("failed to build query", err)}
	}

	return &observedRow{
		row: db.Pool.QueryRow(ctx, sql, args...),
		done: func(err error) {
			db.metrics.ObserveStore(metrics.StorePostgres, "query_row", started, err)
		},
	}
}

// Exec runs a command statement.
func (db *PostgresDB) Exec(ctx context.Context, stmt squirrel.Sqlizer) (pgconn.CommandTag, error) {
	started := time.Now()
	sql, args, err := stmt.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, apperrors.NewQueryError("failed to build statement", err)
	}

	tag, err := db.Pool.Exec(ctx, sql, args...)
	db.metrics.ObserveStore(metrics.StorePostgres, "exec", started, err)
	if err != nil {
		// Keep the driver error reachable so unique violations can be detected.
		return tag, apperrors.NewQueryError("relational command failed", err)
	}
	return tag, nil
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx pgx.Tx) error

// WithTransaction runs a function within a transaction
func (db *PostgresDB) WithTransaction(ctx context.Context, fn TransactionFn) error {
	_, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewQueryError("failed to begin transaction", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewQueryError("failed to commit transaction", err)
	}

	return nil
}

// Collect runs stmt and maps every row onto T by `db` column tags.
func Collect[T any](ctx context.Context, q Querier, stmt squirrel.Sqlizer) ([]T, error) {
	rows, err := q.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, apperrors.NewQueryError("failed to read rows", err)
	}
	return items, nil
}

type observedRow struct {
	row  pgx.Row
	done func(error)
}

func (r *observedRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if err == nil || errors.Is(err, pgx.ErrNoRows) {
		r.done(nil)
		return err
	}
	r.done(err)
	return apperrors.NewQueryError("relational query failed", err)
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}
