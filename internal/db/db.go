package db

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/2beens/warmachine/internal/config"
	"github.com/2beens/warmachine/pkg"
)

const (
	sqliteDriverName   = "sqlite"
	postgresDriverName = "pgx"
)

func init() {
	// modernc registers itself as "sqlite", which older sqlx bind maps don't know
	sqlx.BindDriver(sqliteDriverName, sqlx.QUESTION)
}

// DB is the shared handle all repos use. SQL is written with '?' binds
// and passed through Rebind, so the same query runs on both drivers.
type DB struct {
	*sqlx.DB
	Driver string

	// Collector exports connection pool stats to prometheus
	Collector prometheus.Collector
	pool      *pgxpool.Pool
}

type OpenParams struct {
	Driver           string
	SQLitePath       string
	PostgresHost     string
	PostgresPort     string
	PostgresDBName   string
	PostgresUser     string
	PostgresPassword string
	TracingEnabled   bool
}

func ParamsFromConfig(cfg *config.Config, tracingEnabled bool) OpenParams {
	return OpenParams{
		Driver:           cfg.DBDriver,
		SQLitePath:       cfg.SQLitePath,
		PostgresHost:     cfg.PostgresHost,
		PostgresPort:     cfg.PostgresPort,
		PostgresDBName:   cfg.PostgresDBName,
		PostgresUser:     cfg.PostgresUser,
		PostgresPassword: cfg.PostgresPassword,
		TracingEnabled:   tracingEnabled,
	}
}

func Open(ctx context.Context, params OpenParams) (*DB, error) {
	switch params.Driver {
	case config.DBDriverSQLite, "":
		return openSQLite(ctx, params.SQLitePath)
	case config.DBDriverPostgres:
		return openPostgres(ctx, params)
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", params.Driver)
	}
}

func openSQLite(ctx context.Context, path string) (*DB, error) {
	if path == "" {
		return nil, errors.New("sqlite path empty")
	}
	if path != ":memory:" {
		if err := pkg.EnsureDir(filepath.Dir(path)); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate",
		path,
	)
	sqlxDB, err := sqlx.Open(sqliteDriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite allows a single writer
	sqlxDB.SetMaxOpenConns(1)

	if err := sqlxDB.PingContext(ctx); err != nil {
		_ = sqlxDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	log.Debugf("sqlite db opened: %s", path)
	return &DB{
		DB:        sqlxDB,
		Driver:    config.DBDriverSQLite,
		Collector: collectors.NewDBStatsCollector(sqlxDB.DB, "warmachine"),
	}, nil
}

func openPostgres(ctx context.Context, params OpenParams) (*DB, error) {
	pool, err := NewDBPool(ctx, NewDBPoolParams{
		DBHost:         params.PostgresHost,
		DBPort:         params.PostgresPort,
		DBName:         params.PostgresDBName,
		DBUser:         params.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	sqlxDB := sqlx.NewDb(stdlib.OpenDBFromPool(pool), postgresDriverName)
	return &DB{
		DB:     sqlxDB,
		Driver: config.DBDriverPostgres,
		Collector: pgxpoolprometheus.NewCollector(
			pool,
			map[string]string{"db_name": params.PostgresDBName},
		),
		pool: pool,
	}, nil
}

func (d *DB) Close() error {
	err := d.DB.Close()
	if d.pool != nil {
		log.Debugln("closing db pool ...")
		d.pool.Close() // blocking operation
		log.Debugln("db pool closed")
	}
	return err
}

// OpenTestSQLite opens a migrated sqlite db in a temp dir, closed on cleanup.
func OpenTestSQLite(ctx context.Context, dir string) (*DB, error) {
	d, err := Open(ctx, OpenParams{
		Driver:     config.DBDriverSQLite,
		SQLitePath: filepath.Join(dir, "test.db"),
	})
	if err != nil {
		return nil, err
	}
	if _, err := Migrate(ctx, d); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}
