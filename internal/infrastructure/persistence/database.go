package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/assettrack/backend/internal/infrastructure/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Option adjusts the GORM settings used by Open
type Option func(*gorm.Config)

// WithGormLogger routes SQL logging through l
func WithGormLogger(l logger.Interface) Option {
	return func(c *gorm.Config) { c.Logger = l }
}

// WithPreparedStatements toggles GORM's statement cache
func WithPreparedStatements(enabled bool) Option {
	return func(c *gorm.Config) { c.PrepareStmt = enabled }
}

// Database owns the GORM handle and its connection pool
type Database struct {
	DB  *gorm.DB
	sql *sql.DB
}

// Open connects to Postgres using cfg and verifies the connection
func Open(cfg *config.DatabaseConfig, opts ...Option) (*Database, error) {
	return OpenDialector(postgres.Open(cfg.DSN()), cfg, append([]Option{WithPreparedStatements(true)}, opts...)...)
}

// OpenDialector connects through an arbitrary GORM dialector; pool limits come from cfg
func OpenDialector(dialector gorm.Dialector, cfg *config.DatabaseConfig, opts ...Option) (*Database, error) {
	gormCfg := &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	}
	for _, opt := range opts {
		opt(gormCfg)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	d := &Database{DB: db, sql: sqlDB}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.Ping(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return d, nil
}

// SQL exposes the pool, e.g. for golang-migrate or a Prometheus DB stats collector
func (d *Database) SQL() *sql.DB {
	return d.sql
}

// Ping checks that a connection can be acquired within ctx
func (d *Database) Ping(ctx context.Context) error {
	if err := d.sql.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// PoolStats is a snapshot of the connection pool
type PoolStats struct {
	MaxOpen      int
	Open         int
	InUse        int
	Idle         int
	WaitCount    int64
	WaitDuration time.Duration
}

// Stats reports the current pool usage
func (d *Database) Stats() PoolStats {
	s := d.sql.Stats()
	return PoolStats{
		MaxOpen:      s.MaxOpenConnections,
		Open:         s.OpenConnections,
		InUse:        s.InUse,
		Idle:         s.Idle,
		WaitCount:    s.WaitCount,
		WaitDuration: s.WaitDuration,
	}
}

// Transaction runs fn in a transaction bound to ctx
func (d *Database) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.DB.WithContext(ctx).Transaction(fn)
}

// Close releases every pooled connection
func (d *Database) Close() error {
	return d.sql.Close()
}
