package db

import (
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/zap"
	sqlTrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/database/sql"

	"backend/gestion-platform/app/internal/config"
)

var ErrMissingConnectionString = errors.New("database connection string is not configured")

const defaultConnectTimeout = 30 * time.Second

type DB struct {
	PrimaryDb *bun.DB
	ReplicaDb *bun.DB
}

func NewDB(cfg config.ApplicationConfig, logger *zap.Logger) (*DB, error) {
	dbCfg := cfg.DatabaseConfig
	primaryDSN := dbCfg.PrimaryConnectionString()
	if primaryDSN == "" {
		return nil, ErrMissingConnectionString
	}

	priDb, err := setupDatabase("primary", primaryDSN, dbCfg, logger)
	if err != nil {
		return nil, err
	}

	replicaDSN := dbCfg.ReplicaConnectionString()
	if replicaDSN == "" {
		return &DB{PrimaryDb: priDb}, nil
	}
	replDb, err := setupDatabase("replica", replicaDSN, dbCfg, logger)
	if err != nil {
		_ = priDb.Close()
		return nil, err
	}

	return &DB{
		PrimaryDb: priDb,
		ReplicaDb: replDb,
	}, nil
}

func connectorOptions(dsn string, cfg config.DatabaseConfig) []pgdriver.Option {
	timeout := defaultConnectTimeout
	if cfg.ConnectTimeout > 0 {
		timeout = time.Duration(cfg.ConnectTimeout) * time.Second
	}
	opts := []pgdriver.Option{
		pgdriver.WithDSN(dsn),
		pgdriver.WithTimeout(timeout),
	}
	if cfg.RequireTLS {
		// Options apply in order, so this overrides any sslmode from the DSN.
		opts = append(opts, pgdriver.WithTLSConfig(&tls.Config{
			InsecureSkipVerify: cfg.TLSSkipVerify,
		}))
	}
	return opts
}

func setupDatabase(connType, dsn string, cfg config.DatabaseConfig, logger *zap.Logger) (*bun.DB, error) {
	pgConnector := pgdriver.NewConnector(connectorOptions(dsn, cfg)...)
	sqlTrace.Register("pgdriver", pgConnector.Driver(),
		sqlTrace.WithServiceName("gestion-platform-db"),
		sqlTrace.WithAnalytics(true),
	)
	dbConn := sqlTrace.OpenDB(pgConnector)
	dbConn.SetMaxOpenConns(cfg.MaxDBConns)
	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetConnMaxLifetime(time.Duration(cfg.MaxConnLifetime) * time.Second)
	dbConn.SetConnMaxIdleTime(time.Duration(cfg.MaxConnIdleTime) * time.Second)

	db := bun.NewDB(dbConn, pgdialect.New(), bun.WithDiscardUnknownColumns())
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", zap.String("type", connType), zap.Error(err))
		_ = db.Close()
		return nil, fmt.Errorf("pinging %s: %w", connType, err)
	}
	logger.Info(
		"successfully connected to database",
		zap.String("type", connType),
		zap.Bool("tls", cfg.RequireTLS),
		zap.Int("maxOpen", cfg.MaxDBConns),
		zap.Int("maxIdle", cfg.MaxIdleConns),
	)
	return db, nil
}

func (d *DB) Close() error {
	var errPrimary, errReplica error
	if d.PrimaryDb != nil {
		errPrimary = d.PrimaryDb.Close()
	}
	if d.ReplicaDb != nil {
		errReplica = d.ReplicaDb.Close()
	}
	return errors.Join(errPrimary, errReplica)
}

func (d *DB) PrimaryConn() *bun.DB {
	return d.PrimaryDb
}

func (d *DB) ReplicaConn() *bun.DB {
	if d.ReplicaDb == nil {
		return d.PrimaryDb
	}
	return d.ReplicaDb
}
