package db

import (
	"errors"
	"fmt"
	"regexp"

	migrate "github.com/golang-migrate/migrate/v4"
	// Registers the postgres database driver and the file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

var passwordInDSN = regexp.MustCompile(`(://[^:/@]+:)([^@]+)(@)`)

// MaskDSN hides the password part of a URL style connection string.
func MaskDSN(dsn string) string {
	return passwordInDSN.ReplaceAllString(dsn, "${1}***${3}")
}

// Migrate applies every pending up migration from source to the database at dsn.
func Migrate(dsn, source string, logger *zap.Logger) error {
	if dsn == "" {
		return ErrMissingConnectionString
	}
	m, err := migrate.New(source, dsn)
	if err != nil {
		return fmt.Errorf("open migrations %s: %w", source, err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.Warn("failed to close migrator", zap.NamedError("source", srcErr), zap.NamedError("database", dbErr))
		}
	}()

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	version, dirty, _ := m.Version()
	logger.Info("database schema is up to date",
		zap.String("dsn", MaskDSN(dsn)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}
