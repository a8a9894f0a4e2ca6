package db

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

// DB satisfies bun.IDB by routing every write and default read to the
// primary handle. Replica reads go through the Replica* helpers only.
var _ bun.IDB = (*DB)(nil)

func (d *DB) Dialect() schema.Dialect { return d.PrimaryConn().Dialect() }

func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (bun.Tx, error) {
	return d.PrimaryConn().BeginTx(ctx, opts)
}

func (d *DB) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	return d.PrimaryConn().RunInTx(ctx, opts, f)
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.PrimaryConn().ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return d.PrimaryConn().QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return d.PrimaryConn().QueryRowContext(ctx, query, args...)
}

func (d *DB) NewValues(model any) *bun.ValuesQuery      { return d.PrimaryConn().NewValues(model) }
func (d *DB) NewSelect() *bun.SelectQuery               { return d.PrimaryConn().NewSelect() }
func (d *DB) NewInsert() *bun.InsertQuery               { return d.PrimaryConn().NewInsert() }
func (d *DB) NewUpdate() *bun.UpdateQuery               { return d.PrimaryConn().NewUpdate() }
func (d *DB) NewDelete() *bun.DeleteQuery               { return d.PrimaryConn().NewDelete() }
func (d *DB) NewMerge() *bun.MergeQuery                 { return d.PrimaryConn().NewMerge() }
func (d *DB) NewCreateTable() *bun.CreateTableQuery     { return d.PrimaryConn().NewCreateTable() }
func (d *DB) NewDropTable() *bun.DropTableQuery         { return d.PrimaryConn().NewDropTable() }
func (d *DB) NewCreateIndex() *bun.CreateIndexQuery     { return d.PrimaryConn().NewCreateIndex() }
func (d *DB) NewDropIndex() *bun.DropIndexQuery         { return d.PrimaryConn().NewDropIndex() }
func (d *DB) NewTruncateTable() *bun.TruncateTableQuery { return d.PrimaryConn().NewTruncateTable() }
func (d *DB) NewAddColumn() *bun.AddColumnQuery         { return d.PrimaryConn().NewAddColumn() }
func (d *DB) NewDropColumn() *bun.DropColumnQuery       { return d.PrimaryConn().NewDropColumn() }

func (d *DB) NewRaw(query string, args ...any) *bun.RawQuery {
	return d.PrimaryConn().NewRaw(query, args...)
}

// ReplicaNewSelect reads from the replica, or the primary when none is configured.
func (d *DB) ReplicaNewSelect() *bun.SelectQuery {
	return d.ReplicaConn().NewSelect()
}
