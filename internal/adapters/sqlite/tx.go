package sqlite

import (
	"database/sql"

	"noteworthy/internal/domain"
)

// buildTx inserts rows into a snapshot that is not yet published
type buildTx struct {
	tx   *sql.Tx
	stmt *sql.Stmt
}

func beginBuild(db *sql.DB) (*buildTx, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO objects (` + rowColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	return &buildTx{tx: tx, stmt: stmt}, nil
}

// InsertRow adds one descriptor row
func (t *buildTx) InsertRow(row domain.Row) error {
	_, err := t.stmt.Exec(row.ID, row.Name, row.LastModified, row.ParentID, row.Pinned, row.Kind.String())
	return err
}

// Commit commits the transaction
func (t *buildTx) Commit() error {
	t.stmt.Close()
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *buildTx) Rollback() error {
	t.stmt.Close()
	return t.tx.Rollback()
}
