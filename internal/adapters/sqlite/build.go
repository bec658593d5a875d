package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"noteworthy/internal/adapters/descriptor"
	"noteworthy/internal/domain"
)

// Build parses every descriptor file into a new snapshot without publishing it.
// Unreadable descriptors are skipped; only storage failures abort the build.
func (idx *Index) Build(paths []string) (*Snapshot, error) {
	start := time.Now()
	stats := domain.BuildStats{}

	db, err := openMemory()
	if err != nil {
		return nil, err
	}

	tx, err := beginBuild(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexQuery, err)
	}

	for _, path := range paths {
		stats.FilesScanned++

		row, err := descriptor.ParseFile(path)
		if err != nil {
			stats.FilesSkipped++
			idx.log.Debug("skipping descriptor", zap.String("path", path), zap.Error(err))
			continue
		}

		if err := tx.InsertRow(row); err != nil {
			stats.FilesSkipped++
			idx.log.Debug("failed to insert descriptor row", zap.String("id", row.ID), zap.Error(err))
			continue
		}

		stats.RowsInserted++
		if row.Kind == domain.KindError {
			stats.ErrorRows++
		}
	}

	if err := tx.Commit(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrIndexQuery, err)
	}

	stats.Duration = time.Since(start)
	snap := &Snapshot{
		db:         db,
		generation: idx.generation.Add(1),
		stats:      stats,
	}

	idx.log.Debug("built index snapshot",
		zap.Uint64("generation", snap.generation),
		zap.Int("files", stats.FilesScanned),
		zap.Int("rows", stats.RowsInserted),
		zap.Int("skipped", stats.FilesSkipped),
		zap.Int("error_rows", stats.ErrorRows),
		zap.Duration("duration", stats.Duration))

	return snap, nil
}

// openMemory opens a private in-memory database.
// A single connection keeps every statement on the same database.
func openMemory() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}
	return db, nil
}
