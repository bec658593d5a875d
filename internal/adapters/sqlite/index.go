package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"noteworthy/internal/domain"
	"noteworthy/internal/ports"
)

const schema = `
	CREATE TABLE objects (
		uuid TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		last_modified TEXT NOT NULL,
		parent TEXT NOT NULL,
		pinned INTEGER NOT NULL,
		object_type TEXT NOT NULL
	);
	CREATE INDEX idx_objects_parent ON objects(parent);
`

const rowColumns = `uuid, name, last_modified, parent, pinned, object_type`

// Snapshot is one fully built, immutable copy of the tree index
type Snapshot struct {
	db         *sql.DB
	generation uint64
	stats      domain.BuildStats
}

// Generation returns the build counter value this snapshot was created with
func (s *Snapshot) Generation() uint64 {
	return s.generation
}

// Stats returns the statistics of the build that produced this snapshot
func (s *Snapshot) Stats() domain.BuildStats {
	return s.stats
}

func (s *Snapshot) close() error {
	return s.db.Close()
}

// Index implements ports.TreeIndex over in-memory SQLite snapshots.
// Readers always see either the previous snapshot or the next complete one.
type Index struct {
	current    atomic.Pointer[Snapshot]
	generation atomic.Uint64
	log        *zap.Logger
}

// Ensure Index implements the index ports
var (
	_ ports.TreeReader   = (*Index)(nil)
	_ ports.IndexBuilder = (*Index)(nil)
)

// Option configures the Index
type Option func(*Index)

// WithLogger sets the logger used while building
func WithLogger(log *zap.Logger) Option {
	return func(idx *Index) {
		idx.log = log
	}
}

// NewIndex creates an index with no published snapshot
func NewIndex(opts ...Option) *Index {
	idx := &Index{log: zap.NewNop()}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Publish makes snap the snapshot served to readers and releases the old one
func (idx *Index) Publish(snap *Snapshot) {
	old := idx.current.Swap(snap)
	if old != nil && old != snap {
		if err := old.close(); err != nil {
			idx.log.Warn("failed to close index snapshot",
				zap.Uint64("generation", old.generation), zap.Error(err))
		}
	}
}

// Rebuild builds a snapshot from the descriptor files and publishes it
func (idx *Index) Rebuild(paths []string) (domain.BuildStats, error) {
	snap, err := idx.Build(paths)
	if err != nil {
		return domain.BuildStats{}, err
	}
	idx.Publish(snap)
	return snap.stats, nil
}

// Close releases the published snapshot. Later queries report
// domain.ErrIndexUninitialized.
func (idx *Index) Close() error {
	if old := idx.current.Swap(nil); old != nil {
		return old.close()
	}
	return nil
}

// Generation returns the generation of the published snapshot, 0 if none
func (idx *Index) Generation() uint64 {
	if snap := idx.current.Load(); snap != nil {
		return snap.generation
	}
	return 0
}

// Stats returns the build statistics of the published snapshot
func (idx *Index) Stats() (domain.BuildStats, bool) {
	if snap := idx.current.Load(); snap != nil {
		return snap.stats, true
	}
	return domain.BuildStats{}, false
}

// ChildrenOf returns the rows whose parent is id, ordered by name
func (idx *Index) ChildrenOf(id string) ([]domain.Row, error) {
	snap, err := idx.snapshot()
	if err != nil {
		return nil, err
	}

	return queryRows(snap.db, `
		SELECT `+rowColumns+`
		FROM objects WHERE parent = ?
		ORDER BY name COLLATE NOCASE, uuid
	`, id)
}

// ParentOf returns the parent row of id
func (idx *Index) ParentOf(id string) (domain.Row, bool, error) {
	if id == domain.RootID {
		return domain.Row{}, false, nil
	}

	row, ok, err := idx.Lookup(id)
	if err != nil || !ok {
		return domain.Row{}, false, err
	}

	if row.ParentID == domain.RootID {
		return domain.RootRow(), true, nil
	}

	parent, ok, err := idx.Lookup(row.ParentID)
	if err != nil {
		return domain.Row{}, false, err
	}
	if !ok {
		// Parent descriptor missing (e.g. trash): keep the reference walkable
		return domain.Row{ID: row.ParentID, Kind: domain.KindCollection}, true, nil
	}
	return parent, true, nil
}

// Lookup retrieves a single row by id
func (idx *Index) Lookup(id string) (domain.Row, bool, error) {
	snap, err := idx.snapshot()
	if err != nil {
		return domain.Row{}, false, err
	}

	row, err := scanRow(snap.db.QueryRow(`
		SELECT `+rowColumns+`
		FROM objects WHERE uuid = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Row{}, false, nil
	}
	if err != nil {
		return domain.Row{}, false, queryError(err)
	}
	return row, true, nil
}

// ErrorRows returns the rows whose descriptor had an unknown type
func (idx *Index) ErrorRows() ([]domain.Row, error) {
	snap, err := idx.snapshot()
	if err != nil {
		return nil, err
	}

	return queryRows(snap.db, `
		SELECT `+rowColumns+`
		FROM objects WHERE object_type = ?
		ORDER BY uuid
	`, domain.KindError.String())
}

func (idx *Index) snapshot() (*Snapshot, error) {
	snap := idx.current.Load()
	if snap == nil {
		return nil, domain.ErrIndexUninitialized
	}
	return snap, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(s rowScanner) (domain.Row, error) {
	var row domain.Row
	var kind string
	if err := s.Scan(&row.ID, &row.Name, &row.LastModified, &row.ParentID, &row.Pinned, &kind); err != nil {
		return domain.Row{}, err
	}
	row.Kind = domain.ParseKind(kind)
	return row, nil
}

func queryRows(db *sql.DB, query string, args ...any) ([]domain.Row, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, queryError(err)
	}
	defer rows.Close()

	var result []domain.Row
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, queryError(err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, queryError(err)
	}
	return result, nil
}

func queryError(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrIndexQuery, err)
}
