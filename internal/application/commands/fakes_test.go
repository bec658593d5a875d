package commands

import (
	"context"
	"errors"

	"noteworthy/internal/domain"
)

type fakeBuilder struct {
	paths []string
	stats domain.BuildStats
	err   error
}

func (f *fakeBuilder) Rebuild(paths []string) (domain.BuildStats, error) {
	f.paths = paths
	if f.err != nil {
		return domain.BuildStats{}, f.err
	}
	stats := f.stats
	stats.FilesScanned = len(paths)
	return stats, nil
}

type fakeScanner struct {
	paths []string
	err   error
	dirs  []string
}

func (f *fakeScanner) Scan(dir string) ([]string, error) {
	f.dirs = append(f.dirs, dir)
	return f.paths, f.err
}

type fakeSyncer struct {
	available bool
	err       error
	calls     int
}

func (f *fakeSyncer) Sync(ctx context.Context) error {
	f.calls++
	return f.err
}

func (f *fakeSyncer) IsAvailable() bool { return f.available }

// fakeTree is an in-memory remote index keyed by parent id
type fakeTree struct {
	rows map[string]domain.Row
	err  error
}

func newFakeTree(rows ...domain.Row) *fakeTree {
	t := &fakeTree{rows: make(map[string]domain.Row)}
	for _, r := range rows {
		t.rows[r.ID] = r
	}
	return t
}

func (f *fakeTree) ChildrenOf(id string) ([]domain.Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Row
	for _, r := range f.rows {
		if r.ParentID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeTree) ParentOf(id string) (domain.Row, bool, error) {
	r, ok := f.rows[id]
	if !ok {
		return domain.Row{}, false, nil
	}
	if p, ok := f.rows[r.ParentID]; ok {
		return p, true, nil
	}
	return domain.RootRow(), true, nil
}

func (f *fakeTree) Lookup(id string) (domain.Row, bool, error) {
	if f.err != nil {
		return domain.Row{}, false, f.err
	}
	r, ok := f.rows[id]
	return r, ok, nil
}

type fakeSource struct {
	root  string
	nodes []domain.Node
	refs  []string
}

func (f *fakeSource) Root() string { return f.root }

func (f *fakeSource) Canonical(ref string) string { return ref }

func (f *fakeSource) Resolve(ref string) ([]domain.Node, error) {
	f.refs = append(f.refs, ref)
	if ref == "missing" {
		return nil, &domain.ResolveError{Ref: ref, Err: domain.ErrIOFailure}
	}
	return f.nodes, nil
}

var errBoom = errors.New("boom")
