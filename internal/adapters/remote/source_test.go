package remote

import (
	"errors"
	"reflect"
	"testing"

	"noteworthy/internal/domain"
)

// fakeIndex serves rows from memory
type fakeIndex struct {
	rows     []domain.Row
	queryErr error
}

func (f *fakeIndex) ChildrenOf(id string) ([]domain.Row, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var out []domain.Row
	for _, r := range f.rows {
		if r.ParentID == id {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeIndex) ParentOf(id string) (domain.Row, bool, error) {
	if f.queryErr != nil {
		return domain.Row{}, false, f.queryErr
	}
	for _, r := range f.rows {
		if r.ID != id {
			continue
		}
		if r.ParentID == domain.RootID {
			return domain.RootRow(), true, nil
		}
		for _, p := range f.rows {
			if p.ID == r.ParentID {
				return p, true, nil
			}
		}
	}
	return domain.Row{}, false, nil
}

func notesIndex() *fakeIndex {
	return &fakeIndex{rows: []domain.Row{
		{ID: "A", Name: "Notes", ParentID: domain.RootID, Kind: domain.KindCollection},
		{ID: "B", Name: "todo", ParentID: "A", Kind: domain.KindDocument},
		{ID: "C", Name: "Archive", ParentID: "A", Kind: domain.KindCollection},
		{ID: "T", Name: "broken", ParentID: "A", Kind: domain.KindError},
		{ID: "D", Name: "deep", ParentID: "C", Kind: domain.KindDocument},
	}}
}

func TestResolve_Root(t *testing.T) {
	nodes, err := NewSource(notesIndex()).Resolve(domain.RootID)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := []domain.Node{{Name: "Notes", ID: "A", Kind: domain.KindCollection}}
	if !reflect.DeepEqual(nodes, want) {
		t.Errorf("got %+v, want %+v", nodes, want)
	}
}

func TestResolve_ChildWithParentLink(t *testing.T) {
	nodes, err := NewSource(notesIndex()).Resolve("A")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	want := []domain.Node{
		{ID: domain.RootID, Kind: domain.KindParentLink},
		{Name: "Archive", ID: "C", Kind: domain.KindCollection},
		{Name: "todo", ID: "B", Kind: domain.KindDocument},
	}
	if !reflect.DeepEqual(nodes, want) {
		t.Errorf("got %+v\nwant %+v", nodes, want)
	}
}

func TestResolve_NestedParentLink(t *testing.T) {
	nodes, err := NewSource(notesIndex()).Resolve("C")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if nodes[0].Kind != domain.KindParentLink || nodes[0].ID != "A" {
		t.Errorf("expected parent link to A, got %+v", nodes[0])
	}
}

func TestResolve_UnknownRefLinksToRoot(t *testing.T) {
	nodes, err := NewSource(notesIndex()).Resolve("vanished")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(nodes) != 1 || nodes[0].ID != domain.RootID {
		t.Errorf("expected only a parent link to root, got %+v", nodes)
	}
}

func TestResolve_NilIndex(t *testing.T) {
	_, err := NewSource(nil).Resolve(domain.RootID)
	if !errors.Is(err, domain.ErrIndexUninitialized) {
		t.Errorf("expected uninitialized, got %v", err)
	}
}

func TestResolve_QueryFailure(t *testing.T) {
	idx := &fakeIndex{queryErr: domain.ErrIndexQuery}

	_, err := NewSource(idx).Resolve(domain.RootID)
	if !errors.Is(err, domain.ErrIndexQuery) {
		t.Errorf("expected query failure, got %v", err)
	}
}

func TestCanonical(t *testing.T) {
	src := NewSource(notesIndex())
	if src.Root() != domain.RootID {
		t.Fatalf("expected root %q, got %q", domain.RootID, src.Root())
	}

	if got := src.Canonical(""); got != domain.RootID {
		t.Errorf("blank reference: got %q, want root", got)
	}
	if got := src.Canonical("A"); got != "A" {
		t.Errorf("object id should be unchanged, got %q", got)
	}
}
