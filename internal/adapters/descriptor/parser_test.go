package descriptor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"noteworthy/internal/domain"
)

const sampleDescriptor = `{
    "deleted": false,
    "lastModified": "1680000000000",
    "metadatamodified": false,
    "modified": false,
    "parent": "A",
    "pinned": true,
    "synced": true,
    "type": "DocumentType",
    "version": 3,
    "visibleName": "todo: groceries"
}
`

func writeDescriptor(t *testing.T, dir, id, content string) string {
	t.Helper()

	path := filepath.Join(dir, id+Extension)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write descriptor: %v", err)
	}
	return path
}

func TestParse_RecognizedKeys(t *testing.T) {
	row, err := Parse("B", strings.NewReader(sampleDescriptor))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if row.ID != "B" {
		t.Errorf("expected id B, got %q", row.ID)
	}
	if row.ParentID != "A" {
		t.Errorf("expected parent A, got %q", row.ParentID)
	}
	if row.Kind != domain.KindDocument {
		t.Errorf("expected document kind, got %v", row.Kind)
	}
	if !row.Pinned {
		t.Error("expected pinned to be true")
	}
	if row.LastModified != "1680000000000" {
		t.Errorf("unexpected lastModified %q", row.LastModified)
	}
	if row.Name != "todo: groceries" {
		t.Errorf("expected name with colon preserved, got %q", row.Name)
	}
}

func TestParse_Defaults(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantParent string
		wantKind   domain.Kind
		wantPinned bool
	}{
		{
			name:       "blank parent maps to root",
			content:    `"parent": "",` + "\n" + `"type": "CollectionType",`,
			wantParent: domain.RootID,
			wantKind:   domain.KindCollection,
		},
		{
			name:       "missing parent maps to root",
			content:    `"type": "DocumentType"`,
			wantParent: domain.RootID,
			wantKind:   domain.KindDocument,
		},
		{
			name:       "unknown type is error kind",
			content:    `"parent": "X",` + "\n" + `"type": "TemplateType",`,
			wantParent: "X",
			wantKind:   domain.KindError,
		},
		{
			name:       "missing type is error kind",
			content:    `"visibleName": "orphan"`,
			wantParent: domain.RootID,
			wantKind:   domain.KindError,
		},
		{
			name:       "bad pinned defaults to false",
			content:    `"pinned": maybe,` + "\n" + `"type": "DocumentType"`,
			wantParent: domain.RootID,
			wantKind:   domain.KindDocument,
			wantPinned: false,
		},
		{
			name:       "unquoted trailing value",
			content:    `"pinned": true`,
			wantParent: domain.RootID,
			wantKind:   domain.KindError,
			wantPinned: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := Parse("id", strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if row.ParentID != tt.wantParent {
				t.Errorf("parent: got %q, want %q", row.ParentID, tt.wantParent)
			}
			if row.Kind != tt.wantKind {
				t.Errorf("kind: got %v, want %v", row.Kind, tt.wantKind)
			}
			if row.Pinned != tt.wantPinned {
				t.Errorf("pinned: got %v, want %v", row.Pinned, tt.wantPinned)
			}
		})
	}
}

func TestParseFile_IdentifierFromName(t *testing.T) {
	dir := t.TempDir()
	path := writeDescriptor(t, dir, "0b3c2f7e-uuid", "\"visibleName\": \"Notes\",\n\"type\": \"CollectionType\"\n")

	row, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile failed: %v", err)
	}
	if row.ID != "0b3c2f7e-uuid" {
		t.Errorf("expected id from file name, got %q", row.ID)
	}
	if row.Name != "Notes" || row.Kind != domain.KindCollection {
		t.Errorf("unexpected row %+v", row)
	}
}

func TestParseFile_Unreadable(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing"+Extension))
	if !errors.Is(err, domain.ErrIOFailure) {
		t.Errorf("expected io failure, got %v", err)
	}
}

func TestParseFile_NoIdentifier(t *testing.T) {
	dir := t.TempDir()
	path := writeDescriptor(t, dir, "", `"type": "DocumentType"`)

	if _, err := ParseFile(path); err == nil {
		t.Error("expected error for descriptor without identifier")
	}
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "b", "")
	writeDescriptor(t, dir, "a", "")
	if err := os.WriteFile(filepath.Join(dir, "a.content"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	paths, err := Glob(dir)
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(paths))
	}
	if filepath.Base(paths[0]) != "a.metadata" {
		t.Errorf("expected sorted output, got %v", paths)
	}
}
