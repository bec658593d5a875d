package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"noteworthy/internal/adapters/descriptor"
	"noteworthy/internal/adapters/filesystem"
	"noteworthy/internal/adapters/remote"
	"noteworthy/internal/adapters/sqlite"
)

type fixture struct {
	local       string
	descriptors string
	index       *sqlite.Index
}

func setup(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{local: t.TempDir(), descriptors: t.TempDir(), index: sqlite.NewIndex()}
	t.Cleanup(func() { f.index.Close() })

	if err := os.Mkdir(filepath.Join(f.local, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(f.local, "notes.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	files := map[string]string{
		"A": "\"parent\": \"\",\n\"type\": \"CollectionType\",\n\"visibleName\": \"Notes\"\n",
		"B": "\"parent\": \"A\",\n\"type\": \"DocumentType\",\n\"visibleName\": \"todo\"\n",
		"T": "\"lastModified\": \"1680000000000\",\n\"parent\": \"A\",\n\"type\": \"TemplateType\",\n\"visibleName\": \"broken\"\n",
	}
	for id, content := range files {
		if err := os.WriteFile(filepath.Join(f.descriptors, id+descriptor.Extension), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return f
}

func (f *fixture) build(t *testing.T) {
	t.Helper()

	paths, err := descriptor.Glob(f.descriptors)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.index.Rebuild(paths); err != nil {
		t.Fatal(err)
	}
}

func (f *fixture) deps() ReadDeps {
	return ReadDeps{
		Local:  filesystem.NewSource(),
		Remote: remote.NewSource(f.index),
		Index:  f.index,
		Status: f.index,
	}
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	result, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if len(result.Content) == 0 {
		t.Fatal("empty result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text, result.IsError
}

func TestListLocal(t *testing.T) {
	f := setup(t)

	out, isErr := call(t, listHandler(f.deps().Local, "path"), map[string]any{"path": f.local})
	if isErr {
		t.Fatalf("unexpected error: %s", out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 entries, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "parent") || !strings.Contains(lines[1], "sub") || !strings.Contains(lines[2], "notes.txt") {
		t.Errorf("unexpected order:\n%s", out)
	}
}

func TestListLocal_Unreadable(t *testing.T) {
	f := setup(t)

	out, isErr := call(t, listHandler(f.deps().Local, "path"), map[string]any{"path": filepath.Join(f.local, "missing")})
	if !isErr || !strings.Contains(out, "missing") {
		t.Errorf("expected tool error, got %q", out)
	}
}

func TestListRemote(t *testing.T) {
	f := setup(t)

	out, isErr := call(t, listHandler(f.deps().Remote, "id"), nil)
	if !isErr || !strings.Contains(out, "index not initialized") {
		t.Errorf("expected uninitialized error before build, got %q", out)
	}

	f.build(t)

	out, _ = call(t, listHandler(f.deps().Remote, "id"), nil)
	if !strings.Contains(out, "collection") || !strings.Contains(out, "Notes") {
		t.Errorf("unexpected root listing %q", out)
	}

	out, _ = call(t, listHandler(f.deps().Remote, "id"), map[string]any{"id": "A"})
	if !strings.Contains(out, "todo") || strings.Contains(out, "broken") {
		t.Errorf("unexpected listing of A %q", out)
	}
}

func TestTree(t *testing.T) {
	f := setup(t)
	f.build(t)

	out, isErr := call(t, treeHandler(f.index), nil)
	if isErr {
		t.Fatalf("unexpected error: %s", out)
	}
	want := "/Notes  [A]\n  todo  [B]\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestIndexStats(t *testing.T) {
	f := setup(t)

	if out, isErr := call(t, indexStatsHandler(f.index), nil); !isErr {
		t.Errorf("expected error before build, got %q", out)
	}

	f.build(t)
	out, isErr := call(t, indexStatsHandler(f.index), nil)
	if isErr {
		t.Fatalf("unexpected error: %s", out)
	}
	for _, want := range []string{"files scanned: 3", "rows: 3", "unrecognized: 1", "T  broken  2023-03-28 10:40:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats missing %q:\n%s", want, out)
		}
	}
}

func TestRebuildIndex(t *testing.T) {
	f := setup(t)
	deps := IndexDeps{Builder: f.index, Scanner: descriptor.Scanner{}, DescriptorDir: f.descriptors}

	out, isErr := call(t, rebuildHandler(deps), nil)
	if isErr {
		t.Fatalf("unexpected error: %s", out)
	}
	if !strings.HasPrefix(out, "Indexed 3 objects") {
		t.Errorf("unexpected message %q", out)
	}
	if f.index.Generation() == 0 {
		t.Error("expected a published snapshot")
	}
}

func TestSync_Unavailable(t *testing.T) {
	f := setup(t)
	deps := IndexDeps{Builder: f.index, Scanner: descriptor.Scanner{}, DescriptorDir: f.descriptors}

	out, isErr := call(t, syncHandler(deps), nil)
	if !isErr || !strings.Contains(out, "no sync command configured") {
		t.Errorf("expected sync unavailable error, got %q", out)
	}
}
