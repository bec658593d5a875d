package commands

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"noteworthy/internal/application"
	"noteworthy/internal/domain"
)

func TestBuildIndexCommand_Execute(t *testing.T) {
	dir := t.TempDir()
	builder := &fakeBuilder{stats: domain.BuildStats{RowsInserted: 2, FilesSkipped: 1}}
	scanner := &fakeScanner{paths: []string{"a.metadata", "b.metadata", "c.metadata"}}

	result, err := NewBuildIndexCommand(builder, scanner, dir).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(builder.paths) != 3 {
		t.Errorf("expected all scanned paths passed to the builder, got %v", builder.paths)
	}
	if scanner.dirs[0] != dir {
		t.Errorf("scanned %q, want %q", scanner.dirs[0], dir)
	}
	if result.Stats.FilesScanned != 3 {
		t.Errorf("unexpected stats %+v", result.Stats)
	}
	if !strings.Contains(result.Message, "Indexed 2 objects from 3 descriptors, skipped 1") {
		t.Errorf("unexpected message %q", result.Message)
	}
}

func TestBuildIndexCommand_MissingDirectory(t *testing.T) {
	builder := &fakeBuilder{}
	cmd := NewBuildIndexCommand(builder, &fakeScanner{}, filepath.Join(t.TempDir(), "nope"))

	_, err := cmd.Execute(context.Background())
	var valErr *application.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if builder.paths != nil {
		t.Error("builder should not run for an invalid directory")
	}
}

func TestBuildIndexCommand_ErrorsWrapped(t *testing.T) {
	dir := t.TempDir()

	_, err := NewBuildIndexCommand(&fakeBuilder{}, &fakeScanner{err: errBoom}, dir).Execute(context.Background())
	if !errors.Is(err, errBoom) || !strings.Contains(err.Error(), "scan") {
		t.Errorf("expected wrapped scan error, got %v", err)
	}

	_, err = NewBuildIndexCommand(&fakeBuilder{err: errBoom}, &fakeScanner{}, dir).Execute(context.Background())
	if !errors.Is(err, errBoom) || !strings.Contains(err.Error(), "build") {
		t.Errorf("expected wrapped build error, got %v", err)
	}
}

func TestBuildIndexCommand_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	builder := &fakeBuilder{}
	_, err := NewBuildIndexCommand(builder, &fakeScanner{}, t.TempDir()).Execute(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestFormatStats(t *testing.T) {
	tests := []struct {
		name  string
		stats domain.BuildStats
		want  string
	}{
		{
			name:  "clean build",
			stats: domain.BuildStats{FilesScanned: 4, RowsInserted: 4},
			want:  "Indexed 4 objects from 4 descriptors",
		},
		{
			name:  "error rows",
			stats: domain.BuildStats{FilesScanned: 4, RowsInserted: 4, ErrorRows: 1},
			want:  "Indexed 4 objects from 4 descriptors, 1 unrecognized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatStats(tt.stats); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
