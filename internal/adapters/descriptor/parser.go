// Package descriptor reads the per-object sidecar metadata files that
// describe the remote document tree.
package descriptor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"noteworthy/internal/domain"
)

// Extension is the file extension of descriptor files
const Extension = ".metadata"

// Glob returns every descriptor file directly inside dir, sorted by name
func Glob(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*"+Extension))
	if err != nil {
		return nil, fmt.Errorf("invalid descriptor directory %q: %w", dir, err)
	}
	return paths, nil
}

// Scanner implements ports.DescriptorScanner on top of Glob
type Scanner struct{}

// Scan returns the descriptor files in dir
func (Scanner) Scan(dir string) ([]string, error) {
	return Glob(dir)
}

// IdentifierFromPath derives the object id from a descriptor's file name
func IdentifierFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseFile reads one descriptor file into a row
func ParseFile(path string) (domain.Row, error) {
	id := IdentifierFromPath(path)
	if id == "" || id == "." {
		return domain.Row{}, fmt.Errorf("no identifier in descriptor name %q", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Row{}, &domain.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	row, err := Parse(id, f)
	if err != nil {
		return domain.Row{}, &domain.IOError{Op: "read", Path: path, Err: err}
	}
	return row, nil
}

// Parse extracts the recognized keys from descriptor content.
// Unknown keys and lines without a key/value separator are ignored.
func Parse(id string, r io.Reader) (domain.Row, error) {
	row := domain.Row{
		ID:       id,
		ParentID: domain.RootID,
		Kind:     domain.KindError,
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := splitLine(scanner.Text())
		if !ok {
			continue
		}

		switch key {
		case "lastModified":
			row.LastModified = value
		case "parent":
			if value == "" {
				row.ParentID = domain.RootID
			} else {
				row.ParentID = value
			}
		case "pinned":
			pinned, err := strconv.ParseBool(value)
			row.Pinned = err == nil && pinned
		case "type":
			row.Kind = domain.ParseKind(value)
		case "visibleName":
			row.Name = value
		}
	}

	return row, scanner.Err()
}

// splitLine turns `"key": "value",` into key and value
func splitLine(line string) (key, value string, ok bool) {
	k, v, found := strings.Cut(strings.TrimSpace(line), ":")
	if !found {
		return "", "", false
	}

	key = strings.Trim(strings.TrimSpace(k), `"`)
	value = strings.TrimSpace(v)
	value = strings.TrimSuffix(value, ",")
	value = strings.TrimSpace(value)
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return key, value, key != ""
}
