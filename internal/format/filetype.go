// Package format canonicalizes repository metadata files and verifies that
// the on-disk content already matches the canonical form.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// FileType identifies a file format the engine can canonicalize.
type FileType int

const (
	TOML FileType = iota
	YAML
)

func (t FileType) String() string {
	switch t {
	case TOML:
		return "TOML"
	case YAML:
		return "YAML"
	}
	return fmt.Sprintf("FileType(%d)", int(t))
}

var (
	ErrMissingExtension     = errors.New("file has no extension")
	ErrNonUTF8Extension     = errors.New("file extension is not valid UTF-8")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
)

// ResolveType determines the FileType from the path's extension. The result
// is recomputed per file and never cached.
func ResolveType(path string) (FileType, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%q: %w", path, ErrMissingExtension)
	}
	if !utf8.ValidString(ext) {
		return 0, fmt.Errorf("%q: %w", path, ErrNonUTF8Extension)
	}
	switch ext {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%q: %w", path, ErrUnsupportedExtension)
}

// formatters maps each FileType to its pure formatting function. Adding a
// file type means adding an entry here; call sites dispatch through Format.
var formatters = map[FileType]func(string) (string, error){
	TOML: formatTOML,
	YAML: formatYAML,
}

// Format returns the canonical form of contents for this file type. It is
// idempotent: formatting already-canonical content returns it unchanged,
// which is what lets the verifier equate "canonical" with "formatted".
func (t FileType) Format(contents string) (string, error) {
	fn, ok := formatters[t]
	if !ok {
		return "", fmt.Errorf("no formatter bound for %s", t)
	}
	return fn(contents)
}
