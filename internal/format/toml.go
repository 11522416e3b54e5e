package format

import (
	"fmt"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// formatTOML canonicalizes TOML through a decode/re-marshal round trip.
// go-toml emits map keys deterministically (plain values before tables, each
// group lexically sorted), and sortArrays orders array elements, so the
// canonical form normalizes key order and array order, not just whitespace.
// Comments do not survive canonicalization; that is this binding's policy.
func formatTOML(contents string) (string, error) {
	if strings.TrimSpace(contents) == "" {
		return contents, nil
	}
	var doc map[string]any
	if err := toml.Unmarshal([]byte(contents), &doc); err != nil {
		return "", fmt.Errorf("parsing TOML: %w", err)
	}
	sortArrays(doc)
	out, err := toml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("formatting TOML: %w", err)
	}
	return string(out), nil
}

// sortArrays orders homogeneous scalar arrays in place, recursing into
// tables, array elements and nested arrays. Arrays with mixed or non-scalar
// elements keep their original order.
func sortArrays(v any) {
	switch v := v.(type) {
	case map[string]any:
		for _, elem := range v {
			sortArrays(elem)
		}
	case []any:
		for _, elem := range v {
			sortArrays(elem)
		}
		sort.SliceStable(v, func(i, j int) bool { return scalarLess(v[i], v[j]) })
	}
}

func scalarLess(a, b any) bool {
	switch a := a.(type) {
	case string:
		b, ok := b.(string)
		return ok && a < b
	case int64:
		b, ok := b.(int64)
		return ok && a < b
	case float64:
		b, ok := b.(float64)
		return ok && a < b
	case bool:
		b, ok := b.(bool)
		return ok && !a && b
	}
	return false
}
