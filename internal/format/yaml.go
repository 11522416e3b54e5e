package format

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlIndent is the indent width of the canonical form.
const yamlIndent = 2

// formatYAML canonicalizes YAML through a node round trip, which keeps
// comments, key order and block/flow style intact while normalizing
// indentation and spacing. Input that is not valid YAML fails with a parse
// error, distinguishing "not even parseable" from "not formatted".
func formatYAML(contents string) (string, error) {
	if strings.TrimSpace(contents) == "" {
		return contents, nil
	}
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(contents), &node); err != nil {
		return "", fmt.Errorf("parsing YAML: %w", err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(&node); err != nil {
		return "", fmt.Errorf("formatting YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("formatting YAML: %w", err)
	}
	return buf.String(), nil
}
