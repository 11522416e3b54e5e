package config

import (
	"fmt"
	"path/filepath"
)

// TargetDirType controls whether checked packages share one build-cache
// directory or each get a dedicated one. Sharing suits cold CI runs, where
// nothing is cached anyway; an isolated directory speeds up repeated local
// runs at the cost of disk space. It affects nothing but the cache path.
type TargetDirType string

const (
	TargetDirShared   TargetDirType = "shared"
	TargetDirIsolated TargetDirType = "isolated"
)

// String implements pflag.Value.
func (t TargetDirType) String() string { return string(t) }

// Set implements pflag.Value.
func (t *TargetDirType) Set(value string) error {
	switch TargetDirType(value) {
	case TargetDirShared, TargetDirIsolated:
		*t = TargetDirType(value)
		return nil
	}
	return fmt.Errorf("must be %q or %q", TargetDirShared, TargetDirIsolated)
}

// Type implements pflag.Value.
func (t TargetDirType) Type() string { return "target-dir-type" }

// Path returns the relative build-cache directory: "target" when shared,
// "target/<subdir>" when isolated.
func (t TargetDirType) Path(subdir string) string {
	if t == TargetDirIsolated {
		return filepath.Join("target", subdir)
	}
	return "target"
}
