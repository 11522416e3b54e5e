package format

import (
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/futureCreator/checkrun/internal/log"
)

// DriftError reports a file whose on-disk content did not match its canonical
// form. The file has already been rewritten when this is returned; the run
// still fails so the commit that introduced the drift is caught in CI, while
// a local rerun starts from the fixed file.
type DriftError struct {
	Path string
}

func (e *DriftError) Error() string {
	return fmt.Sprintf("%q wasn't formatted correctly and has been formatted", e.Path)
}

// VerifyFiles checks that each file is canonically formatted, in order,
// stopping at the first failure. A file that fails to resolve, read or parse
// is logged and fails the run with the remaining paths untouched. A file that
// merely drifted is rewritten in place and fails the run with a *DriftError.
// An empty path list trivially passes; a full pass logs one success record.
func VerifyFiles(lg *log.Logger, paths []string) error {
	for _, path := range paths {
		ft, err := ResolveType(path)
		if err != nil {
			lg.Error("cannot determine the file type", zap.Error(err))
			return err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			err = fmt.Errorf("reading the contents of %q: %w", path, err)
			lg.Error("cannot read the file", zap.Error(err))
			return err
		}
		if !utf8.Valid(raw) {
			err = fmt.Errorf("%q is not valid UTF-8", path)
			lg.Error("cannot read the file", zap.Error(err))
			return err
		}
		contents := string(raw)
		formatted, err := ft.Format(contents)
		if err != nil {
			err = fmt.Errorf("formatting the contents of %q: %w", path, err)
			lg.Error("cannot format the file", zap.Error(err))
			return err
		}
		if formatted == contents {
			continue
		}
		if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
			err = fmt.Errorf("overwriting %q with its reformatted version: %w", path, err)
			lg.Error("cannot rewrite the file", zap.Error(err))
			return err
		}
		driftErr := &DriftError{Path: path}
		lg.Error(driftErr.Error())
		return driftErr
	}
	lg.Info("All the files are formatted correctly.")
	return nil
}
