package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/futureCreator/checkrun/internal/config"
	"github.com/futureCreator/checkrun/internal/executor"
	"github.com/futureCreator/checkrun/internal/format"
	"github.com/futureCreator/checkrun/internal/log"
	"github.com/futureCreator/checkrun/internal/pipeline"
)

var (
	targetDirType = config.TargetDirShared
	ciVerbose     bool
)

var ciCmd = &cobra.Command{
	Use:   "ci",
	Short: "Run the CI pipeline",
	RunE:  runCI,
}

func init() {
	ciCmd.Flags().VarP(&targetDirType, "target-dir-type", "t",
		`build cache layout, "shared" or "isolated"`)
	ciCmd.Flags().BoolVarP(&ciVerbose, "verbose", "v", false,
		"plain step output and debug logging")
	rootCmd.AddCommand(ciCmd)
}

// fmtGuard lists unformatted Go files and exits non-zero when any exist, so
// the step outcome follows the exit status like every other command.
const fmtGuard = `unformatted=$(gofmt -l .); if [ -n "$unformatted" ]; then echo "$unformatted"; exit 1; fi`

// The doc builds load every package through go doc, which fails when a
// package or its comments cannot be processed. Stdout carries the rendered
// docs and is discarded; errors arrive on stderr and in the exit status.
const (
	docGuard        = `go list ./... | xargs -n 1 go doc -all >/dev/null`
	docPrivateGuard = `go list ./... | xargs -n 1 go doc -all -u >/dev/null`
)

func runCI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := cfg.LogLevel
	if ciVerbose {
		level = "debug"
	}
	lg := log.New(level)
	defer lg.Sync()

	cacheDir, err := filepath.Abs(targetDirType.Path(cfg.Package))
	if err != nil {
		return fmt.Errorf("resolving build cache dir: %w", err)
	}
	runner := &executor.Runner{Env: []string{"GOCACHE=" + cacheDir}}

	disp := pipeline.NewDisplay(ciVerbose)
	disp.Header(cfg.Package)

	engine := &pipeline.Engine{Log: lg, Display: disp}
	if err := engine.Execute(cmd.Context(), buildSteps(cfg, runner, engine)); err != nil {
		var launchErr *executor.LaunchError
		if errors.As(err, &launchErr) {
			return fmt.Errorf("environment is broken: %w", err)
		}
		return err
	}
	return nil
}

// buildSteps assembles the fixed pipeline: the per-package checks grouped
// under one scope, then the dependency audit, then the metadata-file
// formatting verification.
func buildSteps(cfg *config.Config, runner *executor.Runner, engine *pipeline.Engine) []pipeline.Step {
	vet := pipeline.Step{
		Name: "Vet",
		Run: func(ctx context.Context, lg *log.Logger) error {
			return runner.Run(ctx, lg, executor.Command{
				Program:     "go",
				Args:        []string{"vet", "./..."},
				Description: "Checking the source code.",
			})
		},
	}

	docs := pipeline.Step{
		Name: "Docs",
		Run: func(ctx context.Context, lg *log.Logger) error {
			if err := runner.Run(ctx, lg, executor.Command{
				Program:     "sh",
				Args:        []string{"-c", docGuard},
				Description: "Generating the public documentation.",
			}); err != nil {
				return err
			}
			return runner.Run(ctx, lg, executor.Command{
				Program:     "sh",
				Args:        []string{"-c", docPrivateGuard},
				Description: "Generating the private documentation.",
			})
		},
	}

	fmtCheck := pipeline.Step{
		Name: "Format",
		Run: func(ctx context.Context, lg *log.Logger) error {
			return runner.Run(ctx, lg, executor.Command{
				Program:     "sh",
				Args:        []string{"-c", fmtGuard},
				Description: "Checking the formatting of the code.",
			})
		},
	}

	deps := pipeline.Step{
		Name: "Dependencies",
		Run: func(ctx context.Context, lg *log.Logger) error {
			if err := runner.Run(ctx, lg, executor.Command{
				Program:     "go",
				Args:        []string{"install", "golang.org/x/vuln/cmd/govulncheck@" + cfg.GovulncheckVersion},
				Description: "Installing govulncheck.",
			}); err != nil {
				return err
			}
			return runner.Run(ctx, lg, executor.Command{
				Program:     "govulncheck",
				Args:        []string{"./..."},
				Description: "Checking the dependencies for known vulnerabilities.",
			})
		},
	}

	formatting := pipeline.Step{
		Name: "Formatting",
		Run: func(ctx context.Context, lg *log.Logger) error {
			return format.VerifyFiles(lg, cfg.FormatFiles)
		},
	}

	return []pipeline.Step{
		engine.Group("Check "+cfg.Package, vet, docs, fmtCheck),
		deps,
		formatting,
	}
}
