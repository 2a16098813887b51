package internal

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gooseboy/gooseboy/internal/artifact"
	"github.com/gooseboy/gooseboy/internal/cargo"
	"github.com/gooseboy/gooseboy/internal/install"
)

// Exit codes, one per pipeline stage, so scripts can tell a compile failure
// apart from a packaging failure.
const (
	exitUsage   = 1
	exitBuild   = 2
	exitLocate  = 3
	exitInstall = 4
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "gooseboy",
	Version:       "1.0.0",
	Short:         "gooseboy builds and installs game-mod plugin crates",
	Long:          `gooseboy compiles a plugin crate with cargo and installs the resulting dynamic library into the mod directory the game loads plugins from.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command and exits nonzero on failure, with the exit
// code identifying which pipeline stage failed.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gooseboy:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps a pipeline error to its stage's exit code.
func exitCode(err error) int {
	var (
		compileErr   *cargo.CompileError
		notFoundErr  *artifact.NotFoundError
		ambiguousErr *artifact.AmbiguousError
	)
	switch {
	case errors.Is(err, cargo.ErrToolchainMissing),
		errors.Is(err, cargo.ErrInvalidCrate),
		errors.As(err, &compileErr):
		return exitBuild
	case errors.As(err, &notFoundErr),
		errors.As(err, &ambiguousErr):
		return exitLocate
	case errors.Is(err, install.ErrDestinationUnavailable),
		errors.Is(err, install.ErrCopyFailed):
		return exitInstall
	}
	return exitUsage
}
