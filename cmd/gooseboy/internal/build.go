package internal

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gooseboy/gooseboy/internal/cargo"
)

var (
	buildRelease bool
	buildTarget  string
)

var buildCmd = &cobra.Command{
	Use:   "build [package]",
	Short: "Build a plugin crate",
	Long:  `Build compiles a plugin crate with cargo without installing it.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().BoolVarP(&buildRelease, "release", "r", false, "Build with the release profile")
	buildCmd.Flags().StringVar(&buildTarget, "target", "", "Build for the given target triple")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	tc := cargo.New()

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	_, pkg, err := resolveCrate(ctx, tc, arg)
	if err != nil {
		return err
	}

	_, err = tc.Build(ctx, cargo.BuildRequest{
		CrateRoot: pkg.Root(),
		Profile:   profile(buildRelease),
		Target:    buildTarget,
	})
	return err
}

func profile(release bool) cargo.Profile {
	if release {
		return cargo.Release
	}
	return cargo.Debug
}
