package internal

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gooseboy/gooseboy/internal/artifact"
	"github.com/gooseboy/gooseboy/internal/cargo"
	"github.com/gooseboy/gooseboy/internal/env"
	"github.com/gooseboy/gooseboy/internal/install"
)

var (
	packRelease bool
	packTarget  string
	packNoCopy  bool
	packDest    string
)

var packCmd = &cobra.Command{
	Use:   "pack [package]",
	Short: "Build a plugin crate and install it into the mod directory",
	Long:  `Pack compiles a plugin crate with cargo, locates the built dynamic library and installs it into the mod directory under its canonical crate name.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPack,
}

func init() {
	packCmd.Flags().BoolVarP(&packRelease, "release", "r", false, "Build with the release profile")
	packCmd.Flags().StringVar(&packTarget, "target", "", "Build for the given target triple")
	packCmd.Flags().BoolVar(&packNoCopy, "no-copy", false, "Build only, skip the install step")
	packCmd.Flags().StringVarP(&packDest, "dest", "d", "", "Install into this directory instead of the mod directory")
	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	tc := cargo.New()

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	meta, pkg, err := resolveCrate(ctx, tc, arg)
	if err != nil {
		return err
	}

	prof := profile(packRelease)
	res, err := tc.Build(ctx, cargo.BuildRequest{
		CrateRoot: pkg.Root(),
		Profile:   prof,
		Target:    packTarget,
	})
	if err != nil {
		return err
	}

	if packNoCopy {
		return nil
	}

	// Workspaces keep target/ at the workspace root, not under the member
	// crate; trust cargo's own answer when it has one.
	outDir := res.OutputDir
	if meta.TargetDirectory != "" {
		outDir = cargo.OutputDir(meta.TargetDirectory, prof, packTarget)
	}

	desc, err := artifact.Locate(outDir, pkg.Name)
	if err != nil {
		return err
	}

	destDir := packDest
	if destDir == "" {
		destDir = env.ModDir()
	}

	target, err := install.Install(desc, destDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "installed %s\n", target.Path)
	return nil
}
