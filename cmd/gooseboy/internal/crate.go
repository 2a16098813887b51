package internal

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gooseboy/gooseboy/internal/cargo"
)

// resolveCrate turns the optional [package] argument into a workspace
// package. An argument naming an existing path is taken as the crate root;
// anything else is treated as a package name within the current workspace.
// No argument means the crate in the current directory.
func resolveCrate(ctx context.Context, tc *cargo.Toolchain, arg string) (*cargo.Metadata, *cargo.Package, error) {
	root, pkgName, err := splitArg(arg)
	if err != nil {
		return nil, nil, err
	}

	meta, err := tc.Metadata(ctx, root)
	if err != nil {
		return nil, nil, err
	}

	var pkg *cargo.Package
	if pkgName != "" {
		pkg, err = meta.FindPackage(pkgName)
	} else {
		pkg, err = meta.PackageAt(root)
	}
	if err != nil {
		return nil, nil, err
	}
	return meta, pkg, nil
}

func splitArg(arg string) (root, pkgName string, err error) {
	if arg != "" {
		if info, statErr := os.Stat(arg); statErr == nil && info.IsDir() {
			abs, absErr := filepath.Abs(arg)
			if absErr != nil {
				return "", "", absErr
			}
			return abs, "", nil
		}
		pkgName = arg
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", "", err
	}
	return cwd, pkgName, nil
}
