package cargo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/google/uuid"
)

const helperManifest = `[package]
name = "bootloader-fetch-%s"
version = "0.0.0"
edition = "2018"

[dependencies.bootloader]
git = "%s"
`

const helperLib = "#![no_std]\n"

// FetchBootloader downloads the bootloader crate from repo by writing a
// throwaway helper crate under buildDir that depends on it, fetching
// its dependencies, and locating the crate in the resulting metadata.
// The returned package points at the bootloader's own manifest inside
// the cargo registry checkout.
func FetchBootloader(buildDir, repo string) (*Package, error) {
	helperDir := filepath.Join(buildDir, "bootloader")
	srcDir := filepath.Join(helperDir, "src")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		return nil, errors.WrapPrefix(err, "cannot create bootloader fetch dir", 1)
	}

	// randomized crate name, stale registry cache entries collide otherwise
	manifest := fmt.Sprintf(helperManifest, uuid.NewString()[:8], repo)
	manifestPath := filepath.Join(helperDir, "Cargo.toml")
	if err := os.WriteFile(manifestPath, []byte(manifest), 0644); err != nil {
		return nil, errors.WrapPrefix(err, "cannot write bootloader fetch manifest", 1)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "lib.rs"), []byte(helperLib), 0644); err != nil {
		return nil, errors.WrapPrefix(err, "cannot write bootloader fetch crate", 1)
	}

	if err := Fetch(helperDir); err != nil {
		return nil, err
	}

	metadata, err := ReadMetadata(manifestPath, true)
	if err != nil {
		return nil, err
	}
	bootloader := metadata.FindPackageByName("bootloader")
	if bootloader == nil {
		return nil, errors.Errorf("bootloader crate not found in %s", repo)
	}
	return bootloader, nil
}

// BuildBootloader compiles the fetched bootloader crate for target in
// release mode and returns the bytes of the resulting ELF executable.
func BuildBootloader(pkg *Package, target string) ([]byte, error) {
	crateDir := filepath.Dir(pkg.ManifestPath)

	build := NewBuildCommand(crateDir)
	build.AddArgs("--target", target, "--release")
	if err := build.Execute(); err != nil {
		return nil, err
	}

	elfPath := filepath.Join(crateDir, "target", target, "release", "bootloader")
	elfBytes, err := os.ReadFile(elfPath)
	if err != nil {
		return nil, errors.WrapPrefix(err, fmt.Sprintf("cannot read bootloader at %s", elfPath), 1)
	}
	return elfBytes, nil
}
