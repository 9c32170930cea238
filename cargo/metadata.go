// Package cargo shells out to the Rust build toolchain: reading cargo
// metadata, compiling crates with xargo and fetching the bootloader
// crate. The rest of the tool only ever sees the artifacts these calls
// produce.
package cargo

import (
	"encoding/json"
	"os"
	"os/exec"

	"github.com/go-errors/errors"
)

// Package describes a crate as reported by cargo metadata.
type Package struct {
	Name         string `json:"name"`
	ManifestPath string `json:"manifest_path"`
}

// Metadata is the subset of cargo metadata output the build needs.
type Metadata struct {
	Packages        []Package `json:"packages"`
	WorkspaceRoot   string    `json:"workspace_root"`
	TargetDirectory string    `json:"target_directory"`
}

// FindPackage returns the crate whose manifest path matches exactly.
func (m *Metadata) FindPackage(manifestPath string) *Package {
	for i := range m.Packages {
		if m.Packages[i].ManifestPath == manifestPath {
			return &m.Packages[i]
		}
	}
	return nil
}

// FindPackageByName returns the crate with the given name.
func (m *Metadata) FindPackageByName(name string) *Package {
	for i := range m.Packages {
		if m.Packages[i].Name == name {
			return &m.Packages[i]
		}
	}
	return nil
}

// ReadMetadata runs cargo metadata for the given manifest and parses
// its output. Dependency crates are included only if deps is true.
func ReadMetadata(manifestPath string, deps bool) (*Metadata, error) {
	args := []string{"metadata", "--format-version", "1"}
	if !deps {
		args = append(args, "--no-deps")
	}
	if manifestPath != "" {
		args = append(args, "--manifest-path", manifestPath)
	}

	cmd := exec.Command("cargo", args...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, errors.WrapPrefix(err, "cargo metadata failed", 1)
	}
	return parseMetadata(out)
}

func parseMetadata(data []byte) (*Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.WrapPrefix(err, "cannot parse cargo metadata", 1)
	}
	return &m, nil
}
