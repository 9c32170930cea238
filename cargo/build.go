package cargo

import (
	"bytes"
	"io"
	"os"
	"os/exec"

	"github.com/go-errors/errors"
)

// BuildCommand wraps an xargo build invocation for a single crate
// directory.
type BuildCommand struct {
	dir          string
	args         []string
	quiet        bool
	outputBuffer bytes.Buffer
}

// NewBuildCommand returns an instance of BuildCommand building the
// crate in dir.
func NewBuildCommand(dir string) *BuildCommand {
	return &BuildCommand{dir: dir}
}

// AddArgs appends arguments passed through to cargo.
func (b *BuildCommand) AddArgs(args ...string) {
	b.args = append(b.args, args...)
}

// SetQuiet suppresses terminal output; it stays available through
// CombinedOutput.
func (b *BuildCommand) SetQuiet(quiet bool) {
	b.quiet = quiet
}

// CombinedOutput returns everything the toolchain wrote during Execute.
func (b *BuildCommand) CombinedOutput() string {
	return b.outputBuffer.String()
}

// Execute compiles the crate with xargo. RUST_TARGET_PATH is pointed at
// the crate directory so custom target specifications next to the crate
// are picked up.
func (b *BuildCommand) Execute() error {
	cmdArgs := append([]string{"build"}, b.args...)
	cmd := exec.Command("xargo", cmdArgs...)
	cmd.Dir = b.dir
	cmd.Env = append(os.Environ(), "RUST_TARGET_PATH="+b.dir)
	if b.quiet {
		cmd.Stdout = &b.outputBuffer
		cmd.Stderr = &b.outputBuffer
	} else {
		cmd.Stdout = io.MultiWriter(os.Stdout, &b.outputBuffer)
		cmd.Stderr = io.MultiWriter(os.Stderr, &b.outputBuffer)
	}
	if err := cmd.Run(); err != nil {
		return errors.WrapPrefix(err, "xargo build failed", 1)
	}
	return nil
}

// Fetch downloads the dependencies of the crate in dir. Toolchain
// output is captured and only shown on failure.
func Fetch(dir string) error {
	var output bytes.Buffer
	cmd := exec.Command("cargo", "fetch")
	cmd.Dir = dir
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		os.Stderr.Write(output.Bytes())
		return errors.WrapPrefix(err, "cargo fetch failed", 1)
	}
	return nil
}
