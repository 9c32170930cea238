package types

// Config for a disk image build
type Config struct {
	// Args defines extra arguments passed through to the kernel build
	// invocation.
	Args []string `json:",omitempty"`

	// BootloaderRepo is the git repository the bootloader crate is
	// fetched from.
	BootloaderRepo string `json:",omitempty"`

	// BootloaderTarget is the target specification the bootloader is
	// compiled for.
	BootloaderTarget string `json:",omitempty"`

	// BootloaderPath points to a prebuilt bootloader ELF executable,
	// skipping the fetch-and-build step when set.
	BootloaderPath string `json:",omitempty"`

	// BuildDir overrides the directory build artifacts are placed in.
	BuildDir string `json:",omitempty"`

	// KernelPath points to a prebuilt kernel executable, skipping the
	// kernel build step when set.
	KernelPath string `json:",omitempty"`

	// ManifestPath is the path of the kernel crate manifest
	// (Cargo.toml). Defaults to the workspace root manifest.
	ManifestPath string `json:",omitempty"`

	// Output is the path the disk image is written to.
	Output string `json:",omitempty"`

	// Release selects an optimized kernel build.
	Release bool `json:",omitempty"`

	// RunConfig configures logging and terminal output.
	RunConfig RunConfig `json:",omitempty"`

	// Target is the target specification the kernel is compiled for.
	Target string `json:",omitempty"`
}

// RunConfig configures terminal output behavior
type RunConfig struct {
	// ShowDebug - display debug messages
	ShowDebug bool `json:",omitempty"`

	// ShowErrors - display error messages
	ShowErrors bool `json:",omitempty"`

	// ShowWarnings - display warning messages
	ShowWarnings bool `json:",omitempty"`

	// Verbose enables verbose logging
	Verbose bool `json:",omitempty"`
}

// NewConfig returns a config with defaults applied
func NewConfig() *Config {
	return &Config{
		BootloaderRepo:   "https://github.com/rust-osdev/bootloader.git",
		BootloaderTarget: "x86_64-bootloader",
		Output:           "bootimage.bin",
	}
}
