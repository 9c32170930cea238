// Package builder drives a full disk image build: compiling the
// kernel, fetching and compiling the bootloader, extracting its payload
// and composing everything into one bootable flat image.
package builder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/go-errors/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/osdev-tools/bootimage/bootloader"
	"github.com/osdev-tools/bootimage/cargo"
	"github.com/osdev-tools/bootimage/image"
	"github.com/osdev-tools/bootimage/log"
	"github.com/osdev-tools/bootimage/types"
	"github.com/osdev-tools/bootimage/util"
)

// BuildImage builds the bootable disk image described by config and
// writes it to config.Output.
func BuildImage(c *types.Config) error {
	kernelPath, buildDir, err := buildKernel(c)
	if err != nil {
		return err
	}

	elfBytes, err := bootloaderELF(c, buildDir)
	if err != nil {
		return err
	}
	payload, err := bootloader.ExtractPayload(elfBytes)
	if err != nil {
		return errors.Wrap(err, 1)
	}

	return CreateDiskImage(c, kernelPath, payload)
}

// buildKernel compiles the kernel crate unless a prebuilt binary was
// configured. It returns the kernel executable path and the directory
// build artifacts live in.
func buildKernel(c *types.Config) (string, string, error) {
	if c.KernelPath != "" {
		buildDir := c.BuildDir
		if buildDir == "" {
			buildDir = filepath.Dir(c.KernelPath)
		}
		return c.KernelPath, buildDir, nil
	}

	metadata, err := cargo.ReadMetadata(c.ManifestPath, false)
	if err != nil {
		return "", "", err
	}
	manifestPath := c.ManifestPath
	if manifestPath == "" {
		manifestPath = filepath.Join(metadata.WorkspaceRoot, "Cargo.toml")
	}
	crate := metadata.FindPackage(manifestPath)
	if crate == nil {
		return "", "", errors.Errorf("cannot find crate for manifest %s", manifestPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", "", errors.Wrap(err, 1)
	}

	fmt.Println("Building kernel")
	build := cargo.NewBuildCommand(cwd)
	if c.Release {
		build.AddArgs("--release")
	}
	if c.Target != "" {
		build.AddArgs("--target", c.Target)
	}
	build.AddArgs(c.Args...)
	if err = build.Execute(); err != nil {
		return "", "", err
	}

	outDir := metadata.TargetDirectory
	if c.Target != "" {
		outDir = filepath.Join(outDir, c.Target)
	}
	if c.Release {
		outDir = filepath.Join(outDir, "release")
	} else {
		outDir = filepath.Join(outDir, "debug")
	}

	kernelPath := filepath.Join(outDir, crate.Name)
	if _, err = os.Stat(kernelPath); err != nil {
		return "", "", errors.WrapPrefix(err, fmt.Sprintf("kernel executable missing at %s", kernelPath), 1)
	}

	buildDir := c.BuildDir
	if buildDir == "" {
		buildDir = outDir
	}
	return kernelPath, buildDir, nil
}

// bootloaderELF obtains the compiled bootloader ELF executable, either
// from a configured prebuilt path or by fetching and compiling the
// bootloader crate under buildDir.
func bootloaderELF(c *types.Config, buildDir string) ([]byte, error) {
	if c.BootloaderPath != "" {
		elfBytes, err := os.ReadFile(c.BootloaderPath)
		if err != nil {
			return nil, errors.WrapPrefix(err, fmt.Sprintf("cannot read bootloader at %s", c.BootloaderPath), 1)
		}
		return elfBytes, nil
	}

	spinner := &util.ProgressSpinner{}
	var pkg *cargo.Package
	err := spinner.Do(func() error {
		var ferr error
		pkg, ferr = cargo.FetchBootloader(buildDir, c.BootloaderRepo)
		return ferr
	}, "Fetching bootloader")
	if err != nil {
		return nil, err
	}

	fmt.Println("Building bootloader")
	return cargo.BuildBootloader(pkg, c.BootloaderTarget)
}

// CreateDiskImage composes the flat disk image at config.Output from a
// kernel executable and a bootloader payload.
func CreateDiskImage(c *types.Config, kernelPath string, bootloaderPayload []byte) error {
	kernelFile, err := os.Open(kernelPath)
	if err != nil {
		return fmt.Errorf("cannot open kernel %s: %v", kernelPath, err)
	}
	defer kernelFile.Close()

	info, err := kernelFile.Stat()
	if err != nil {
		return fmt.Errorf("cannot get size of kernel %s: %v", kernelPath, err)
	}
	kernelSize := uint64(info.Size())

	block, err := image.CreateKernelInfoBlock(kernelSize)
	if err != nil {
		return errors.Wrap(err, 1)
	}

	cmd := image.NewCreateImageCommand()
	cmd.SetImagePath(c.Output)
	cmd.SetBootloader(bootloaderPayload)
	cmd.SetInfoBlock(block)
	cmd.SetKernel(kernelFile, kernelSize)

	bar := progressbar.New(int(kernelSize))
	cmd.SetProgress(func(n int) {
		bar.Add(n)
	})

	if err = cmd.Execute(); err != nil {
		return err
	}
	bar.Finish()
	fmt.Println()

	layout := cmd.Layout()
	log.Info("bootloader %s, kernel %s, padding %d bytes, image %s",
		humanize.Bytes(layout.BootloaderSize), humanize.Bytes(layout.KernelSize),
		layout.PaddingSize, humanize.Bytes(layout.TotalSize))
	return nil
}
