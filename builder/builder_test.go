package builder

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osdev-tools/bootimage/image"
	"github.com/osdev-tools/bootimage/testutils"
	"github.com/osdev-tools/bootimage/types"
)

func writeKernel(t *testing.T, dir string, content []byte) string {
	t.Helper()
	kernelPath := filepath.Join(dir, "kernel")
	err := os.WriteFile(kernelPath, content, 0644)
	assert.Nil(t, err)
	return kernelPath
}

func TestCreateDiskImage(t *testing.T) {
	dir := t.TempDir()
	kernel := bytes.Repeat([]byte{0x90}, 600)
	kernelPath := writeKernel(t, dir, kernel)

	c := types.NewConfig()
	c.Output = filepath.Join(dir, "boot.img")

	err := CreateDiskImage(c, kernelPath, []byte{0xAA, 0xBB})
	assert.Nil(t, err)

	img, err := os.ReadFile(c.Output)
	assert.Nil(t, err)
	assert.Equal(t, 1538, len(img))
	assert.Equal(t, []byte{0xAA, 0xBB}, img[0:2])
	assert.Equal(t, []byte{0x58, 0x02, 0x00, 0x00}, img[2:6])
	assert.Equal(t, kernel, img[514:1114])
	assert.Equal(t, make([]byte, 424), img[1114:1538])
}

func TestCreateDiskImageMissingKernel(t *testing.T) {
	dir := t.TempDir()
	c := types.NewConfig()
	c.Output = filepath.Join(dir, "boot.img")

	err := CreateDiskImage(c, filepath.Join(dir, "nope"), nil)
	assert.NotNil(t, err)
}

func TestBuildImageFromPrebuiltArtifacts(t *testing.T) {
	dir := t.TempDir()
	kernel := bytes.Repeat([]byte{0xC3}, 512)
	kernelPath := writeKernel(t, dir, kernel)

	payload := []byte{0xEB, 0x3C, 0x90, 0x55, 0xAA}
	elfBytes := testutils.BuildELF(
		testutils.ELFSection{Name: ".bootloader", Data: payload},
	)
	bootloaderPath := filepath.Join(dir, "bootloader.elf")
	err := os.WriteFile(bootloaderPath, elfBytes, 0644)
	assert.Nil(t, err)

	c := types.NewConfig()
	c.KernelPath = kernelPath
	c.BootloaderPath = bootloaderPath
	c.Output = filepath.Join(dir, "boot.img")

	err = BuildImage(c)
	assert.Nil(t, err)

	img, err := os.ReadFile(c.Output)
	assert.Nil(t, err)
	assert.Equal(t, len(payload)+image.SectorSize+512, len(img))
	assert.Equal(t, payload, img[0:len(payload)])
	assert.Equal(t, kernel, img[len(payload)+image.SectorSize:])
}

func TestBuildImageRejectsBootloaderWithoutSection(t *testing.T) {
	dir := t.TempDir()
	kernelPath := writeKernel(t, dir, []byte{0x90})

	elfBytes := testutils.BuildELF(
		testutils.ELFSection{Name: ".text", Data: []byte{0xC3}},
	)
	bootloaderPath := filepath.Join(dir, "bootloader.elf")
	err := os.WriteFile(bootloaderPath, elfBytes, 0644)
	assert.Nil(t, err)

	c := types.NewConfig()
	c.KernelPath = kernelPath
	c.BootloaderPath = bootloaderPath
	c.Output = filepath.Join(dir, "boot.img")

	err = BuildImage(c)
	assert.NotNil(t, err)
}
