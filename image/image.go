package image

import (
	"fmt"
	"io"
	"syscall"

	"github.com/go-errors/errors"
	"github.com/spf13/afero"
)

const copyBufferSize = 8192

// CreateImageCommand wraps disk image composition. The image is written
// in a fixed order: bootloader payload, kernel info block, kernel bytes,
// zero padding up to the next sector boundary. Composition is strictly
// sequential and fail-fast; a failed run leaves a truncated file behind
// that the caller must discard.
type CreateImageCommand struct {
	fs         afero.Fs
	outPath    string
	bootloader []byte
	infoBlock  *KernelInfoBlock
	kernel     io.Reader
	kernelSize uint64
	progress   func(n int)
}

// NewCreateImageCommand returns an instance of CreateImageCommand
// backed by the operating system filesystem.
func NewCreateImageCommand() *CreateImageCommand {
	return &CreateImageCommand{
		fs: afero.NewOsFs(),
	}
}

// SetFileSystem overrides the filesystem the image is written to.
func (c *CreateImageCommand) SetFileSystem(fs afero.Fs) {
	c.fs = fs
}

// SetImagePath sets the output path of the disk image.
func (c *CreateImageCommand) SetImagePath(imagePath string) {
	c.outPath = imagePath
}

// SetBootloader sets the bootloader payload written at offset 0.
func (c *CreateImageCommand) SetBootloader(bootloader []byte) {
	c.bootloader = bootloader
}

// SetInfoBlock sets the kernel info block written after the bootloader.
func (c *CreateImageCommand) SetInfoBlock(block *KernelInfoBlock) {
	c.infoBlock = block
}

// SetKernel sets the kernel byte source and its exact length in bytes.
func (c *CreateImageCommand) SetKernel(kernel io.Reader, size uint64) {
	c.kernel = kernel
	c.kernelSize = size
}

// SetProgress registers a callback invoked with the number of kernel
// bytes written after each chunk.
func (c *CreateImageCommand) SetProgress(progress func(n int)) {
	c.progress = progress
}

// Layout returns the byte regions the composed image will have.
func (c *CreateImageCommand) Layout() Layout {
	return NewLayout(uint64(len(c.bootloader)), c.kernelSize)
}

// Execute creates the disk image, truncating any existing file at the
// output path.
func (c *CreateImageCommand) Execute() error {
	if c.outPath == "" {
		return fmt.Errorf("output image file path not set")
	}
	if c.infoBlock == nil {
		return fmt.Errorf("kernel info block not set")
	}
	if c.kernel == nil {
		return fmt.Errorf("kernel source not set")
	}

	outFile, err := c.fs.Create(c.outPath)
	if err != nil {
		return fmt.Errorf("cannot create output file %s: %v", c.outPath, err)
	}
	defer outFile.Close()

	if _, err = outFile.Write(c.bootloader); err != nil {
		return fmt.Errorf("cannot write bootloader to %s: %v", c.outPath, err)
	}
	if _, err = outFile.Write(c.infoBlock.Bytes()); err != nil {
		return fmt.Errorf("cannot write kernel info block to %s: %v", c.outPath, err)
	}
	if err = c.copyKernel(outFile); err != nil {
		return err
	}
	if err = c.writePadding(outFile); err != nil {
		return err
	}
	return nil
}

// copyKernel streams the kernel bytes into the output file in bounded
// chunks. An interrupted read is retried; anything else aborts.
func (c *CreateImageCommand) copyKernel(outFile afero.File) error {
	b := make([]byte, copyBufferSize)
	var copied uint64
	for {
		n, err := c.kernel.Read(b)
		if n > 0 {
			if _, werr := outFile.Write(b[:n]); werr != nil {
				return fmt.Errorf("cannot write kernel to %s: %v", c.outPath, werr)
			}
			copied += uint64(n)
			if c.progress != nil {
				c.progress(n)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			if errors.Is(err, syscall.EINTR) {
				continue
			}
			return fmt.Errorf("cannot read kernel: %v", err)
		}
	}
	if copied != c.kernelSize {
		return fmt.Errorf("kernel size changed during read: got %d bytes want %d", copied, c.kernelSize)
	}
	return nil
}

// writePadding pads the kernel region to a whole number of sectors.
func (c *CreateImageCommand) writePadding(outFile afero.File) error {
	padding := make([]byte, PaddingSize(c.kernelSize))
	if _, err := outFile.Write(padding); err != nil {
		return fmt.Errorf("cannot write padding to %s: %v", c.outPath, err)
	}
	return nil
}
