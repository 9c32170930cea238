package image

import (
	"encoding/binary"
	"math"

	"github.com/go-errors/errors"
)

// SectorSize is the alignment unit assumed by the loading firmware.
const SectorSize = 512

// ErrKernelTooLarge is returned when the kernel exceeds the 32-bit byte
// count the stage-1 bootloader can address.
var ErrKernelTooLarge = errors.New("kernel is too large to be loaded by the BIOS bootloader")

// KernelInfoBlock is the fixed 512-byte block placed between bootloader
// and kernel in the disk image. The first 4 bytes hold the kernel size
// as a little-endian unsigned 32-bit integer; the remaining bytes are
// reserved and always zero.
type KernelInfoBlock [SectorSize]byte

// CreateKernelInfoBlock encodes kernelSize into a new info block.
func CreateKernelInfoBlock(kernelSize uint64) (*KernelInfoBlock, error) {
	if kernelSize > math.MaxUint32 {
		return nil, ErrKernelTooLarge
	}

	var block KernelInfoBlock
	binary.LittleEndian.PutUint32(block[0:4], uint32(kernelSize))
	return &block, nil
}

// KernelSize decodes the kernel byte length recorded in the block.
func (b *KernelInfoBlock) KernelSize() uint32 {
	return binary.LittleEndian.Uint32(b[0:4])
}

// Bytes returns the on-disk representation of the block.
func (b *KernelInfoBlock) Bytes() []byte {
	return b[:]
}
