package image

// PaddingSize returns the number of zero bytes required after the kernel
// so the region starting at the info block is a whole multiple of the
// sector size.
func PaddingSize(kernelSize uint64) uint64 {
	return (SectorSize - kernelSize%SectorSize) % SectorSize
}

// Layout describes the byte regions of a composed disk image.
type Layout struct {
	BootloaderStart uint64
	BootloaderSize  uint64
	InfoBlockStart  uint64
	KernelStart     uint64
	KernelSize      uint64
	PaddingStart    uint64
	PaddingSize     uint64
	TotalSize       uint64
}

// NewLayout computes the image layout for a bootloader payload of
// bootloaderSize bytes and a kernel of kernelSize bytes.
func NewLayout(bootloaderSize, kernelSize uint64) Layout {
	l := Layout{
		BootloaderSize: bootloaderSize,
		KernelSize:     kernelSize,
		PaddingSize:    PaddingSize(kernelSize),
	}
	l.InfoBlockStart = l.BootloaderStart + bootloaderSize
	l.KernelStart = l.InfoBlockStart + SectorSize
	l.PaddingStart = l.KernelStart + kernelSize
	l.TotalSize = l.PaddingStart + l.PaddingSize
	return l
}
