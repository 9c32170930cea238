package image

import (
	"errors"
	"math"
	"testing"
)

func TestCreateKernelInfoBlock(t *testing.T) {
	t.Run("encodes kernel size little-endian", func(t *testing.T) {
		block, err := CreateKernelInfoBlock(600)
		if err != nil {
			t.Fatalf("got error %v", err)
		}
		want := [4]byte{0x58, 0x02, 0x00, 0x00}
		for i := 0; i < 4; i++ {
			if block[i] != want[i] {
				t.Errorf("byte %d: got %#02x want %#02x", i, block[i], want[i])
			}
		}
	})

	t.Run("round trips sizes", func(t *testing.T) {
		sizes := []uint64{0, 1, 511, 512, 513, 600, 1 << 20, math.MaxUint32}
		for _, size := range sizes {
			block, err := CreateKernelInfoBlock(size)
			if err != nil {
				t.Fatalf("size %d: got error %v", size, err)
			}
			if got := block.KernelSize(); uint64(got) != size {
				t.Errorf("size %d: decoded %d", size, got)
			}
		}
	})

	t.Run("reserved bytes are zero", func(t *testing.T) {
		block, err := CreateKernelInfoBlock(math.MaxUint32)
		if err != nil {
			t.Fatalf("got error %v", err)
		}
		for i := 4; i < SectorSize; i++ {
			if block[i] != 0 {
				t.Fatalf("byte %d: got %#02x want 0", i, block[i])
			}
		}
	})

	t.Run("rejects kernels beyond 32-bit sizes", func(t *testing.T) {
		for _, size := range []uint64{math.MaxUint32 + 1, math.MaxUint64} {
			block, err := CreateKernelInfoBlock(size)
			if !errors.Is(err, ErrKernelTooLarge) {
				t.Errorf("size %d: got %v want ErrKernelTooLarge", size, err)
			}
			if block != nil {
				t.Errorf("size %d: got a block despite error", size)
			}
		}
	})
}
