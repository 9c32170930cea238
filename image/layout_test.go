package image

import "testing"

func TestPaddingSize(t *testing.T) {
	cases := []struct {
		kernelSize uint64
		want       uint64
	}{
		{0, 0},
		{1, 511},
		{511, 1},
		{512, 0},
		{513, 511},
		{600, 424},
		{1024, 0},
	}
	for _, c := range cases {
		if got := PaddingSize(c.kernelSize); got != c.want {
			t.Errorf("padding for %d: got %d want %d", c.kernelSize, got, c.want)
		}
	}
}

func TestNewLayout(t *testing.T) {
	t.Run("computes cumulative offsets", func(t *testing.T) {
		l := NewLayout(2, 600)
		if l.InfoBlockStart != 2 {
			t.Errorf("info block start: got %d want 2", l.InfoBlockStart)
		}
		if l.KernelStart != 514 {
			t.Errorf("kernel start: got %d want 514", l.KernelStart)
		}
		if l.PaddingStart != 1114 {
			t.Errorf("padding start: got %d want 1114", l.PaddingStart)
		}
		if l.TotalSize != 1538 {
			t.Errorf("total size: got %d want 1538", l.TotalSize)
		}
	})

	t.Run("image region after bootloader is sector aligned", func(t *testing.T) {
		for _, bootLen := range []uint64{0, 1, 2, 511, 512, 777} {
			for _, kernLen := range []uint64{0, 1, 511, 512, 600, 4096, 5000} {
				l := NewLayout(bootLen, kernLen)
				if l.TotalSize != bootLen+SectorSize+kernLen+l.PaddingSize {
					t.Fatalf("boot %d kernel %d: inconsistent total %d", bootLen, kernLen, l.TotalSize)
				}
				if (l.TotalSize-bootLen)%SectorSize != 0 {
					t.Errorf("boot %d kernel %d: region not sector aligned", bootLen, kernLen)
				}
				if l.PaddingSize > 511 {
					t.Errorf("boot %d kernel %d: padding %d out of range", bootLen, kernLen, l.PaddingSize)
				}
				if (l.PaddingSize == 0) != (kernLen%SectorSize == 0) {
					t.Errorf("boot %d kernel %d: padding %d", bootLen, kernLen, l.PaddingSize)
				}
			}
		}
	})
}
