package arena

import (
	"bytes"
	"testing"

	"github.com/dshills/strand/internal/engine/tracking"
)

func TestNewExactCapacity(t *testing.T) {
	a := New(128)

	if a.NumRegions() != 1 {
		t.Errorf("expected 1 region, got %d", a.NumRegions())
	}
	if a.Capacity() != 128 {
		t.Errorf("expected capacity 128, got %d", a.Capacity())
	}
	if a.SizeInUse() != 0 {
		t.Errorf("expected 0 bytes in use, got %d", a.SizeInUse())
	}
}

func TestZeroValueArena(t *testing.T) {
	var a Arena

	if a.NumRegions() != 0 {
		t.Errorf("expected 0 regions, got %d", a.NumRegions())
	}

	buf := a.Alloc(16)
	if len(buf) != 16 {
		t.Fatalf("expected 16-byte allocation, got %d", len(buf))
	}
	if a.NumRegions() != 1 {
		t.Errorf("expected base region after first allocation, got %d", a.NumRegions())
	}
	if a.Capacity() != DefaultRegionCapacity {
		t.Errorf("expected default region capacity %d, got %d", DefaultRegionCapacity, a.Capacity())
	}

	a.Destroy()
}

func TestAllocNilZero(t *testing.T) {
	var a Arena

	if got := a.AllocOrResize(nil, 0); got != nil {
		t.Errorf("expected nil for no-op request, got %v", got)
	}
	if a.NumRegions() != 0 {
		t.Errorf("no-op request should not create a region, got %d", a.NumRegions())
	}
}

func TestChaining(t *testing.T) {
	a := NewWithOptions(WithRegionCapacity(64))

	// Each 32-byte payload consumes 8 header bytes plus 32 aligned bytes,
	// so the second request cannot fit in a 64-byte region.
	var blocks [][]byte
	for i := 0; i < 4; i++ {
		buf := a.Alloc(32)
		for j := range buf {
			buf[j] = byte(i)
		}
		blocks = append(blocks, buf)
	}

	if a.NumRegions() < 2 {
		t.Fatalf("expected chained regions, got %d", a.NumRegions())
	}

	// Every earlier allocation must survive the chain growth unchanged.
	for i, buf := range blocks {
		for j := range buf {
			if buf[j] != byte(i) {
				t.Fatalf("block %d corrupted at offset %d: got %d", i, j, buf[j])
			}
		}
	}

	a.Destroy()
}

func TestResizeCopy(t *testing.T) {
	for _, oldSize := range []int{0, 1, 7, 8, 9, 63, 64} {
		for _, newSize := range []int{0, 1, 8, 64, 130} {
			if newSize < oldSize || newSize == 0 {
				continue
			}
			a := NewWithOptions(WithRegionCapacity(64))

			buf := a.Alloc(oldSize)
			for i := range buf {
				buf[i] = byte(i + 1)
			}
			want := append([]byte(nil), buf...)

			grown := a.AllocOrResize(buf, newSize)
			if len(grown) != newSize {
				t.Fatalf("resize %d->%d: got length %d", oldSize, newSize, len(grown))
			}
			if !bytes.Equal(grown[:oldSize], want) {
				t.Errorf("resize %d->%d: prefix not preserved", oldSize, newSize)
			}

			a.Destroy()
		}
	}
}

func TestShrinkCopiesPrefix(t *testing.T) {
	var a Arena
	defer a.Destroy()

	buf := a.Alloc(8)
	copy(buf, "abcdefgh")
	small := a.AllocOrResize(buf, 3)
	if string(small) != "abc" {
		t.Errorf("expected shrink to copy prefix, got %q", small)
	}
}

func TestLogicalFree(t *testing.T) {
	a := NewWithOptions(WithPoison(true))
	defer a.Destroy()

	buf := a.Alloc(4)
	copy(buf, "abcd")

	if got := a.AllocOrResize(buf, 0); got != nil {
		t.Errorf("logical free should return nil, got %v", got)
	}
	for i, c := range buf {
		if c != poisonByte {
			t.Errorf("byte %d not poisoned: got %#x", i, c)
		}
	}
}

func TestOversizedRequest(t *testing.T) {
	a := NewWithOptions(WithRegionCapacity(64))
	defer a.Destroy()

	buf := a.Alloc(100)
	if len(buf) != 100 {
		t.Fatalf("expected 100-byte allocation, got %d", len(buf))
	}
	want := alignUp(100+headerSize, alignment)
	if a.Capacity() != want {
		t.Errorf("oversized request should size the region to fit: capacity %d, want %d", a.Capacity(), want)
	}
}

func TestDestroyResets(t *testing.T) {
	a := NewWithOptions(WithRegionCapacity(64))
	for i := 0; i < 8; i++ {
		a.Alloc(32)
	}
	if a.NumRegions() < 2 {
		t.Fatalf("expected multiple regions before destroy, got %d", a.NumRegions())
	}

	a.Destroy()
	if a.NumRegions() != 0 || a.Capacity() != 0 || a.SizeInUse() != 0 {
		t.Errorf("destroy should reset the arena: regions=%d capacity=%d used=%d",
			a.NumRegions(), a.Capacity(), a.SizeInUse())
	}

	// A destroyed arena behaves as if newly zero-initialized.
	buf := a.Alloc(16)
	if len(buf) != 16 {
		t.Fatalf("allocation after destroy failed: got %d bytes", len(buf))
	}
	if a.NumRegions() != 1 {
		t.Errorf("expected a fresh base region, got %d", a.NumRegions())
	}
	a.Destroy()
}

func TestDestroyNeverAllocated(t *testing.T) {
	var a Arena
	a.Destroy() // must not panic
}

func TestDefaultArena(t *testing.T) {
	buf := Default().Alloc(32)
	if len(buf) != 32 {
		t.Fatalf("default arena allocation failed: got %d bytes", len(buf))
	}
	Default().Destroy()
	if Default().NumRegions() != 0 {
		t.Errorf("default arena not reset after destroy: %d regions", Default().NumRegions())
	}
}

func TestTrackerIntegration(t *testing.T) {
	tr := tracking.NewTracker()

	a := NewWithOptions(WithTracker(tr))
	if tr.Len() != 1 {
		t.Fatalf("expected 1 live arena, got %d", tr.Len())
	}

	a.Alloc(8)
	a.Destroy()
	if tr.Len() != 0 {
		t.Errorf("arena still registered after destroy: %d live", tr.Len())
	}
}

func TestUtilization(t *testing.T) {
	a := New(128)
	defer a.Destroy()

	if a.Utilization() != 0 {
		t.Errorf("fresh arena should have 0 utilization, got %f", a.Utilization())
	}
	a.Alloc(56) // header + payload = 64 of 128
	if got := a.Utilization(); got != 0.5 {
		t.Errorf("expected utilization 0.5, got %f", got)
	}
}

func TestNegativeSizePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative size")
		}
	}()
	var a Arena
	a.Alloc(-1)
}

func TestAlignUp(t *testing.T) {
	cases := []struct{ n, want int }{
		{0, 0}, {1, 8}, {7, 8}, {8, 8}, {9, 16}, {16, 16}, {17, 24},
	}
	for _, c := range cases {
		if got := alignUp(c.n, alignment); got != c.want {
			t.Errorf("alignUp(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
