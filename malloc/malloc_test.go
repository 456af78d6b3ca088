package malloc

import "fmt"
import "math"
import "testing"
import "unsafe"

var _ = fmt.Sprintf("dummy")

func TestTryMalloc(t *testing.T) {
	sizes := []int64{0, 1, 8, 4095, 4096, 1 << 20}
	for _, size := range sizes {
		baseline := UsedMemory()
		ptr := TryMalloc(size)
		if ptr == nil {
			t.Fatalf("TryMalloc(%v) failed", size)
		}
		if usable := UsableSize(ptr); usable < size {
			t.Errorf("size %v: usable %v < requested", size, usable)
		}
		if used := UsedMemory(); used <= baseline {
			t.Errorf("size %v: used %v not above baseline %v", size, used, baseline)
		}
		Free(ptr)
		if used := UsedMemory(); used != baseline {
			t.Errorf("size %v: leaked, used %v baseline %v", size, used, baseline)
		}
	}
}

func TestTryMallocGuard(t *testing.T) {
	invoked := false
	SetOOMHandler(func(size int64) { invoked = true })
	defer SetOOMHandler(nil)

	for _, size := range []int64{maxallocsize, maxallocsize + 1, math.MaxInt64, -1} {
		if ptr := TryMalloc(size); ptr != nil {
			t.Errorf("TryMalloc(%v): expected nil", size)
		}
	}
	if invoked {
		t.Errorf("TryMalloc must never invoke the oom handler")
	}
}

func TestMallocOOMHandler(t *testing.T) {
	var got int64
	SetOOMHandler(func(size int64) { got = size })
	defer SetOOMHandler(nil)

	if ptr := Malloc(maxallocsize); ptr != nil {
		t.Errorf("expected nil after handler returned")
	}
	if got != maxallocsize {
		t.Errorf("expected handler to see %v, got %v", maxallocsize, got)
	}
}

func TestMallocUsable(t *testing.T) {
	baseline := UsedMemory()
	ptr, usable := MallocUsable(100)
	if ptr == nil {
		t.Fatalf("unexpected allocation failure")
	}
	if usable < 100 {
		t.Errorf("expected usable >= 100, got %v", usable)
	}
	if x := UsableSize(ptr); x != usable {
		t.Errorf("expected %v, got %v", usable, x)
	}
	// the advertised headroom is writable.
	block := unsafe.Slice((*byte)(ptr), usable)
	for i := range block {
		block[i] = 0xAB
	}
	Free(ptr)
	if used := UsedMemory(); used != baseline {
		t.Errorf("leaked, used %v baseline %v", used, baseline)
	}
}

func TestCalloc(t *testing.T) {
	baseline := UsedMemory()
	ptr := Calloc(16, 32)
	if ptr == nil {
		t.Fatalf("unexpected allocation failure")
	}
	block := unsafe.Slice((*byte)(ptr), 16*32)
	for i, c := range block {
		if c != 0 {
			t.Fatalf("byte %v not zeroed", i)
		}
	}
	Free(ptr)
	if used := UsedMemory(); used != baseline {
		t.Errorf("leaked, used %v baseline %v", used, baseline)
	}
}

func TestCallocOverflow(t *testing.T) {
	if ptr := TryCalloc(maxallocsize/2, 3); ptr != nil {
		t.Errorf("expected nil on multiplication overflow")
	}
	if ptr := TryCalloc(8, 0); ptr != nil {
		t.Errorf("expected nil on zero element size")
	}

	var got int64
	SetOOMHandler(func(size int64) { got = size })
	defer SetOOMHandler(nil)
	if ptr := Calloc(maxallocsize/2, 3); ptr != nil {
		t.Errorf("expected nil after handler returned")
	}
	if got != math.MaxInt64 {
		t.Errorf("expected handler to see max size, got %v", got)
	}
}

func TestRealloc(t *testing.T) {
	baseline := UsedMemory()

	// nil ptr behaves as malloc.
	ptr := TryRealloc(nil, 64)
	if ptr == nil {
		t.Fatalf("TryRealloc(nil, 64) failed")
	}
	block := unsafe.Slice((*byte)(ptr), 64)
	for i := range block {
		block[i] = byte(i)
	}

	// growing preserves contents and swaps the accounted size.
	ptr = TryRealloc(ptr, 4096)
	if ptr == nil {
		t.Fatalf("grow failed")
	}
	block = unsafe.Slice((*byte)(ptr), 4096)
	for i := 0; i < 64; i++ {
		if block[i] != byte(i) {
			t.Fatalf("content lost at %v", i)
		}
	}
	if usable := UsableSize(ptr); usable < 4096 {
		t.Errorf("expected usable >= 4096, got %v", usable)
	}

	// size 0 with non-nil ptr behaves as free.
	if ptr = TryRealloc(ptr, 0); ptr != nil {
		t.Errorf("expected nil from TryRealloc(ptr, 0)")
	}
	if used := UsedMemory(); used != baseline {
		t.Errorf("leaked, used %v baseline %v", used, baseline)
	}
}

func TestReallocGuard(t *testing.T) {
	invoked := false
	SetOOMHandler(func(size int64) { invoked = true })
	defer SetOOMHandler(nil)

	baseline := UsedMemory()
	ptr := TryMalloc(128)
	if ptr = TryRealloc(ptr, maxallocsize); ptr != nil {
		t.Errorf("expected nil on oversized realloc")
	}
	// the original allocation was released by the failed resize.
	if used := UsedMemory(); used != baseline {
		t.Errorf("leaked, used %v baseline %v", used, baseline)
	}
	if invoked {
		t.Errorf("TryRealloc must never invoke the oom handler")
	}
}

func TestUsableSizeHeader(t *testing.T) {
	if hasusablesize {
		t.Skip("allocator reports usable size natively")
	}
	ptr := TryMalloc(0)
	if x := UsableSize(ptr); x != Minblock {
		t.Errorf("expected %v for zero-sized request, got %v", Minblock, x)
	}
	Free(ptr)

	// below-minimum requests are stored exactly, only zero rounds up.
	ptr = TryMalloc(3)
	if x := UsableSize(ptr); x != 3 {
		t.Errorf("expected 3, got %v", x)
	}
	Free(ptr)
}

func TestFreeWithSize(t *testing.T) {
	baseline := UsedMemory()
	ptr, usable := TryMallocUsable(777)
	if ptr == nil {
		t.Fatalf("unexpected allocation failure")
	}
	FreeWithSize(ptr, usable)
	if used := UsedMemory(); used != baseline {
		t.Errorf("leaked, used %v baseline %v", used, baseline)
	}
	Free(nil) // no-op
	FreeWithSize(nil, 0)
}

func TestDup(t *testing.T) {
	baseline := UsedMemory()
	src := []byte("storage engines never forget")
	ptr := Dup(src)
	if ptr == nil {
		t.Fatalf("unexpected allocation failure")
	}
	copied := unsafe.Slice((*byte)(ptr), len(src))
	for i := range src {
		if copied[i] != src[i] {
			t.Fatalf("mismatch at %v", i)
		}
	}
	Free(ptr)
	if used := UsedMemory(); used != baseline {
		t.Errorf("leaked, used %v baseline %v", used, baseline)
	}
}

func BenchmarkTryMalloc(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Free(TryMalloc(96))
	}
}

func BenchmarkUsedMemory(b *testing.B) {
	for i := 0; i < b.N; i++ {
		UsedMemory()
	}
}
