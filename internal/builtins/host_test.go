package builtins

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHostArgcArgv(t *testing.T) {
	h := NewHost([]string{"a", "b", "c"})

	if got := h.Argc(); got != 3 {
		t.Errorf("Argc() = %d, want 3", got)
	}
	if v, ok := h.Argv(1); !ok || v != "b" {
		t.Errorf("Argv(1) = (%q, %v), want (\"b\", true)", v, ok)
	}
	if _, ok := h.Argv(3); ok {
		t.Error("Argv(3) should be out of range")
	}
	if _, ok := h.Argv(-1); ok {
		t.Error("Argv(-1) should be out of range")
	}
}

func TestHostStandardHandlesPreseeded(t *testing.T) {
	h := NewHost(nil)

	if h.slotAt(StdinHandle) == nil {
		t.Error("stdin handle should be pre-seeded")
	}
	if h.slotAt(StdoutHandle) == nil {
		t.Error("stdout handle should be pre-seeded")
	}
	if h.slotAt(StderrHandle) == nil {
		t.Error("stderr handle should be pre-seeded")
	}
}

func TestHostWriteReadRoundTrip(t *testing.T) {
	h := NewHost(nil)
	path := filepath.Join(t.TempDir(), "glox-host-test.txt")

	wh, ok := h.Write(path)
	if !ok {
		t.Fatal("Write() failed")
	}
	if !h.Put(wh, 'h') || !h.Put(wh, 'i') {
		t.Fatal("Put() failed")
	}
	if !h.Close(wh) {
		t.Fatal("Close() failed on write handle")
	}

	rh, ok := h.Read(path)
	if !ok {
		t.Fatal("Read() failed")
	}
	b1, ok := h.Get(rh)
	if !ok || b1 != 'h' {
		t.Errorf("Get() = (%v, %v), want ('h', true)", b1, ok)
	}
	b2, ok := h.Get(rh)
	if !ok || b2 != 'i' {
		t.Errorf("Get() = (%v, %v), want ('i', true)", b2, ok)
	}
	if _, ok := h.Get(rh); ok {
		t.Error("Get() at EOF should return ok=false")
	}
	if !h.Close(rh) {
		t.Fatal("Close() failed on read handle")
	}
}

func TestHostReadMissingFileFails(t *testing.T) {
	h := NewHost(nil)
	if _, ok := h.Read(filepath.Join(t.TempDir(), "does-not-exist")); ok {
		t.Error("Read() of a missing file should fail")
	}
}

func TestHostCloseInvalidHandle(t *testing.T) {
	h := NewHost(nil)
	if h.Close(99) {
		t.Error("Close() of an out-of-range handle should return false")
	}
	if h.Close(StdinHandle + 50) {
		t.Error("Close() of an out-of-range handle should return false")
	}
}

func TestHostSlotsExhausted(t *testing.T) {
	h := NewHost(nil)
	dir := t.TempDir()

	var handles []int
	for i := 0; i < NumSlots-3; i++ {
		path := filepath.Join(dir, "f"+string(rune('a'+i)))
		hdl, ok := h.Write(path)
		if !ok {
			t.Fatalf("Write() %d failed", i)
		}
		handles = append(handles, hdl)
	}

	if _, ok := h.Write(filepath.Join(dir, "overflow")); ok {
		t.Error("Write() should fail once all slots are in use")
	}

	for _, hdl := range handles {
		h.Close(hdl)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("temp dir vanished: %v", err)
	}
}
