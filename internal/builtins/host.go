// Package builtins provides the host services the interpreter's intrinsics
// rely on: command-line arguments and a small file-handle table, wrapped
// as an explicit object passed into the interpreter at construction
// rather than module-level mutable state. Host carries no package-level
// variables — every caller gets its own table.
package builtins

import (
	"bufio"
	"os"
)

// NumSlots is the size of the file-handle table. Slots 0-2 are pre-seeded
// with stdin/stdout/stderr; slots 3 and up are handed out by Read/Write.
const NumSlots = 8

// Well-known handles for the standard streams.
const (
	StdinHandle  = 0
	StdoutHandle = 1
	StderrHandle = 2
)

type slot struct {
	file   *os.File
	reader *bufio.Reader // lazily created, backs Get
}

// Host is the process-wide (but not global-variable) table of open file
// handles plus the program's command-line arguments. Only intrinsic calls
// mutate it, and the interpreter is single-threaded, so no locking is
// required.
type Host struct {
	slots [NumSlots]*slot
	args  []string
}

// NewHost creates a Host with stdin/stdout/stderr pre-seeded and args
// available to the `_argc`/`_argv` intrinsics.
func NewHost(args []string) *Host {
	h := &Host{args: args}
	h.slots[StdinHandle] = &slot{file: os.Stdin}
	h.slots[StdoutHandle] = &slot{file: os.Stdout}
	h.slots[StderrHandle] = &slot{file: os.Stderr}
	return h
}

// Argc returns the number of command-line arguments.
func (h *Host) Argc() int {
	return len(h.args)
}

// Argv returns the i'th command-line argument (0-based).
func (h *Host) Argv(i int) (string, bool) {
	if i < 0 || i >= len(h.args) {
		return "", false
	}
	return h.args[i], true
}

// Read opens path for reading and returns a fresh handle, or ok=false on
// failure (no free slot, or the open failed).
func (h *Host) Read(path string) (int, bool) {
	f, err := os.Open(path)
	if err != nil {
		return 0, false
	}
	return h.store(f)
}

// Write opens (creating/truncating) path for writing and returns a fresh
// handle, or ok=false on failure.
func (h *Host) Write(path string) (int, bool) {
	f, err := os.Create(path)
	if err != nil {
		return 0, false
	}
	return h.store(f)
}

func (h *Host) store(f *os.File) (int, bool) {
	for i := 3; i < NumSlots; i++ {
		if h.slots[i] == nil {
			h.slots[i] = &slot{file: f}
			return i, true
		}
	}
	f.Close()
	return 0, false
}

// Close closes and frees handle. Returns false if handle is out of range
// or already closed.
func (h *Host) Close(handle int) bool {
	s := h.slotAt(handle)
	if s == nil {
		return false
	}
	h.slots[handle] = nil
	return s.file.Close() == nil
}

// Get reads a single byte from handle. ok is false on an out-of-range
// handle, EOF, or I/O error.
func (h *Host) Get(handle int) (byte, bool) {
	s := h.slotAt(handle)
	if s == nil {
		return 0, false
	}
	if s.reader == nil {
		s.reader = bufio.NewReader(s.file)
	}
	b, err := s.reader.ReadByte()
	if err != nil {
		return 0, false
	}
	return b, true
}

// Put writes a single byte to handle. Returns false on an out-of-range
// handle or I/O error.
func (h *Host) Put(handle int, b byte) bool {
	s := h.slotAt(handle)
	if s == nil {
		return false
	}
	_, err := s.file.Write([]byte{b})
	return err == nil
}

func (h *Host) slotAt(handle int) *slot {
	if handle < 0 || handle >= NumSlots {
		return nil
	}
	return h.slots[handle]
}
