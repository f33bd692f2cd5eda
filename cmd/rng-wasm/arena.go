package main

import (
	"math"
	"sync"
	"unsafe"

	"coinflip/internal/rng"
)

// arena keeps buffers handed across the module boundary reachable until the
// host releases them. Addresses are linear-memory offsets on wasm32.
type arena struct {
	mu   sync.Mutex
	live map[uintptr][]byte
}

func newArena() *arena {
	return &arena{live: make(map[uintptr][]byte)}
}

// keep pins buf and returns its address. Ownership moves to the host, which
// must call release. An empty buffer maps to 0.
func (a *arena) keep(buf []byte) uintptr {
	if len(buf) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(&buf[0]))

	a.mu.Lock()
	a.live[addr] = buf
	a.mu.Unlock()
	return addr
}

// release drops a pinned buffer. Unknown addresses are ignored.
func (a *arena) release(addr uintptr) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.live[addr]; !ok {
		return false
	}
	delete(a.live, addr)
	return true
}

func (a *arena) len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// view is the only place raw addresses become Go memory. The returned slice
// aliases host-owned bytes and must not be retained or written.
func view(addr uintptr, n uint32) []byte {
	if addr == 0 || n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}

// frameAddress is the execute return value for a pinned frame. Statuses are
// negative, so an address that does not fit a positive int32 is an
// allocation failure.
func frameAddress(addr uintptr) int32 {
	if addr == 0 || uint64(addr) > math.MaxInt32 {
		return rng.StatusAllocation
	}
	return int32(addr)
}
