//go:build wasip1

// Command rng-wasm is the sandboxed random number entry point. Build with
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o rng.wasm ./cmd/rng-wasm
//
// The host allocates the input with alloc, calls execute and frees both the
// input and the returned frame with release.
package main

import (
	"crypto/rand"

	"coinflip/internal/rng"
)

var buffers = newArena()

func main() {}

//go:wasmexport alloc
func alloc(size uint32) uint32 {
	if size == 0 || size > rng.MaxOutputSize {
		return 0
	}
	return uint32(buffers.keep(make([]byte, size)))
}

//go:wasmexport release
func release(ptr uint32) {
	buffers.release(uintptr(ptr))
}

// execute returns the address of a frame holding a 4-byte little-endian
// length and the response JSON, or a negative status.
//
//go:wasmexport execute
func execute(ptr, length uint32) int32 {
	out, err := rng.Execute(view(uintptr(ptr), length), rand.Reader)
	if err != nil {
		return rng.Status(err)
	}

	addr := buffers.keep(out)
	ret := frameAddress(addr)
	if ret < 0 {
		buffers.release(addr)
	}
	return ret
}
