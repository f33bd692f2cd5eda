// Package rng derives a random number inside an inclusive [min, max] range
// from a raw entropy source.
//
// The same code backs the sandboxed entry point, the command-line tool and
// the local remote executor.
package rng

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"coinflip/internal/model"
)

var (
	ErrBadInput           = errors.New("malformed input")
	ErrEntropyUnavailable = errors.New("entropy source unavailable")
	ErrSerialization      = errors.New("output serialization failed")
	ErrAllocation         = errors.New("output allocation failed")
)

// Derive reduces r into [min, max]. When max <= min the result is min.
//
// The reduction is a plain modulo and carries the usual bias when the span
// does not divide 2^32.
func Derive(min, max, r uint32) uint32 {
	if max <= min {
		return min
	}
	span := uint64(max-min) + 1
	return min + uint32(uint64(r)%span)
}

// Draw reads four bytes from entropy as a little-endian uint32.
func Draw(entropy io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(entropy, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func Generate(entropy io.Reader, req model.RangeRequest) (model.RandomResponse, error) {
	r, err := Draw(entropy)
	if err != nil {
		return model.RandomResponse{}, err
	}
	return model.RandomResponse{RandomNumber: Derive(req.Min, req.Max, r)}, nil
}
