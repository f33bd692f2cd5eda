package rng

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"coinflip/internal/model"
)

const (
	StatusBadInput   int32 = -1
	StatusNoEntropy  int32 = -2
	StatusSerialize  int32 = -3
	StatusAllocation int32 = -4

	statusUnknown int32 = -5
)

const (
	frameHeaderLength = 4

	// MaxOutputSize caps a framed output buffer.
	MaxOutputSize = 1 << 16
)

// Execute is the sandbox entry point expressed in Go: it reads a
// {"min","max"} JSON document and returns a newly allocated buffer holding a
// 4-byte little-endian length followed by the {"random_number"} JSON.
//
// input is owned by the caller and is not retained. The returned buffer
// belongs to the caller.
func Execute(input []byte, entropy io.Reader) ([]byte, error) {
	req, err := parseRange(input)
	if err != nil {
		return nil, err
	}

	resp, err := Generate(entropy, req)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	return frame(payload)
}

// parseRange requires an object with both "min" and "max" spelled exactly
// that way and holding unsigned 32-bit integers. Other keys are ignored.
func parseRange(input []byte) (model.RangeRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(input, &fields); err != nil {
		return model.RangeRequest{}, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	if fields == nil {
		return model.RangeRequest{}, fmt.Errorf("%w: expected an object", ErrBadInput)
	}

	lo, err := rangeField(fields, "min")
	if err != nil {
		return model.RangeRequest{}, err
	}
	hi, err := rangeField(fields, "max")
	if err != nil {
		return model.RangeRequest{}, err
	}
	return model.RangeRequest{Min: lo, Max: hi}, nil
}

func rangeField(fields map[string]json.RawMessage, name string) (uint32, error) {
	raw, ok := fields[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return 0, fmt.Errorf("%w: missing field %q", ErrBadInput, name)
	}

	var v uint32
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("%w: field %q: %v", ErrBadInput, name, err)
	}
	return v, nil
}

// ReadFrame returns the payload of a buffer produced by Execute.
func ReadFrame(buf []byte) ([]byte, error) {
	if len(buf) < frameHeaderLength {
		return nil, fmt.Errorf("%w: frame shorter than header", ErrSerialization)
	}
	n := binary.LittleEndian.Uint32(buf[:frameHeaderLength])
	if uint64(n) > uint64(len(buf)-frameHeaderLength) {
		return nil, fmt.Errorf("%w: frame declares %d bytes, has %d", ErrSerialization, n, len(buf)-frameHeaderLength)
	}
	return buf[frameHeaderLength : frameHeaderLength+int(n)], nil
}

// Status converts an Execute error into the negative status code used at the
// binary boundary. A nil error maps to 0.
func Status(err error) int32 {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrBadInput):
		return StatusBadInput
	case errors.Is(err, ErrEntropyUnavailable):
		return StatusNoEntropy
	case errors.Is(err, ErrSerialization):
		return StatusSerialize
	case errors.Is(err, ErrAllocation):
		return StatusAllocation
	default:
		return statusUnknown
	}
}

func frame(payload []byte) ([]byte, error) {
	total := frameHeaderLength + len(payload)
	if total > MaxOutputSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrAllocation, total, MaxOutputSize)
	}
	buf := make([]byte, total)
	binary.LittleEndian.PutUint32(buf[:frameHeaderLength], uint32(len(payload)))
	copy(buf[frameHeaderLength:], payload)
	return buf, nil
}
