package rng

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"coinflip/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entropyOf(v uint32) *bytes.Reader {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return bytes.NewReader(b[:])
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestDerive_StaysInRange(t *testing.T) {
	ranges := []model.RangeRequest{{Min: 0, Max: 1}, {Min: 5, Max: 9}, {Min: 100, Max: 1000}, {Min: 0, Max: ^uint32(0)}}
	draws := []uint32{0, 1, 2, 7, 12345, 1 << 31, ^uint32(0)}

	for _, rg := range ranges {
		for _, r := range draws {
			got := Derive(rg.Min, rg.Max, r)
			assert.GreaterOrEqual(t, got, rg.Min)
			assert.LessOrEqual(t, got, rg.Max)
		}
	}
}

func TestDerive_Modulo(t *testing.T) {
	assert.Equal(t, uint32(0), Derive(0, 1, 4))
	assert.Equal(t, uint32(1), Derive(0, 1, 5))
	assert.Equal(t, uint32(7), Derive(5, 9, 7))
	assert.Equal(t, ^uint32(0), Derive(0, ^uint32(0), ^uint32(0)))
}

func TestDerive_DegenerateAndInvertedRange(t *testing.T) {
	for _, r := range []uint32{0, 1, 99, ^uint32(0)} {
		assert.Equal(t, uint32(3), Derive(3, 3, r))
		assert.Equal(t, uint32(9), Derive(9, 5, r))
	}
}

func TestDraw_LittleEndian(t *testing.T) {
	r, err := Draw(bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x80}))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x80000001), r)
}

func TestDraw_ShortEntropy(t *testing.T) {
	_, err := Draw(bytes.NewReader([]byte{1, 2}))
	assert.ErrorIs(t, err, ErrEntropyUnavailable)

	_, err = Draw(failingReader{})
	assert.ErrorIs(t, err, ErrEntropyUnavailable)
}

func TestGenerate(t *testing.T) {
	resp, err := Generate(entropyOf(12), model.RangeRequest{Min: 5, Max: 9})
	require.NoError(t, err)
	assert.Equal(t, uint32(7), resp.RandomNumber)
}
