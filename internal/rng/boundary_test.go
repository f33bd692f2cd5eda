package rng

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"coinflip/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute_FixedRange(t *testing.T) {
	for _, draw := range []uint32{0, 1, 42, ^uint32(0)} {
		buf, err := Execute([]byte(`{"min":3,"max":3}`), entropyOf(draw))
		require.NoError(t, err)

		payload, err := ReadFrame(buf)
		require.NoError(t, err)
		assert.JSONEq(t, `{"random_number":3}`, string(payload))
	}
}

func TestExecute_FrameLayout(t *testing.T) {
	buf, err := Execute([]byte(`{"min":0,"max":1}`), entropyOf(1))
	require.NoError(t, err)

	payload := []byte(`{"random_number":1}`)
	assert.Equal(t, []byte{byte(len(payload)), 0, 0, 0}, buf[:4])
	assert.Equal(t, payload, buf[4:])
}

func TestExecute_DoesNotMutateInput(t *testing.T) {
	input := []byte(`{"min":1,"max":6}`)
	orig := bytes.Clone(input)

	_, err := Execute(input, entropyOf(3))
	require.NoError(t, err)
	assert.Equal(t, orig, input)
}

func TestExecute_Failures(t *testing.T) {
	_, err := Execute([]byte(`{"min":`), entropyOf(0))
	assert.ErrorIs(t, err, ErrBadInput)
	assert.Equal(t, StatusBadInput, Status(err))

	_, err = Execute([]byte(`{"min":-1,"max":2}`), entropyOf(0))
	assert.ErrorIs(t, err, ErrBadInput)

	_, err = Execute([]byte(`{"min":0,"max":4294967296}`), entropyOf(0))
	assert.ErrorIs(t, err, ErrBadInput)

	_, err = Execute([]byte(`{"min":0,"max":1}`), failingReader{})
	assert.ErrorIs(t, err, ErrEntropyUnavailable)
	assert.Equal(t, StatusNoEntropy, Status(err))
}

func TestExecute_IncompleteRange(t *testing.T) {
	inputs := []string{
		`{}`,
		`null`,
		`[]`,
		`"min"`,
		`{"max":1}`,
		`{"min":0}`,
		`{"min":null,"max":1}`,
		`{"min":0,"max":null}`,
		`{"MIN":5,"MAX":9}`,
		`{"Min":5,"max":9}`,
		`{"min":1.5,"max":9}`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			buf, err := Execute([]byte(input), entropyOf(1))

			assert.Nil(t, buf)
			assert.ErrorIs(t, err, ErrBadInput)
			assert.Equal(t, StatusBadInput, Status(err))
		})
	}
}

func TestExecute_ExtraFieldsIgnored(t *testing.T) {
	buf, err := Execute([]byte(`{"min":5,"max":9,"seed":"x"}`), entropyOf(1))
	require.NoError(t, err)

	payload, err := ReadFrame(buf)
	require.NoError(t, err)
	assert.JSONEq(t, `{"random_number":6}`, string(payload))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, int32(0), Status(nil))
	assert.Equal(t, StatusSerialize, Status(fmt.Errorf("wrap: %w", ErrSerialization)))
	assert.Equal(t, StatusAllocation, Status(ErrAllocation))
	assert.Less(t, Status(assert.AnError), int32(0))
}

func TestFrame_TooLarge(t *testing.T) {
	_, err := frame(make([]byte, MaxOutputSize))
	assert.ErrorIs(t, err, ErrAllocation)
}

func TestReadFrame_Truncated(t *testing.T) {
	_, err := ReadFrame([]byte{1, 0})
	assert.ErrorIs(t, err, ErrSerialization)

	_, err = ReadFrame([]byte{9, 0, 0, 0, '{'})
	assert.ErrorIs(t, err, ErrSerialization)
}

func TestExecute_OutputParses(t *testing.T) {
	buf, err := Execute([]byte(`{"min":10,"max":20}`), entropyOf(5))
	require.NoError(t, err)

	payload, err := ReadFrame(buf)
	require.NoError(t, err)

	var resp model.RandomResponse
	require.NoError(t, json.Unmarshal(payload, &resp))
	assert.Equal(t, uint32(15), resp.RandomNumber)
}
