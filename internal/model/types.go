package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CoinSide is encoded as 0 (Heads) and 1 (Tails). The remote draw is
// compared against this numeric domain, so the values must not change.
type CoinSide uint8

const (
	Heads CoinSide = 0
	Tails CoinSide = 1
)

// SideFromNumber maps a random draw onto a coin side. Any nonzero value is Tails.
func SideFromNumber(n uint32) CoinSide {
	if n == 0 {
		return Heads
	}
	return Tails
}

func ParseCoinSide(s string) (CoinSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heads", "0":
		return Heads, nil
	case "tails", "1":
		return Tails, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, s)
	}
}

func (s CoinSide) String() string {
	switch s {
	case Heads:
		return "Heads"
	case Tails:
		return "Tails"
	default:
		return fmt.Sprintf("CoinSide(%d)", uint8(s))
	}
}

func (s CoinSide) MarshalJSON() ([]byte, error) {
	if s != Heads && s != Tails {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChoice, uint8(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts both the side name and its numeric encoding.
func (s *CoinSide) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		side, err := ParseCoinSide(name)
		if err != nil {
			return err
		}
		*s = side
		return nil
	}

	var n uint8
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidChoice, string(data))
	}
	side, err := ParseCoinSide(fmt.Sprint(n))
	if err != nil {
		return err
	}
	*s = side
	return nil
}

// Gas is the host's execution budget unit.
type Gas uint64

const TeraGas Gas = 1_000_000_000_000

func (g Gas) String() string {
	return fmt.Sprintf("%d", uint64(g))
}

// ResultKind tags the three outcomes a remote call can end with.
type ResultKind uint8

const (
	// ResultValue: the remote execution returned a structured payload.
	ResultValue ResultKind = iota
	// ResultEmpty: the remote execution ran but produced no usable answer.
	ResultEmpty
	// ResultError: the call itself could not complete.
	ResultError
)

func (k ResultKind) String() string {
	switch k {
	case ResultValue:
		return "value"
	case ResultEmpty:
		return "empty"
	case ResultError:
		return "error"
	default:
		return fmt.Sprintf("ResultKind(%d)", uint8(k))
	}
}

// CallbackResult is what the continuation receives once the remote call completes.
type CallbackResult struct {
	Kind     ResultKind
	Response RandomResponse
	Err      error
}

func ValueResult(resp RandomResponse) CallbackResult {
	return CallbackResult{Kind: ResultValue, Response: resp}
}

func EmptyResult() CallbackResult {
	return CallbackResult{Kind: ResultEmpty}
}

func ErrorResult(err error) CallbackResult {
	return CallbackResult{Kind: ResultError, Err: err}
}
