package model

import "errors"

var (
	ErrInsufficientDeposit = errors.New("deposit below minimum")
	ErrInsufficientGas     = errors.New("not enough prepaid gas")
	ErrInvalidChoice       = errors.New("invalid choice")
	ErrInvalidDeposit      = errors.New("invalid deposit")
	ErrInvalidPlayer       = errors.New("invalid player")
	ErrExecutionFailed     = errors.New("remote execution failed")
	ErrSystemError         = errors.New("promise system error")
	ErrWagerNotFound       = errors.New("pending wager not found")
	ErrDuplicateRequest    = errors.New("duplicate request")
	ErrRequestExpired      = errors.New("request expired")
)
