package board

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN")

	// ErrIllegalMove indicates a move that is not legal in the current position.
	ErrIllegalMove = errors.New("illegal move")
)

// FENError reports which FEN field could not be parsed. It unwraps to
// ErrInvalidFEN or to a more specific cause such as ErrInvalidSquare.
type FENError struct {
	Field string // e.g. "placement", "side", "castling"
	Value string // offending text
	Err   error
}

func (e *FENError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%v: %s %q", e.Err, e.Field, e.Value)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Field)
}

func (e *FENError) Unwrap() error { return e.Err }

// Is lets errors.Is match ErrInvalidFEN for every FENError, including those
// wrapping a more specific cause.
func (e *FENError) Is(target error) bool { return target == ErrInvalidFEN }

func fenError(field, value string) error {
	return &FENError{Field: field, Value: value, Err: ErrInvalidFEN}
}
