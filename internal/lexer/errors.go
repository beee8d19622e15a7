package lexer

import "errors"

// ErrEmpty and ErrInvalid are the two syntactic failure modes the tokenizer
// can report; the facade wraps them into the public fastfloat.NumError.
var (
	ErrEmpty   = errors.New("empty input")
	ErrInvalid = errors.New("invalid syntax")
)

var errInvalid = ErrInvalid
