package fastfloat

import (
	"strconv"

	"github.com/shogo82148/fastfloat/internal/lexer"
)

// ErrEmpty and ErrInvalid are the only two syntactic failure modes a Parse
// function reports (spec.md §6): an empty string, or anything that does
// not match the decimal, hex-float or special-value grammars. They are
// always wrapped in a *NumError before being returned to the caller.
var (
	ErrEmpty   = lexer.ErrEmpty
	ErrInvalid = lexer.ErrInvalid
)

// NumError records a failed conversion, naming the function and the input
// that failed, in the same shape strconv.NumError uses for ParseFloat.
type NumError struct {
	Func string
	Num  string
	Err  error
}

func (e *NumError) Error() string {
	return "fastfloat." + e.Func + ": parsing " + strconv.Quote(e.Num) + ": " + e.Err.Error()
}

func (e *NumError) Unwrap() error { return e.Err }

func numErr(fn, s string, err error) error {
	if err == nil {
		return nil
	}
	return &NumError{Func: fn, Num: s, Err: err}
}
