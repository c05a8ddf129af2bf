package body

import "fmt"

// StringAcc accumulates the run of characters currently being scanned.
// The zero value is an empty accumulator.
type StringAcc struct {
	buf []rune
}

func NewStringAcc() *StringAcc {
	return &StringAcc{}
}

// NewStringAccRune seeds the accumulator with the character that opened
// the run.
func NewStringAccRune(c rune) *StringAcc {
	return &StringAcc{buf: []rune{c}}
}

func (a *StringAcc) Push(c rune) {
	a.buf = append(a.buf, c)
}

// Pop removes the last n characters. Callers track how many characters
// they pushed; asking for more than that fails with ErrOutOfRange before
// anything is removed.
func (a *StringAcc) Pop(n int) error {
	if n == 0 {
		return nil
	}
	if n < 0 || n > len(a.buf) {
		return fmt.Errorf("%w: pop %d of %d", ErrOutOfRange, n, len(a.buf))
	}
	a.buf = a.buf[:len(a.buf)-n]
	return nil
}

func (a *StringAcc) Len() int {
	return len(a.buf)
}

// Finalize returns the accumulated run as a string. It does not modify
// the accumulator and may be called repeatedly.
func (a *StringAcc) Finalize() string {
	return string(a.buf)
}

func (a *StringAcc) reset() {
	a.buf = a.buf[:0]
}
