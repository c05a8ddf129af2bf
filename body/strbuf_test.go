package body

import (
	"errors"
	"testing"
)

func TestStringAccRoundTrip(t *testing.T) {
	ins := []string{"", "a", "abc def", "héllo ∞", "  spaced  "}
	for _, in := range ins {
		acc := NewStringAcc()
		for _, c := range in {
			acc.Push(c)
		}
		if got := acc.Finalize(); got != in {
			t.Errorf("got %q want %q", got, in)
		}
		// finalize is repeatable
		if got := acc.Finalize(); got != in {
			t.Errorf("second finalize got %q want %q", got, in)
		}
	}
}

func TestStringAccSeed(t *testing.T) {
	acc := NewStringAccRune('@')
	acc.Push('x')
	if got := acc.Finalize(); got != "@x" {
		t.Errorf("got %q want %q", got, "@x")
	}
}

func TestStringAccPop(t *testing.T) {
	acc := NewStringAcc()
	for _, c := range "abcde" {
		acc.Push(c)
	}
	if err := acc.Pop(0); err != nil {
		t.Fatal(err)
	}
	if acc.Len() != 5 {
		t.Errorf("pop 0 changed length to %d", acc.Len())
	}
	if err := acc.Pop(2); err != nil {
		t.Fatal(err)
	}
	if got := acc.Finalize(); got != "abc" {
		t.Errorf("got %q want %q", got, "abc")
	}
	if err := acc.Pop(3); err != nil {
		t.Fatal(err)
	}
	if acc.Len() != 0 {
		t.Errorf("want empty, len %d", acc.Len())
	}
	if err := acc.Pop(1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("got %v want ErrOutOfRange", err)
	}
}

func TestStringAccPopOutOfRange(t *testing.T) {
	acc := NewStringAcc()
	for _, c := range "abc" {
		acc.Push(c)
	}
	if err := acc.Pop(4); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("got %v want ErrOutOfRange", err)
	}
	// a failed pop must not mutate
	if got := acc.Finalize(); got != "abc" {
		t.Errorf("got %q want %q", got, "abc")
	}
}
