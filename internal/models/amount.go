package models

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned by ParseAmount for input that is neither empty
// nor a non-negative integer.
var ErrInvalidAmount = errors.New("amount must be a non-negative whole number")

// Amount is an optional whole-currency value. Parsed input is never negative,
// but derived amounts such as a friend's share can be.
// The zero value is unset, which is distinct from AmountOf(0).
type Amount struct {
	value int64
	set   bool
}

// Unset returns an Amount with no value.
func Unset() Amount {
	return Amount{}
}

// AmountOf returns a set Amount holding v.
func AmountOf(v int64) Amount {
	return Amount{value: v, set: true}
}

// ParseAmount parses form input. Blank input yields an unset Amount.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unset(), nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return Unset(), ErrInvalidAmount
	}
	return AmountOf(v), nil
}

// IsSet reports whether a value was entered.
func (a Amount) IsSet() bool {
	return a.set
}

// Value returns the held value, or 0 when unset.
func (a Amount) Value() int64 {
	return a.value
}

// IsZero reports whether the amount is unset or zero.
func (a Amount) IsZero() bool {
	return !a.set || a.value == 0
}

// String renders the amount for a form field; unset renders as "".
func (a Amount) String() string {
	if !a.set {
		return ""
	}
	return strconv.FormatInt(a.value, 10)
}
