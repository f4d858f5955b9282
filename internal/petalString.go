package internal

import "strconv"

type petalString string

// NewString wraps s
func NewString(s string) Value {
	return petalString(s)
}

func (s petalString) Kind() ValueKind {
	return KindString
}

func (s petalString) String() string {
	return string(s)
}

func (s petalString) Repr() string {
	return strconv.Quote(string(s))
}

func (petalString) isValue() {}
