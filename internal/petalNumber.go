package internal

import (
	"math"
	"strconv"
)

type petalNumber float64

// NewNumber wraps n
func NewNumber(n float64) Value {
	return petalNumber(n)
}

func (n petalNumber) Kind() ValueKind {
	return KindNumber
}

func (n petalNumber) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (petalNumber) isValue() {}

func (n petalNumber) getOperator(op string) (operatorApply, error) {
	if apply, ok := numberOperations[op]; ok {
		return apply, nil
	}
	return nil, errUndefinedOp
}
