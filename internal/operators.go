package internal

import (
	"errors"
	"math"
)

type operatorApply func(x, y petalNumber) petalNumber

var errUndefinedOp = errors.New("Undefined operator")

var numberOperations = map[string]operatorApply{
	"+": func(x, y petalNumber) petalNumber {
		return x + y
	},
	"-": func(x, y petalNumber) petalNumber {
		return x - y
	},
	"*": func(x, y petalNumber) petalNumber {
		return x * y
	},
	"/": func(x, y petalNumber) petalNumber {
		return x / y
	},
	"%": func(x, y petalNumber) petalNumber {
		return petalNumber(math.Mod(float64(x), float64(y)))
	},
}
