package internal

import (
	"fmt"
	"strings"
	"time"
)

// DefineGlobals installs the builtin library into e as constants and
// returns e. print writes through p.
func DefineGlobals(e *Env, p IPrinter) *Env {
	defineConstants(e)
	definePrint(e, p)
	defineTime(e)
	defineLogic(e)
	return e
}

func defineConstants(e *Env) {
	e.define("true", petalBool(true), true)
	e.define("false", petalBool(false), true)
	e.define("null", petalNull{}, true)
}

func definePrint(e *Env, p IPrinter) {
	var printFn nativeFn
	printFn.name = "print"
	printFn.callFn = func(arguments []Value, _ *Env) (Value, error) {
		parts := make([]string, len(arguments))
		for i, arg := range arguments {
			parts[i] = arg.String()
		}
		if _, err := p.Println(strings.Join(parts, " ")); err != nil {
			return nil, err
		}
		return petalNull{}, nil
	}

	e.define("print", &printFn, true)
}

// time returns milliseconds since the Unix epoch
func defineTime(e *Env) {
	var timeFn nativeFn
	timeFn.name = "time"
	timeFn.callFn = func(arguments []Value, _ *Env) (Value, error) {
		return petalNumber(time.Now().UnixNano() / int64(time.Millisecond)), nil
	}

	e.define("time", &timeFn, true)
}

func defineLogic(e *Env) {
	e.define("not", logicGate("not", 1, func(in []bool) bool {
		return !in[0]
	}), true)
	e.define("or", logicGate("or", 2, func(in []bool) bool {
		return in[0] || in[1]
	}), true)
	e.define("nor", logicGate("nor", 2, func(in []bool) bool {
		return !(in[0] || in[1])
	}), true)
	e.define("and", logicGate("and", 2, func(in []bool) bool {
		return in[0] && in[1]
	}), true)
	e.define("nand", logicGate("nand", 2, func(in []bool) bool {
		return !(in[0] && in[1])
	}), true)
	e.define("xor", logicGate("xor", 2, func(in []bool) bool {
		return in[0] != in[1]
	}), true)
	e.define("xnor", logicGate("xnor", 2, func(in []bool) bool {
		return in[0] == in[1]
	}), true)
}

// logicGate builds a native taking exactly arity booleans
func logicGate(name string, arity int, gate func(in []bool) bool) *nativeFn {
	return &nativeFn{
		name: name,
		callFn: func(arguments []Value, _ *Env) (Value, error) {
			if len(arguments) != arity {
				return nil, fmt.Errorf("%w: %s expects %d, got %d", ErrBuiltinArity, name, arity, len(arguments))
			}
			in := make([]bool, arity)
			for i, arg := range arguments {
				b, isBool := arg.(petalBool)
				if !isBool {
					return nil, fmt.Errorf("%w: %s got %s", ErrBuiltinType, name, arg.Kind())
				}
				in[i] = bool(b)
			}
			return petalBool(gate(in)), nil
		},
	}
}
