package internal

import "fmt"

// Env is one lexical scope. enclosing is not owned by the scope and must
// outlive it.
type Env struct {
	enclosing *Env
	values    map[string]Value
	constants map[string]bool
}

// NewEnv creates a scope nested in enclosing, which may be nil
func NewEnv(enclosing *Env) *Env {
	return &Env{
		enclosing: enclosing,
		values:    make(map[string]Value),
		constants: make(map[string]bool),
	}
}

// Declare binds name in this scope
func (e *Env) Declare(name string, value Value, constant bool) (Value, error) {
	if _, ok := e.values[name]; ok {
		return nil, fmt.Errorf("%w: '%s'", ErrDuplicateBinding, name)
	}
	e.define(name, value, constant)
	return value, nil
}

// Assign rebinds name in the nearest scope declaring it
func (e *Env) Assign(name string, value Value) (Value, error) {
	env, err := e.Resolve(name)
	if err != nil {
		return nil, err
	}
	if env.constants[name] {
		return nil, fmt.Errorf("%w: '%s'", ErrConstantViolation, name)
	}
	env.values[name] = value
	return value, nil
}

// Lookup returns the value bound to name
func (e *Env) Lookup(name string) (Value, error) {
	env, err := e.Resolve(name)
	if err != nil {
		return nil, err
	}
	return env.values[name], nil
}

// Resolve returns the nearest scope, starting at e, that declares name
func (e *Env) Resolve(name string) (*Env, error) {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name]; ok {
			return env, nil
		}
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnresolvedName, name)
}

// IsConstant reports whether name is declared constant in this scope
func (e *Env) IsConstant(name string) bool {
	return e.constants[name]
}

// define binds name without checking for a previous binding
func (e *Env) define(name string, value Value, constant bool) {
	e.values[name] = value
	if constant {
		e.constants[name] = true
	} else {
		delete(e.constants, name)
	}
}
