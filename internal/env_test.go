package internal

import (
	"errors"
	"testing"
)

func TestEnvDeclareAndLookup(t *testing.T) {
	env := NewEnv(nil)
	if _, err := env.Declare("x", NewNumber(1), false); err != nil {
		t.Fatal(err)
	}
	if _, err := env.Declare("x", NewNumber(2), false); !errors.Is(err, ErrDuplicateBinding) {
		t.Errorf("expected duplicate binding, got %v", err)
	}

	val, err := env.Lookup("x")
	if err != nil {
		t.Fatal(err)
	}
	if val.String() != "1" {
		t.Errorf("x should be 1 instead of %s", val)
	}

	if _, err := env.Lookup("y"); !errors.Is(err, ErrUnresolvedName) {
		t.Errorf("expected unresolved name, got %v", err)
	}
}

func TestEnvShadowing(t *testing.T) {
	outer := NewEnv(nil)
	outer.Declare("x", NewNumber(1), true)

	inner := NewEnv(outer)
	if _, err := inner.Declare("x", NewNumber(2), false); err != nil {
		t.Fatalf("shadowing in a child scope should be allowed: %v", err)
	}
	if _, err := inner.Assign("x", NewNumber(3)); err != nil {
		t.Fatalf("inner x is not constant: %v", err)
	}

	innerVal, _ := inner.Lookup("x")
	outerVal, _ := outer.Lookup("x")
	if innerVal.String() != "3" || outerVal.String() != "1" {
		t.Errorf("expected inner 3 and outer 1, got %s and %s", innerVal, outerVal)
	}
}

func TestEnvAssign(t *testing.T) {
	outer := NewEnv(nil)
	outer.Declare("x", NewNumber(1), false)
	outer.Declare("c", NewNumber(1), true)
	inner := NewEnv(NewEnv(outer))

	if _, err := inner.Assign("x", NewString("two")); err != nil {
		t.Fatal(err)
	}
	if val, _ := outer.Lookup("x"); val.String() != "two" {
		t.Errorf("assignment should reach the declaring scope, got %s", val)
	}

	if _, err := inner.Assign("c", NewNumber(2)); !errors.Is(err, ErrConstantViolation) {
		t.Errorf("expected constant violation, got %v", err)
	}
	if val, _ := outer.Lookup("c"); val.String() != "1" {
		t.Errorf("constant should be unchanged, got %s", val)
	}

	if _, err := inner.Assign("missing", NewNull()); !errors.Is(err, ErrUnresolvedName) {
		t.Errorf("expected unresolved name, got %v", err)
	}
}

func TestEnvResolve(t *testing.T) {
	root := NewEnv(nil)
	root.Declare("a", NewBool(true), false)
	middle := NewEnv(root)
	middle.Declare("b", NewBool(false), false)
	leaf := NewEnv(middle)

	if env, err := leaf.Resolve("a"); err != nil || env != root {
		t.Errorf("a should resolve to root, got %p %v", env, err)
	}
	if env, err := leaf.Resolve("b"); err != nil || env != middle {
		t.Errorf("b should resolve to middle, got %p %v", env, err)
	}
	if _, err := root.Resolve("b"); !errors.Is(err, ErrUnresolvedName) {
		t.Errorf("parents must not see child bindings, got %v", err)
	}
}

func TestEnvIsConstant(t *testing.T) {
	env := NewEnv(nil)
	env.Declare("c", NewNumber(1), true)
	env.Declare("v", NewNumber(1), false)
	if !env.IsConstant("c") || env.IsConstant("v") || env.IsConstant("missing") {
		t.Error("unexpected constant flags")
	}

	env.define("c", NewNumber(2), false)
	if env.IsConstant("c") {
		t.Error("define should clear the constant flag")
	}
}
