package internal

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

type testPrinter struct {
	printed string
}

func (t *testPrinter) Println(a ...interface{}) (n int, err error) {
	for i, e := range a {
		if i != 0 {
			t.printed += " "
		}
		t.printed += fmt.Sprintf("%v", e)
	}
	t.printed += "\n"
	return 0, nil
}

func (t *testPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	t.printed += fmt.Sprintf(format, a...)
	return 0, nil
}

func (t *testPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return t.Println(a...)
}

func (t *testPrinter) Equals(p string) bool {
	if t.printed == p+"\n" {
		t.Reset()
		return true
	}
	return false
}

func (t *testPrinter) Reset() {
	t.printed = ""
}

func checkExpression(t *testing.T, exp string, result ...string) {
	source := "print(" + exp + ")"
	tp := &testPrinter{}
	RunSourceWithPrinter("", source, tp)
	any := false
	for _, r := range result {
		if tp.Equals(r) {
			any = true
			break
		}
	}
	if !any {
		t.Errorf(
			"Error on: \n%s\n\tResult should be equal to %s instead of %s",
			exp,
			result,
			tp.printed,
		)
	}
}

func checkErrorMsg(t *testing.T, source string, errorMsg string) {
	tp := &testPrinter{}
	RunSourceWithPrinter("", source, tp)
	if !tp.Equals(errorMsg) {
		t.Errorf(
			"\nSource:\n----\n%s\n----\nExpected:\n----\n%s\n----\nFound:\n----\n%s----",
			source,
			errorMsg,
			tp.printed,
		)
	}
}

func checkStatements(t *testing.T, code string, resultVar string, result string) {
	source := code + "\nprint(" + resultVar + ")"
	tp := &testPrinter{}
	RunSourceWithPrinter("", source, tp)
	if !tp.Equals(result) {
		t.Errorf(
			"Error on: \n%s\n\t%s should be equal to %s instead of %s",
			code,
			resultVar,
			result,
			tp.printed,
		)
	}
}

func checkErrorIs(t *testing.T, source string, target error) {
	_, err := NewInterpreter(WithPrinter(&testPrinter{})).Run(source)
	if !errors.Is(err, target) {
		t.Errorf("Error on: \n%s\n\texpected %v, got %v", source, target, err)
	}
}

func TestExpressions(t *testing.T) {

	// Arithmetic
	{
		checkExpression(t, "1", "1")
		checkExpression(t, "1 + 2 + 3", "6")
		checkExpression(t, "8 - 2", "6")
		checkExpression(t, "5 - 7", "-2")
		checkExpression(t, "1 * 2 * 3", "6")
		checkExpression(t, "12 / 2", "6")
		checkExpression(t, "10 / 4", "2.5")
		checkExpression(t, "7 % 4", "3")
		checkExpression(t, "1.5 * 2", "3")
		checkExpression(t, "1 / 0", "Infinity")
		checkExpression(t, "0 / 0", "NaN")
	}

	// Precedence
	{
		checkExpression(t, "2 + 3 * 4", "14")
		checkExpression(t, "(2 + 3) * 4", "20")
		checkExpression(t, "10 - 4 - 3", "3")
		checkExpression(t, "24 / 4 / 2", "3")
		checkExpression(t, "2 * 3 + 4 * 5", "26")
	}

	// Strings
	{
		checkExpression(t, `"hello"`, "hello")
		checkExpression(t, `"hello    world"`, "hello world")
		checkExpression(t, `""`, "")
	}

	// Builtin constants
	{
		checkExpression(t, "true", "true")
		checkExpression(t, "false", "false")
		checkExpression(t, "null", "null")
	}

	// Logic gates
	{
		checkExpression(t, "not(true)", "false")
		checkExpression(t, "not(false)", "true")
		checkExpression(t, "and(true, false)", "false")
		checkExpression(t, "and(true, true)", "true")
		checkExpression(t, "nand(true, true)", "false")
		checkExpression(t, "or(false, true)", "true")
		checkExpression(t, "nor(false, false)", "true")
		checkExpression(t, "xor(true, false)", "true")
		checkExpression(t, "xor(true, true)", "false")
		checkExpression(t, "xnor(true, true)", "true")
		checkExpression(t, "not(and(true, or(false, false)))", "true")
	}

	// Objects
	{
		checkExpression(t, "{}", "{}")
		checkExpression(t, "{ a: 1, b: 2 }", "{ a: 1, b: 2 }")
		checkExpression(t, `{ s: "x  y" }`, `{ s: "x y" }`)
		checkExpression(t, "{ a: { b: true } }", "{ a: { b: true } }")
	}

	// Functions and print
	{
		checkExpression(t, "print", "<fn native>")
		checkExpression(t, `1, "a b", true`, "1 a b true")
		checkExpression(t, "print(1)", "1\nnull")
	}
}

func TestStatements(t *testing.T) {

	// Declarations
	{
		checkStatements(t, "let x = 5;", "x", "5")
		checkStatements(t, "const y = 2 + 3;", "y", "5")
		checkStatements(t, "let x;", "x", "null")
		checkStatements(t, "let n: int = 42;", "n", "42")
		checkStatements(t, "let b: bool = false;", "b", "false")
		checkStatements(t, `let s: string = "hello world";`, "s", "hello world \b")
		checkStatements(t, "let x = 1;\nlet y = x = 7;", "y", "7")
		checkStatements(t, "let x = 1;\nlet y = x = 7;", "x", "7")
		checkStatements(t, "# comment\nlet x = 3; # trailing\n", "x", "3")
	}

	// Functions
	{
		checkStatements(t, "func add(a, b) { a + b }\nlet r = add(2, 3);", "r", "5")
		checkStatements(t, "func f(a, b) { b }\nlet r = f(1);", "r", "null")
		checkStatements(t, "func f(a) { a }\nlet r = f(1, 2, 3);", "r", "1")
		checkStatements(t, "func f() { let x = 1; }\nlet r = f();", "r", "1")
		checkStatements(t, "func f() { 1 }", "f", "<fn f>")
		checkStatements(t, "let x = 1;\nfunc f() { x }\nx = 2;\nlet r = f();", "r", "2")
		checkStatements(t, `
let x = 1;
func inc() { x = x + 1 }
inc()
`, "x", "2")
		checkStatements(t, `
func makeCounter() {
    let count = 0;
    func next() { count = count + 1 }
    next
}
let c = makeCounter();
c();
c();
let r = c();
`, "r", "3")
		checkStatements(t, `
func adder(a) {
    func add(b) { a + b }
    add
}
let r = adder(10)(5);
`, "r", "15")
	}

	// Scopes
	{
		checkStatements(t, "let x = 1;\nfunc f() { let x = 2; x }\nlet y = f();", "x", "1")
		checkStatements(t, "let x = 1;\nfunc f() { let x = 2; x }\nlet y = f();", "y", "2")
		checkStatements(t, "let x = 1;\nif (true) { let x = 5; x = 6 }", "x", "1")
		checkStatements(t, "let x = 1;\nif (true) { x = 6 }", "x", "6")
	}

	// Conditionals
	{
		checkStatements(t, "let r = 0;\nif (true) { r = 1 }", "r", "1")
		checkStatements(t, "let r = 0;\nif (false) { r = 1 }", "r", "0")
		checkStatements(t, `
let r = 0;
if (false) { r = 1 } elif (true) { r = 2 } else { r = 3 }
`, "r", "2")
		checkStatements(t, `
let r = 0;
if (and(true, false)) { r = 1 } elif (false) { r = 2 } else { r = 3 }
`, "r", "3")
		checkStatements(t, `
func pick(v) {
    if (v) { "yes" } else { "no" }
}
let r = pick(false);
`, "r", "no")
	}

	// Members
	{
		checkStatements(t, "let o = { a: 1, b: { c: 2 } };", "o.b.c", "2")
		checkStatements(t, "let o = { a: 1, b: { c: 2 } };\no.b.c = o.a + 5;", "o.b.c", "6")
		checkStatements(t, "let o = { a: 1 };\nlet k = \"a\";", "o[k]", "1")
		checkStatements(t, "let o = { a: 1 };", "o.missing", "null")
		checkStatements(t, "let o = {};\no[1] = 5;", "o[1]", "5")
		checkStatements(t, "let o = {};\no.x = 5;", "o", "{ x: 5 }")
		checkStatements(t, "let o = { a: 1, b: 2 };\no.a = 3;", "o", "{ a: 3, b: 2 }")
		checkStatements(t, "let a = 1;\nlet b = 2;\nlet o = { a, b };", "o", "{ a: 1, b: 2 }")
		checkStatements(t, "let a = 1;\nlet o = { a, b: 2 };", "o", "{ a: 1, b: 2 }")
		checkStatements(t, "let o = { x: 1 };\no.self = o;", "o", "{ x: 1, self: {...} }")
		checkStatements(t, "let o = { f: print };\no.f(\"hi\");", "null", "hi\nnull")
		checkStatements(t, "func f() { { a: 1 } }\nlet r = (f()).a;", "r", "1")
	}
}

func TestRuntimeErrors(t *testing.T) {
	checkErrorMsg(t, "let x = 1;\nlet x = 2;",
		"Runtime error on line 2: Cannot redeclare variable in the same scope: 'x'")
	checkErrorMsg(t, "func f() { 1 }\nfunc f() { 2 }",
		"Runtime error on line 2: Cannot redeclare variable in the same scope: 'f'")
	checkErrorMsg(t, "const c = 1;\nc = 2",
		"Runtime error on line 2: Cannot reassign variable declared constant: 'c'")
	checkErrorMsg(t, "true = false",
		"Runtime error on line 1: Cannot reassign variable declared constant: 'true'")
	checkErrorMsg(t, "func f() { 1 }\nf = 2",
		"Runtime error on line 2: Cannot reassign variable declared constant: 'f'")
	checkErrorMsg(t, "y + 1",
		"Runtime error on line 1: Cannot resolve name as it does not exist: 'y'")
	checkErrorMsg(t, "z = 1",
		"Runtime error on line 1: Cannot resolve name as it does not exist: 'z'")
	checkErrorMsg(t, "not(1)",
		"Runtime error on line 1: Cannot use a non boolean value in a logic gate: not got number")
	checkErrorMsg(t, "and(true)",
		"Runtime error on line 1: Invalid number of arguments: and expects 2, got 1")
	checkErrorMsg(t, "let s = \"a\";\ns()",
		"Runtime error on line 2: Can only call functions: string")
	checkErrorMsg(t, "1 + true",
		"Runtime error on line 1: Operands must be numbers: number + boolean")
	checkErrorMsg(t, "\"a\" * 2",
		"Runtime error on line 1: Operands must be numbers: string * number")
	checkErrorMsg(t, "if (1) { 2 }",
		"Runtime error on line 1: Condition must be a boolean: number")
	checkErrorMsg(t, "1 = 2",
		"Runtime error on line 1: Invalid assignment target")
	checkErrorMsg(t, "let n = 1;\nn.x",
		"Runtime error on line 2: Member access requires an object: number")
	checkErrorMsg(t, "let o = {};\no[true]",
		"Runtime error on line 2: Object keys must be strings or numbers: boolean")

	checkErrorIs(t, "let x = 1;\nlet x = 2;", ErrDuplicateBinding)
	checkErrorIs(t, "const c = 1;\nc = 2", ErrConstantViolation)
	checkErrorIs(t, "missing", ErrUnresolvedName)
	checkErrorIs(t, "xor(true, 1)", ErrBuiltinType)
	checkErrorIs(t, "not()", ErrBuiltinArity)
	checkErrorIs(t, "1()", ErrNotCallable)
	checkErrorIs(t, "null + 1", ErrOperandType)
	checkErrorIs(t, "if (null) { 1 }", ErrConditionType)
	checkErrorIs(t, "(1 + 2) = 3", ErrInvalidAssignTarget)
	checkErrorIs(t, "print.x", ErrInvalidMember)
	checkErrorIs(t, "let o = {};\no[null] = 1", ErrInvalidKey)
}

func TestRuntimeErrorLine(t *testing.T) {
	_, err := NewInterpreter().Run("let a = 1;\n\n\na + b")
	var rtErr *RuntimeError
	if !errors.As(err, &rtErr) {
		t.Fatalf("expected *RuntimeError, got %T", err)
	}
	if rtErr.Line != 4 {
		t.Errorf("expected line 4, got %d", rtErr.Line)
	}
}

func TestEvaluateEmptyProgram(t *testing.T) {
	program, err := ProduceAST("")
	if err != nil {
		t.Fatal(err)
	}
	result, err := Evaluate(program, DefineGlobals(NewEnv(nil), &testPrinter{}))
	if err != nil {
		t.Fatal(err)
	}
	if result.Kind() != KindNull {
		t.Errorf("expected null, got %s", result)
	}
}

func TestEvaluateResult(t *testing.T) {
	tests := []struct {
		source string
		kind   ValueKind
		result string
	}{
		{"5 + 5", KindNumber, "10"},
		{"let x = 3;", KindNumber, "3"},
		{"let x;", KindNull, "null"},
		{"func f() { 1 }", KindFunc, "<fn f>"},
		{`"a b"`, KindString, "a b"},
		{"{ a: 1 }", KindObject, "{ a: 1 }"},
		{"if (false) { 1 }", KindNull, "null"},
		{"time", KindNativeFunc, "<fn native>"},
		{"or(true, false)", KindBoolean, "true"},
	}

	for _, test := range tests {
		program, err := ProduceAST(test.source)
		if err != nil {
			t.Errorf("%s: %v", test.source, err)
			continue
		}
		result, err := Evaluate(program, DefineGlobals(NewEnv(nil), &testPrinter{}))
		if err != nil {
			t.Errorf("%s: %v", test.source, err)
			continue
		}
		if result.Kind() != test.kind || result.String() != test.result {
			t.Errorf("%s: expected %s %s, got %s %s", test.source, test.kind, test.result, result.Kind(), result)
		}
	}
}

func TestInterpreterKeepsBindings(t *testing.T) {
	tp := &testPrinter{}
	interp := NewInterpreter(WithPrinter(tp))

	if _, err := interp.Run("let x = 40;"); err != nil {
		t.Fatal(err)
	}
	if _, err := interp.Run("let x = 1;"); !errors.Is(err, ErrDuplicateBinding) {
		t.Errorf("expected duplicate binding across runs, got %v", err)
	}
	result, err := interp.Run("x + 2")
	if err != nil {
		t.Fatal(err)
	}
	if result.String() != "42" {
		t.Errorf("expected 42, got %s", result)
	}

	// A failed unit leaves earlier bindings in place
	if _, err := interp.Run("let y = ;"); err == nil {
		t.Error("expected parse error")
	}
	if _, err := interp.Run("print(x)"); err != nil {
		t.Fatal(err)
	}
	if !tp.Equals("40") {
		t.Errorf("expected 40 to be printed, got %q", tp.printed)
	}
}

func TestTime(t *testing.T) {
	result, err := NewInterpreter().Run("time()")
	if err != nil {
		t.Fatal(err)
	}
	ms, ok := result.(petalNumber)
	if !ok {
		t.Fatalf("expected a number, got %s", result.Kind())
	}
	if ms < 1e12 {
		t.Errorf("expected milliseconds since epoch, got %s", ms)
	}
}
