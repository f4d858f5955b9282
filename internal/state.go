package internal

import (
	"errors"
	"fmt"
)

// ParseError is a structural failure found while scanning or parsing.
type ParseError struct {
	Line int
	Near string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Near != "" {
		return fmt.Sprintf("Parse error on line %d: %s, near %s", e.Line, e.Err, e.Near)
	}
	return fmt.Sprintf("Parse error on line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RuntimeError is a failure raised while evaluating a program.
type RuntimeError struct {
	Line   int
	Detail string
	Err    error
}

func (e *RuntimeError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Line > 0 {
		return fmt.Sprintf("Runtime error on line %d: %s", e.Line, msg)
	}
	return "Runtime error: " + msg
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// interpreterState stores the state of one parse unit
type interpreterState struct {
	source  string
	tokens  []token
	program *Program
	errors  []error
}

func newInterpreterState(source string) *interpreterState {
	return &interpreterState{source: source, errors: make([]error, 0)}
}

func (s *interpreterState) setError(err error, line int, near string) {
	s.errors = append(s.errors, &ParseError{
		Line: line,
		Near: near,
		Err:  err,
	})
}

// fatalError records err and aborts the current parse
func (s *interpreterState) fatalError(err error, line int, near string) {
	s.setError(err, line, near)
	panic(s.errors[len(s.errors)-1])
}

// Valid returns true if no error was recorded
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// Err returns the first recorded error
func (s *interpreterState) Err() error {
	if s.Valid() {
		return nil
	}
	return s.errors[0]
}

// runtimeErr aborts the current evaluation
func runtimeErr(err error, tk *token, detail string) {
	line := 0
	if tk != nil {
		line = tk.line
	}
	panic(&RuntimeError{Line: line, Detail: detail, Err: err})
}

// Lexer errors
var errIllegalChar = errors.New("Illegal character")
var errUnclosedString = errors.New("Closing \" was expected")
var errInvalidNumber = errors.New("Invalid number literal")

// Parser errors
var errUnexpectedToken = errors.New("Unexpected token found during parsing")
var errUnclosedParen = errors.New("Expected ')' after expression")
var errUnclosedArguments = errors.New("Missing closing parenthesis inside arguments list")
var errUnclosedBracket = errors.New("Missing closing bracket in computed value")
var errUnclosedCurlyBrace = errors.New("Object literal missing closing brace")
var errExpectedOpenParen = errors.New("Expected open parenthesis")
var errExpectedColon = errors.New("Missing colon following identifier in object literal")
var errExpectedComma = errors.New("Expected comma or closing brace following property")
var errExpectedKey = errors.New("Object literal key expected")
var errExpectedProp = errors.New("Cannot use dot operator without right hand side being an identifier")
var errExpectedIdentifier = errors.New("Expected identifier name following let | const keywords")
var errExpectedEquals = errors.New("Expected equals token following identifier in var declaration")
var errExpectedSemicolon = errors.New("Variable declaration statement must end with semicolon")
var errConstWithoutValue = errors.New("Must assign value to constant expression, no value provided")
var errExpectedQuote = errors.New("Expected quotation token after assignment of string data type")
var errExpectedNumber = errors.New("Expected number after assignment of int data type")
var errExpectedBool = errors.New("Boolean value must be true or false")
var errExpectedFunctionName = errors.New("Expected function name following func declaration keyword")
var errExpectedFunctionParam = errors.New("Inside function declaration expected parameters to be identifiers")
var errExpectedFunctionBody = errors.New("Expected function body following function declaration")
var errUnclosedFunctionBody = errors.New("Closing brace expected inside function declaration")
var errExpectedCondition = errors.New("Must enclose condition in parentheses")
var errMissingCondition = errors.New("Missing conditional statement")
var errExpectedBlock = errors.New("Missing curly brace to define block body")
var errEmptyBlock = errors.New("Missing block body")
var errUnclosedBlock = errors.New("Missing closing curly brace for block statement")

// Runtime errors
var (
	ErrDuplicateBinding    = errors.New("Cannot redeclare variable in the same scope")
	ErrUnresolvedName      = errors.New("Cannot resolve name as it does not exist")
	ErrConstantViolation   = errors.New("Cannot reassign variable declared constant")
	ErrBuiltinArity        = errors.New("Invalid number of arguments")
	ErrBuiltinType         = errors.New("Cannot use a non boolean value in a logic gate")
	ErrUnhandledNode       = errors.New("AST node has not been set up for interpretation")
	ErrNotCallable         = errors.New("Can only call functions")
	ErrOperandType         = errors.New("Operands must be numbers")
	ErrConditionType       = errors.New("Condition must be a boolean")
	ErrInvalidAssignTarget = errors.New("Invalid assignment target")
	ErrInvalidMember       = errors.New("Member access requires an object")
	ErrInvalidKey          = errors.New("Object keys must be strings or numbers")
)

// IsIncomplete reports whether err is a parse error caused by input ending
// too early, such as an open block or an unterminated string
func IsIncomplete(err error) bool {
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		return false
	}
	return parseErr.Err == errUnclosedString || parseErr.Near == eofNear
}
