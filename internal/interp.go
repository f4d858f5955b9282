package internal

//go:generate sh -c "go run ../cmd/ast Stmt > stmt.go"
//go:generate sh -c "go run ../cmd/ast Expr > expr.go"

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Program is the root node of one parsed unit
type Program = programStmt

// Statements returns the number of top level statements
func (s *programStmt) Statements() int {
	return len(s.body)
}

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// StdPrinter writes to the process standard output
type StdPrinter struct{}

func (s StdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s StdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s StdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

// Interpreter keeps one root environment alive across many parse units
type Interpreter struct {
	globals *Env
	printer IPrinter
	logger  *logrus.Entry
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithPrinter sets where print writes
func WithPrinter(p IPrinter) Option {
	return func(i *Interpreter) {
		i.printer = p
	}
}

// WithLogger sets the logger used for debug tracing
func WithLogger(l *logrus.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logrus.NewEntry(l)
	}
}

// NewInterpreter creates an interpreter with the builtins installed
func NewInterpreter(opts ...Option) *Interpreter {
	i := &Interpreter{
		printer: StdPrinter{},
		logger:  logrus.NewEntry(discardLogger()),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.logger = i.logger.WithFields(logrus.Fields{
		"session":   uuid.New().String(),
		"component": "interpreter",
	})
	i.globals = DefineGlobals(NewEnv(nil), i.printer)
	return i
}

// Globals returns the root environment
func (i *Interpreter) Globals() *Env {
	return i.globals
}

// Parse produces the AST of source
func (i *Interpreter) Parse(source string) (*Program, error) {
	state := produceAST(source)
	if err := state.Err(); err != nil {
		i.logger.WithError(err).Debug("parse failed")
		return nil, err
	}
	if i.logger.Logger.IsLevelEnabled(logrus.DebugLevel) {
		i.logger.WithFields(logrus.Fields{
			"tokens":     len(state.tokens),
			"statements": state.program.Statements(),
		}).Debug("parsed\n" + TreeString(state.program))
	}
	return state.program, nil
}

// Run parses and evaluates source in the root environment. Bindings made
// by earlier runs stay visible.
func (i *Interpreter) Run(source string) (Value, error) {
	program, err := i.Parse(source)
	if err != nil {
		return nil, err
	}
	result, err := newExec(i.globals, i.logger).interpret(program)
	if err != nil {
		i.logger.WithError(err).Debug("evaluation failed")
		return nil, err
	}
	i.logger.WithField("result", result.Kind()).Debug("evaluated")
	return result, nil
}

// ProduceAST scans and parses source
func ProduceAST(source string) (*Program, error) {
	state := produceAST(source)
	if err := state.Err(); err != nil {
		return nil, err
	}
	return state.program, nil
}

func produceAST(source string) *interpreterState {
	state := newInterpreterState(source)
	lexer := &lexer{
		line:  1,
		state: state,
	}
	lexer.scan()
	if !state.Valid() {
		return state
	}

	parser := &parser{
		state: state,
	}
	parser.parse()
	return state
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(absPath, source string, p IPrinter) bool {
	interp := NewInterpreter(WithPrinter(p))
	if _, err := interp.Run(source); err != nil {
		if absPath != "" {
			p.Fprintf(os.Stderr, "%s: ", absPath)
		}
		p.Fprintln(os.Stderr, err)
		return false
	}
	return true
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}
