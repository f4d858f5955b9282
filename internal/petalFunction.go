package internal

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// NativeFunc is a builtin implemented in Go. env is the scope of the call site.
type NativeFunc func(arguments []Value, env *Env) (Value, error)

type nativeFn struct {
	name   string
	callFn NativeFunc
}

// NewNativeFn wraps a Go function as a callable value
func NewNativeFn(name string, fn NativeFunc) Value {
	return &nativeFn{name: name, callFn: fn}
}

func (n *nativeFn) call(arguments []Value, env *Env) (Value, error) {
	return n.callFn(arguments, env)
}

func (n *nativeFn) Kind() ValueKind {
	return KindNativeFunc
}

func (n *nativeFn) String() string {
	return "<fn native>"
}

func (*nativeFn) isValue() {}

type petalFunction struct {
	declaration *funcStmt
	closure     *Env
}

// call binds parameters positionally in a child of the closure. Missing
// arguments are bound to null and extra ones are ignored.
func (f *petalFunction) call(exec *exec, arguments []Value) Value {
	if exec.logger.Logger.IsLevelEnabled(logrus.DebugLevel) {
		exec.logger.WithFields(logrus.Fields{
			"function":  f.declaration.name.lexeme,
			"arguments": len(arguments),
		}).Debug("call")
	}

	env := NewEnv(f.closure)
	for i, param := range f.declaration.params {
		var value Value = petalNull{}
		if i < len(arguments) {
			value = arguments[i]
		}
		if _, err := env.Declare(param.lexeme, value, false); err != nil {
			runtimeErr(err, param, "")
		}
	}

	return exec.executeBlock(f.declaration.body, env)
}

func (f *petalFunction) Name() string {
	return f.declaration.name.lexeme
}

func (f *petalFunction) Kind() ValueKind {
	return KindFunc
}

func (f *petalFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}

func (*petalFunction) isValue() {}
