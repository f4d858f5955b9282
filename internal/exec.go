package internal

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

type exec struct {
	env    *Env
	logger *logrus.Entry
}

// Evaluate runs program in env and returns the value of its last statement
func Evaluate(program *Program, env *Env) (Value, error) {
	return newExec(env, nil).interpret(program)
}

func newExec(env *Env, logger *logrus.Entry) *exec {
	if logger == nil {
		logger = logrus.NewEntry(discardLogger())
	}
	return &exec{env: env, logger: logger}
}

func (e *exec) interpret(program *Program) (result Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			rtErr, isRuntimeErr := r.(*RuntimeError)
			if !isRuntimeErr {
				panic(r)
			}
			result, err = nil, rtErr
		}
	}()
	return e.execute(program), nil
}

func (e *exec) execute(s stmt) Value {
	return s.accept(e).(Value)
}

func (e *exec) evaluate(x expr) Value {
	return x.accept(e).(Value)
}

// executeBlock runs stmts with env as the current scope and returns the
// value of the last one
func (e *exec) executeBlock(stmts []stmt, env *Env) Value {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env

	var last Value = petalNull{}
	for _, s := range stmts {
		last = e.execute(s)
	}
	return last
}

func (e *exec) visitProgramStmt(stmt *programStmt) R {
	var last Value = petalNull{}
	for _, s := range stmt.body {
		last = e.execute(s)
	}
	return last
}

func (e *exec) visitExprStmt(stmt *exprStmt) R {
	return e.evaluate(stmt.expression)
}

func (e *exec) visitVarStmt(stmt *varStmt) R {
	var val Value = petalNull{}
	if stmt.initializer != nil {
		val = e.evaluate(stmt.initializer)
	}
	declared, err := e.env.Declare(stmt.name.lexeme, val, stmt.constant)
	if err != nil {
		runtimeErr(err, stmt.name, "")
	}
	return declared
}

func (e *exec) visitFuncStmt(stmt *funcStmt) R {
	fn := &petalFunction{
		declaration: stmt,
		closure:     e.env,
	}
	declared, err := e.env.Declare(stmt.name.lexeme, fn, true)
	if err != nil {
		runtimeErr(err, stmt.name, "")
	}
	return declared
}

func (e *exec) visitIfStmt(stmt *ifStmt) R {
	if e.truthy(stmt.condition, stmt.keyword) {
		return e.executeBlock(stmt.thenBranch, NewEnv(e.env))
	}
	for _, elif := range stmt.elifs {
		if e.truthy(elif.condition, stmt.keyword) {
			return e.executeBlock(elif.body, NewEnv(e.env))
		}
	}
	if stmt.elseBranch != nil {
		return e.executeBlock(stmt.elseBranch, NewEnv(e.env))
	}
	return petalNull{}
}

// truthy evaluates a condition, which must produce a boolean
func (e *exec) truthy(condition expr, keyword *token) bool {
	value := e.evaluate(condition)
	b, isBool := value.(petalBool)
	if !isBool {
		runtimeErr(ErrConditionType, keyword, string(value.Kind()))
	}
	return bool(b)
}

func (e *exec) visitAssignExpr(expr *assignExpr) R {
	val := e.evaluate(expr.value)
	switch target := expr.assignee.(type) {
	case *identifierExpr:
		if _, err := e.env.Assign(target.name.lexeme, val); err != nil {
			runtimeErr(err, target.name, "")
		}
	case *memberExpr:
		object := e.memberObject(target)
		object.set(e.memberKey(target), val)
	default:
		runtimeErr(ErrInvalidAssignTarget, expr.equal, "")
	}
	return val
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	left := e.evaluate(expr.left)
	right := e.evaluate(expr.right)

	leftNum, leftOk := left.(petalNumber)
	rightNum, rightOk := right.(petalNumber)
	if !leftOk || !rightOk {
		runtimeErr(ErrOperandType, expr.operator,
			fmt.Sprintf("%s %s %s", left.Kind(), expr.operator.lexeme, right.Kind()))
	}

	apply, err := leftNum.getOperator(expr.operator.lexeme)
	if err != nil {
		runtimeErr(err, expr.operator, expr.operator.lexeme)
	}
	return apply(leftNum, rightNum)
}

func (e *exec) visitCallExpr(expr *callExpr) R {
	callee := e.evaluate(expr.callee)
	arguments := make([]Value, len(expr.arguments))
	for i := range expr.arguments {
		arguments[i] = e.evaluate(expr.arguments[i])
	}

	switch fn := callee.(type) {
	case *nativeFn:
		result, err := fn.call(arguments, e.env)
		if err != nil {
			if rtErr, isRuntimeErr := err.(*RuntimeError); isRuntimeErr {
				panic(rtErr)
			}
			runtimeErr(err, expr.paren, "")
		}
		if result == nil {
			return petalNull{}
		}
		return result
	case *petalFunction:
		return fn.call(e, arguments)
	default:
		runtimeErr(ErrNotCallable, expr.paren, string(callee.Kind()))
	}
	return nil
}

func (e *exec) visitMemberExpr(expr *memberExpr) R {
	object := e.memberObject(expr)
	if val, ok := object.get(e.memberKey(expr)); ok {
		return val
	}
	return petalNull{}
}

func (e *exec) memberObject(expr *memberExpr) *petalObject {
	value := e.evaluate(expr.object)
	object, isObject := value.(*petalObject)
	if !isObject {
		runtimeErr(ErrInvalidMember, expr.dot, string(value.Kind()))
	}
	return object
}

func (e *exec) memberKey(expr *memberExpr) string {
	if !expr.computed {
		return expr.property.(*identifierExpr).name.lexeme
	}
	switch key := e.evaluate(expr.property).(type) {
	case petalString:
		return string(key)
	case petalNumber:
		return key.String()
	default:
		runtimeErr(ErrInvalidKey, expr.dot, string(key.Kind()))
	}
	return ""
}

func (e *exec) visitIdentifierExpr(expr *identifierExpr) R {
	val, err := e.env.Lookup(expr.name.lexeme)
	if err != nil {
		runtimeErr(err, expr.name, "")
	}
	return val
}

func (e *exec) visitNumericExpr(expr *numericExpr) R {
	return petalNumber(expr.value)
}

func (e *exec) visitStringExpr(expr *stringExpr) R {
	return petalString(expr.value)
}

func (e *exec) visitBooleanExpr(expr *booleanExpr) R {
	return petalBool(expr.value)
}

func (e *exec) visitObjectExpr(expr *objectExpr) R {
	object := newObject()
	for _, prop := range expr.properties {
		if prop.value == nil {
			object.set(prop.key.lexeme, e.visitIdentifierExpr(&identifierExpr{name: prop.key}).(Value))
			continue
		}
		object.set(prop.key.lexeme, e.evaluate(prop.value))
	}
	return object
}

// A property is only meaningful inside its object literal
func (e *exec) visitPropertyExpr(expr *propertyExpr) R {
	runtimeErr(ErrUnhandledNode, expr.key, "Property")
	return nil
}
