package internal

import (
	"fmt"
	"strconv"
	"strings"
)

//R generic type
type R interface{}

// TreeString prints the program as one s-expression per statement
func TreeString(program *Program) string {
	out := ""
	for _, stmt := range program.body {
		out += stmt.accept(stringVisitor{}).(string) + "\n"
	}
	return out
}

type stringVisitor struct{}

func (v stringVisitor) block(stmts []stmt) string {
	out := ""
	for _, st := range stmts {
		out += fmt.Sprintf(" %v", st.accept(v))
	}
	return out
}

func (v stringVisitor) visitProgramStmt(stmt *programStmt) R {
	return "(program" + v.block(stmt.body) + ")"
}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) R {
	return stmt.expression.accept(v)
}

func (v stringVisitor) visitVarStmt(stmt *varStmt) R {
	name := stmt.name.lexeme
	if stmt.dataType != "" {
		name += ":" + stmt.dataType
	}
	if stmt.initializer == nil {
		return fmt.Sprintf("(%s %s)", stmt.keyword.lexeme, name)
	}
	return fmt.Sprintf("(%s %s %v)", stmt.keyword.lexeme, name, stmt.initializer.accept(v))
}

func (v stringVisitor) visitFuncStmt(stmt *funcStmt) R {
	out := "(func " + stmt.name.lexeme + " ("
	for i, param := range stmt.params {
		out += param.lexeme
		if i < len(stmt.params)-1 {
			out += ", "
		}
	}
	out += ")"
	return out + v.block(stmt.body) + ")"
}

func (v stringVisitor) visitIfStmt(stmt *ifStmt) R {
	out := fmt.Sprintf("(if (then %v%s)", stmt.condition.accept(v), v.block(stmt.thenBranch))
	for _, elif := range stmt.elifs {
		out += fmt.Sprintf(" (elif %v%s)", elif.condition.accept(v), v.block(elif.body))
	}
	if stmt.elseBranch != nil {
		out += fmt.Sprintf(" (else%s)", v.block(stmt.elseBranch))
	}
	return out + ")"
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) R {
	return fmt.Sprintf("(set %v %v)", expr.assignee.accept(v), expr.value.accept(v))
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.lexeme, expr.left.accept(v), expr.right.accept(v))
}

func (v stringVisitor) visitCallExpr(expr *callExpr) R {
	out := fmt.Sprintf("(call %v", expr.callee.accept(v))
	for _, arg := range expr.arguments {
		out += fmt.Sprintf(" %v", arg.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitMemberExpr(expr *memberExpr) R {
	if expr.computed {
		return fmt.Sprintf("([] %v %v)", expr.object.accept(v), expr.property.accept(v))
	}
	return fmt.Sprintf("(. %v %v)", expr.object.accept(v), expr.property.accept(v))
}

func (v stringVisitor) visitIdentifierExpr(expr *identifierExpr) R {
	return expr.name.lexeme
}

func (v stringVisitor) visitNumericExpr(expr *numericExpr) R {
	return petalNumber(expr.value).String()
}

func (v stringVisitor) visitStringExpr(expr *stringExpr) R {
	return strconv.Quote(expr.value)
}

func (v stringVisitor) visitBooleanExpr(expr *booleanExpr) R {
	return fmt.Sprintf("(bool %v)", expr.value)
}

func (v stringVisitor) visitObjectExpr(expr *objectExpr) R {
	out := "(object"
	for _, prop := range expr.properties {
		out += fmt.Sprintf(" %v", prop.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitPropertyExpr(expr *propertyExpr) R {
	if expr.value == nil {
		return "(" + expr.key.lexeme + ")"
	}
	return fmt.Sprintf("(%s %v)", expr.key.lexeme, expr.value.accept(v))
}

// FormatProgram prints program as source that parses back to the same tree
func FormatProgram(program *Program) string {
	v := &sourceVisitor{}
	var b strings.Builder
	for _, st := range program.body {
		b.WriteString(st.accept(v).(string))
		b.WriteString("\n")
	}
	return b.String()
}

type sourceVisitor struct {
	depth int
}

func (v *sourceVisitor) indent() string {
	return strings.Repeat("    ", v.depth)
}

func (v *sourceVisitor) block(stmts []stmt) string {
	v.depth++
	out := "{\n"
	for _, st := range stmts {
		out += v.indent() + st.accept(v).(string) + "\n"
	}
	v.depth--
	return out + v.indent() + "}"
}

func (v *sourceVisitor) visitProgramStmt(stmt *programStmt) R {
	lines := make([]string, len(stmt.body))
	for i, st := range stmt.body {
		lines[i] = st.accept(v).(string)
	}
	return strings.Join(lines, "\n")
}

// Expression statements end with ';' so that a following statement
// starting with '(' is not read as a call
func (v *sourceVisitor) visitExprStmt(stmt *exprStmt) R {
	return stmt.expression.accept(v).(string) + ";"
}

func (v *sourceVisitor) visitVarStmt(stmt *varStmt) R {
	out := stmt.keyword.lexeme + " " + stmt.name.lexeme
	if stmt.dataType != "" {
		out += ": " + stmt.dataType
	}
	if stmt.initializer == nil {
		return out + ";"
	}

	value := stmt.initializer.accept(v).(string)
	switch init := stmt.initializer.(type) {
	case *stringExpr:
		if stmt.dataType == "string" {
			words := strings.Fields(strings.TrimSuffix(init.value, "\b"))
			value = "\"" + strings.Join(words, " ") + "\""
		}
	case *booleanExpr:
		value = strconv.FormatBool(init.value)
	}
	return out + " = " + value + ";"
}

func (v *sourceVisitor) visitFuncStmt(stmt *funcStmt) R {
	params := make([]string, len(stmt.params))
	for i, param := range stmt.params {
		params[i] = param.lexeme
	}
	return fmt.Sprintf("func %s(%s) %s", stmt.name.lexeme, strings.Join(params, ", "), v.block(stmt.body))
}

func (v *sourceVisitor) visitIfStmt(stmt *ifStmt) R {
	out := fmt.Sprintf("if (%v) %s", stmt.condition.accept(v), v.block(stmt.thenBranch))
	for _, elif := range stmt.elifs {
		out += fmt.Sprintf(" elif (%v) %s", elif.condition.accept(v), v.block(elif.body))
	}
	if stmt.elseBranch != nil {
		out += " else " + v.block(stmt.elseBranch)
	}
	return out
}

// operand prints x so that it binds tighter than any surrounding operator
func (v *sourceVisitor) operand(x expr) string {
	out := x.accept(v).(string)
	switch x.(type) {
	case *assignExpr, *objectExpr:
		return "(" + out + ")"
	}
	return out
}

func (v *sourceVisitor) visitAssignExpr(expr *assignExpr) R {
	return fmt.Sprintf("%s = %v", v.operand(expr.assignee), expr.value.accept(v))
}

func (v *sourceVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return fmt.Sprintf("(%s %s %s)", v.operand(expr.left), expr.operator.lexeme, v.operand(expr.right))
}

func (v *sourceVisitor) visitCallExpr(expr *callExpr) R {
	args := make([]string, len(expr.arguments))
	for i, arg := range expr.arguments {
		args[i] = arg.accept(v).(string)
	}
	return fmt.Sprintf("%s(%s)", v.operand(expr.callee), strings.Join(args, ", "))
}

// A call cannot be followed by '.' or '[' so it is wrapped as an object
func (v *sourceVisitor) visitMemberExpr(expr *memberExpr) R {
	object := v.operand(expr.object)
	if _, isCall := expr.object.(*callExpr); isCall {
		object = "(" + object + ")"
	}
	if expr.computed {
		return fmt.Sprintf("%s[%v]", object, expr.property.accept(v))
	}
	return fmt.Sprintf("%s.%v", object, expr.property.accept(v))
}

func (v *sourceVisitor) visitIdentifierExpr(expr *identifierExpr) R {
	return expr.name.lexeme
}

func (v *sourceVisitor) visitNumericExpr(expr *numericExpr) R {
	return strconv.FormatFloat(expr.value, 'f', -1, 64)
}

func (v *sourceVisitor) visitStringExpr(expr *stringExpr) R {
	return "\"" + expr.value + "\""
}

// Boolean literals only come from `: bool` declarations, handled there
func (v *sourceVisitor) visitBooleanExpr(expr *booleanExpr) R {
	return strconv.FormatBool(expr.value)
}

func (v *sourceVisitor) visitObjectExpr(expr *objectExpr) R {
	if len(expr.properties) == 0 {
		return "{}"
	}
	props := make([]string, len(expr.properties))
	for i, prop := range expr.properties {
		props[i] = prop.accept(v).(string)
	}
	return "{ " + strings.Join(props, ", ") + " }"
}

func (v *sourceVisitor) visitPropertyExpr(expr *propertyExpr) R {
	if expr.value == nil {
		return expr.key.lexeme
	}
	return fmt.Sprintf("%s: %v", expr.key.lexeme, expr.value.accept(v))
}
