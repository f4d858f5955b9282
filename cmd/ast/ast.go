package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

var definitions = map[string][]string{
	"Stmt": {
		"Program: body []stmt",
		"Expr: expression expr",
		"Var: keyword *token, name *token, dataType string, constant bool, initializer expr",
		"Func: name *token, params []*token, body []stmt",
		"If: keyword *token, condition expr, thenBranch []stmt, elifs []*elifBranch, elseBranch []stmt",
	},
	"Expr": {
		"Assign: assignee expr, equal *token, value expr",
		"Binary: left expr, operator *token, right expr",
		"Call: callee expr, paren *token, arguments []expr",
		"Member: object expr, property expr, computed bool, dot *token",
		"Identifier: name *token",
		"Numeric: value float64",
		"String: value string",
		"Boolean: value bool",
		"Object: properties []*propertyExpr, brace *token",
		"Property: key *token, value expr",
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Stmt|Expr")
		os.Exit(1)
	}
	types, ok := definitions[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown base type %s\n", os.Args[1])
		os.Exit(1)
	}
	out, err := format.Source([]byte(generateAst(os.Args[1], types)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + strings.ToLower(baseName) + " interface {\n"
	out += "\taccept(" + strings.ToLower(baseName) + "Visitor) R\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", strings.ToLower(baseName))
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + structType + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start  structs
	for _, t := range types {
		typeDef := strings.SplitN(t, ":", 2)
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) R {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
