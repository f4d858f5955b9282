package internal

import (
	"strings"
)

// parser stores parser data
type parser struct {
	current int

	state *interpreterState
}

// elifBranch is one `elif (condition) { body }` clause of an if statement
type elifBranch struct {
	condition expr
	body      []stmt
}

// parse builds the program of the current state. The first structural
// error aborts the whole unit and leaves state.program nil.
func (p *parser) parse() {
	defer func() {
		if r := recover(); r != nil {
			if _, isParseErr := r.(*ParseError); !isParseErr {
				panic(r)
			}
			p.state.program = nil
		}
	}()

	program := &programStmt{body: make([]stmt, 0)}
	for !p.isAtEnd() {
		program.body = append(program.body, p.statement())
	}
	p.state.program = program
}

func (p *parser) statement() stmt {
	switch p.peek().token {
	case tkLet, tkConst:
		return p.varDeclaration()
	case tkFunc:
		return p.funcDeclaration()
	case tkIf:
		return p.ifStatement()
	default:
		return p.expressionStmt()
	}
}

func (p *parser) expressionStmt() stmt {
	st := &exprStmt{expression: p.expression()}
	p.match(tkSemicolon)
	return st
}

func (p *parser) varDeclaration() stmt {
	keyword := p.advance()
	st := &varStmt{
		keyword:  keyword,
		name:     p.consume(tkIdentifier, errExpectedIdentifier),
		constant: keyword.token == tkConst,
	}

	if p.match(tkColon) {
		st.dataType = p.advance().lexeme
	}

	if p.match(tkSemicolon) {
		if st.constant {
			p.state.fatalError(errConstWithoutValue, keyword.line, st.name.lexeme)
		}
		return st
	}

	p.consume(tkEqual, errExpectedEquals)

	switch st.dataType {
	case "string":
		st.initializer = p.typedString()
	case "int":
		number := p.consume(tkNumber, errExpectedNumber)
		st.initializer = &numericExpr{value: number.literal.(float64)}
	case "bool":
		value := p.peek()
		if value.lexeme != "true" && value.lexeme != "false" {
			p.state.fatalError(errExpectedBool, value.line, value.String())
		}
		p.advance()
		st.initializer = &booleanExpr{value: value.lexeme == "true"}
	default:
		st.initializer = p.expression()
	}

	p.consume(tkSemicolon, errExpectedSemicolon)

	return st
}

// typedString reads the words of a `: string` declaration. Every word is
// followed by a space and the result ends with a backspace character.
func (p *parser) typedString() expr {
	p.consume(tkQuote, errExpectedQuote)
	var value strings.Builder
	for !p.check(tkQuote) {
		if p.isAtEnd() {
			p.state.fatalError(errUnclosedString, p.peek().line, "")
		}
		value.WriteString(p.advance().lexeme)
		value.WriteString(" ")
	}
	value.WriteString("\b")
	p.advance()
	return &stringExpr{value: value.String()}
}

func (p *parser) funcDeclaration() stmt {
	p.advance()
	name := p.consume(tkIdentifier, errExpectedFunctionName)

	_, args := p.arguments()
	params := make([]*token, 0, len(args))
	for _, arg := range args {
		param, isIdentifier := arg.(*identifierExpr)
		if !isIdentifier {
			p.state.fatalError(errExpectedFunctionParam, name.line, name.lexeme)
		}
		params = append(params, param.name)
	}

	p.consume(tkLeftCurlyBrace, errExpectedFunctionBody)

	body := make([]stmt, 0)
	for !p.isAtEnd() && !p.check(tkRightCurlyBrace) {
		body = append(body, p.statement())
	}

	p.consume(tkRightCurlyBrace, errUnclosedFunctionBody)

	return &funcStmt{
		name:   name,
		params: params,
		body:   body,
	}
}

func (p *parser) ifStatement() stmt {
	st := &ifStmt{
		keyword: p.advance(),
	}

	st.condition = p.condition()
	st.thenBranch = p.block()

	for p.match(tkElif) {
		elif := &elifBranch{
			condition: p.condition(),
		}
		elif.body = p.block()
		st.elifs = append(st.elifs, elif)
	}

	if p.match(tkElse) {
		st.elseBranch = p.block()
	}

	return st
}

func (p *parser) condition() expr {
	p.consume(tkLeftParen, errExpectedCondition)
	if p.check(tkRightParen) {
		p.state.fatalError(errMissingCondition, p.peek().line, "")
	}
	cond := p.expression()
	p.consume(tkRightParen, errExpectedCondition)
	return cond
}

func (p *parser) block() []stmt {
	p.consume(tkLeftCurlyBrace, errExpectedBlock)
	if p.check(tkRightCurlyBrace) {
		p.state.fatalError(errEmptyBlock, p.peek().line, "")
	}

	var stmts []stmt
	for !p.isAtEnd() && !p.check(tkRightCurlyBrace) {
		stmts = append(stmts, p.statement())
	}
	p.consume(tkRightCurlyBrace, errUnclosedBlock)

	return stmts
}

func (p *parser) expression() expr {
	return p.assignment()
}

func (p *parser) assignment() expr {
	left := p.object()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()
		return &assignExpr{
			assignee: left,
			equal:    equal,
			value:    value,
		}
	}
	return left
}

func (p *parser) object() expr {
	if !p.check(tkLeftCurlyBrace) {
		return p.addition()
	}

	brace := p.advance()
	properties := make([]*propertyExpr, 0)

	for !p.isAtEnd() && !p.check(tkRightCurlyBrace) {
		key := p.consume(tkIdentifier, errExpectedKey)

		// { key, }
		if p.match(tkComma) {
			properties = append(properties, &propertyExpr{key: key})
			continue
		}
		// { key }
		if p.check(tkRightCurlyBrace) {
			properties = append(properties, &propertyExpr{key: key})
			continue
		}

		// { key: value }
		p.consume(tkColon, errExpectedColon)
		value := p.expression()
		properties = append(properties, &propertyExpr{key: key, value: value})

		if !p.check(tkRightCurlyBrace) {
			p.consume(tkComma, errExpectedComma)
		}
	}

	p.consume(tkRightCurlyBrace, errUnclosedCurlyBrace)

	return &objectExpr{
		properties: properties,
		brace:      brace,
	}
}

func (p *parser) addition() expr {
	expr := p.multiplication()
	for p.matchOperator("+", "-") {
		operator := p.previous()
		right := p.multiplication()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

func (p *parser) multiplication() expr {
	expr := p.callMember()
	for p.matchOperator("*", "/", "%") {
		operator := p.previous()
		right := p.callMember()
		expr = &binaryExpr{
			left:     expr,
			operator: operator,
			right:    right,
		}
	}
	return expr
}

// callMember parses foo.x()()
func (p *parser) callMember() expr {
	member := p.member()
	if p.check(tkLeftParen) {
		return p.call(member)
	}
	return member
}

func (p *parser) call(callee expr) expr {
	paren, arguments := p.arguments()
	var expr expr = &callExpr{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
	if p.check(tkLeftParen) {
		expr = p.call(expr)
	}
	return expr
}

func (p *parser) arguments() (*token, []expr) {
	paren := p.consume(tkLeftParen, errExpectedOpenParen)
	arguments := make([]expr, 0)
	if !p.check(tkRightParen) {
		for {
			arguments = append(arguments, p.assignment())
			if !p.match(tkComma) {
				break
			}
		}
	}
	p.consume(tkRightParen, errUnclosedArguments)
	return paren, arguments
}

func (p *parser) member() expr {
	object := p.primary()

	for p.check(tkDot) || p.check(tkLeftBracket) {
		operator := p.advance()
		member := &memberExpr{
			object: object,
			dot:    operator,
		}

		if operator.token == tkDot {
			property, isIdentifier := p.primary().(*identifierExpr)
			if !isIdentifier {
				p.state.fatalError(errExpectedProp, operator.line, "")
			}
			member.property = property
		} else {
			member.computed = true
			member.property = p.expression()
			p.consume(tkRightBracket, errUnclosedBracket)
		}

		object = member
	}

	return object
}

func (p *parser) primary() expr {
	switch p.peek().token {
	case tkIdentifier:
		return &identifierExpr{name: p.advance()}

	case tkNumber:
		return &numericExpr{value: p.advance().literal.(float64)}

	case tkQuote:
		p.advance()
		words := make([]string, 0)
		for p.check(tkWord) {
			words = append(words, p.advance().lexeme)
		}
		p.consume(tkQuote, errUnclosedString)
		return &stringExpr{value: strings.Join(words, " ")}

	case tkLeftParen:
		p.advance()
		expr := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return expr
	}

	p.state.fatalError(errUnexpectedToken, p.peek().line, p.peek().String())
	return nil
}

func (p *parser) consume(tk tokenType, err error) *token {
	if p.check(tk) {
		return p.advance()
	}

	p.state.fatalError(err, p.peek().line, p.peek().String())
	return nil
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, token := range tokens {
		if p.check(token) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) matchOperator(operators ...string) bool {
	if !p.check(tkBinaryOperator) {
		return false
	}
	for _, op := range operators {
		if p.peek().lexeme == op {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokenType) bool {
	return p.peek().token == tk
}

func (p *parser) peek() *token {
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}
