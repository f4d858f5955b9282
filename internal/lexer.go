package internal

import (
	"strconv"
)

type lexer struct {
	start   int
	current int
	line    int

	// inQuote is set between an opening and a closing '"'
	inQuote bool

	state *interpreterState
}

var keywords = map[string]tokenType{
	"let":   tkLet,
	"const": tkConst,
	"func":  tkFunc,
	"if":    tkIf,
	"elif":  tkElif,
	"else":  tkElse,
}

func (l *lexer) scan() {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	if l.inQuote {
		l.state.setError(errUnclosedString, l.line, "")
	}
	l.start = l.current
	l.emit(tkEOF, nil)
}

func (l *lexer) scanToken() {
	c := l.advance()

	if l.inQuote && c != '"' {
		switch c {
		case ' ', '\r', '\t':
		case '\n':
			l.line++
		default:
			l.word()
		}
		return
	}

	switch c {
	case '[':
		l.emit(tkLeftBracket, nil)
	case ']':
		l.emit(tkRightBracket, nil)
	case '{':
		l.emit(tkLeftCurlyBrace, nil)
	case '}':
		l.emit(tkRightCurlyBrace, nil)
	case '(':
		l.emit(tkLeftParen, nil)
	case ')':
		l.emit(tkRightParen, nil)
	case ',':
		l.emit(tkComma, nil)
	case '.':
		l.emit(tkDot, nil)
	case ':':
		l.emit(tkColon, nil)
	case ';':
		l.emit(tkSemicolon, nil)
	case '=':
		l.emit(tkEqual, nil)
	case '+', '-', '*', '/', '%':
		l.emit(tkBinaryOperator, nil)
	case '"':
		l.inQuote = !l.inQuote
		l.emit(tkQuote, nil)
	case '#':
		for !l.isAtEnd() && l.peek() != '\n' {
			l.advance()
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	default:
		if isDigit(c) {
			l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			l.state.setError(errIllegalChar, l.line, string(c))
		}
	}
}

// word consumes a run of non-blank characters inside a quoted region.
func (l *lexer) word() {
	for !l.isAtEnd() && !isBlank(l.peek()) && l.peek() != '"' {
		l.advance()
	}
	l.emit(tkWord, l.source()[l.start:l.current])
}

func (l *lexer) number() {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for !l.isAtEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}

	literal, err := strconv.ParseFloat(l.source()[l.start:l.current], 64)
	if err != nil {
		l.state.setError(errInvalidNumber, l.line, l.source()[l.start:l.current])
	}

	l.emit(tkNumber, literal)
}

func (l *lexer) identifier() {
	for !l.isAtEnd() && (isAlpha(l.peek()) || isDigit(l.peek())) {
		l.advance()
	}

	identifier := l.source()[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = tkIdentifier
	}

	l.emit(tokenType, nil)
}

func (l *lexer) source() string {
	return l.state.source
}

func (l *lexer) advance() byte {
	c := l.source()[l.current]
	l.current++
	return c
}

func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source()[l.current]
}

func (l *lexer) peekNext() byte {
	if l.current+1 >= len(l.source()) {
		return 0
	}
	return l.source()[l.current+1]
}

func (l *lexer) emit(tk tokenType, literal interface{}) {
	l.state.tokens = append(l.state.tokens, token{
		token:   tk,
		lexeme:  l.source()[l.start:l.current],
		literal: literal,
		line:    l.line,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source())
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
