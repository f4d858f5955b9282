package internal

import "fmt"

type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	// (, ), [, ], {, }, ',', ., :, ;, =, "
	tkLeftParen
	tkRightParen
	tkLeftBracket
	tkRightBracket
	tkLeftCurlyBrace
	tkRightCurlyBrace
	tkComma
	tkDot
	tkColon
	tkSemicolon
	tkEqual
	tkQuote

	// +, -, *, /, %
	tkBinaryOperator

	// Literals.
	// *variable*, number, text inside quotes
	tkIdentifier
	tkNumber
	tkWord

	// Keywords.
	// let, const, func, if, elif, else
	tkLet
	tkConst
	tkFunc
	tkIf
	tkElif
	tkElse
)

var tokenNames = map[tokenType]string{
	tkEOF:             "EOF",
	tkLeftParen:       "(",
	tkRightParen:      ")",
	tkLeftBracket:     "[",
	tkRightBracket:    "]",
	tkLeftCurlyBrace:  "{",
	tkRightCurlyBrace: "}",
	tkComma:           ",",
	tkDot:             ".",
	tkColon:           ":",
	tkSemicolon:       ";",
	tkEqual:           "=",
	tkQuote:           "\"",
	tkBinaryOperator:  "operator",
	tkIdentifier:      "identifier",
	tkNumber:          "number",
	tkWord:            "word",
	tkLet:             "let",
	tkConst:           "const",
	tkFunc:            "func",
	tkIf:              "if",
	tkElif:            "elif",
	tkElse:            "else",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(t))
}

type token struct {
	token   tokenType
	lexeme  string
	literal interface{}
	line    int
}

// eofNear is how the end of input is reported in parse errors
const eofNear = "end of input"

func (t *token) String() string {
	if t.token == tkEOF {
		return eofNear
	}
	return fmt.Sprintf("%s '%s'", t.token, t.lexeme)
}
