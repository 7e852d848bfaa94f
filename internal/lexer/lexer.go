package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/EthanDenny/flip/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		l.column++
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, col := l.line, l.column

	switch l.ch {
	case 0:
		return token.Token{Type: token.EOF, Line: line, Column: col}
	case '(':
		return l.single(token.LPAREN)
	case ')':
		return l.single(token.RPAREN)
	case '{':
		return l.single(token.LBRACE)
	case '}':
		return l.single(token.RBRACE)
	case '[':
		return l.single(token.LBRACKET)
	case ']':
		return l.single(token.RBRACKET)
	case ',':
		return l.single(token.COMMA)
	case ':':
		return l.single(token.COLON)
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			l.readChar()
			return token.Token{Type: token.ARROW, Lexeme: "->", Line: line, Column: col}
		}
		if isDigit(l.peekChar()) {
			start := l.position
			l.readChar()
			return l.readNumber(start, line, col)
		}
	}

	if isDigit(l.ch) {
		return l.readNumber(l.position, line, col)
	}

	if isIdentChar(l.ch) {
		ident := l.readIdentifier()
		return token.Token{Type: token.LookupIdent(ident), Lexeme: ident, Line: line, Column: col}
	}

	tok := token.Token{Type: token.ILLEGAL, Lexeme: string(l.ch), Line: line, Column: col}
	l.readChar()
	return tok
}

// Tokenize returns every token of the input, ending with EOF. Scanning
// stops at the first ILLEGAL token, which is returned last.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			return tokens
		}
	}
}

func (l *Lexer) single(t token.TokenType) token.Token {
	tok := token.Token{Type: t, Lexeme: string(l.ch), Line: l.line, Column: l.column}
	l.readChar()
	return tok
}

func (l *Lexer) readNumber(start, line, col int) token.Token {
	for isDigit(l.ch) {
		l.readChar()
	}
	if isIdentChar(l.ch) && !isDigit(l.ch) && l.ch != '-' {
		for isIdentChar(l.ch) {
			l.readChar()
		}
		return token.Token{Type: token.ILLEGAL, Lexeme: l.input[start:l.position], Line: line, Column: col}
	}
	return token.Token{Type: token.INT, Lexeme: l.input[start:l.position], Line: line, Column: col}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isIdentChar(l.ch) {
		if l.ch == '-' && l.peekChar() == '>' && l.position > position {
			break
		}
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) skipWhitespace() {
	for {
		for unicode.IsSpace(l.ch) {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		return
	}
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// isIdentChar accepts operator characters too: `+`, `==` and `is_null`
// are all identifiers.
func isIdentChar(ch rune) bool {
	if ch == 0 || unicode.IsSpace(ch) {
		return false
	}
	switch ch {
	case '(', ')', '{', '}', '[', ']', ',', ':':
		return false
	}
	return unicode.IsPrint(ch)
}
