package lexer

import (
	"testing"

	"github.com/EthanDenny/flip/internal/token"
)

func TestNextToken(t *testing.T) {
	input := `add(a: Int, b: [Int]) -> Int {
    // sum
    let(c: Int, +(a, -12))
    ==(c, 0) is_null(b) true false
}`

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
		expectedLine   int
	}{
		{token.IDENT, "add", 1},
		{token.LPAREN, "(", 1},
		{token.IDENT, "a", 1},
		{token.COLON, ":", 1},
		{token.IDENT, "Int", 1},
		{token.COMMA, ",", 1},
		{token.IDENT, "b", 1},
		{token.COLON, ":", 1},
		{token.LBRACKET, "[", 1},
		{token.IDENT, "Int", 1},
		{token.RBRACKET, "]", 1},
		{token.RPAREN, ")", 1},
		{token.ARROW, "->", 1},
		{token.IDENT, "Int", 1},
		{token.LBRACE, "{", 1},
		{token.LET, "let", 3},
		{token.LPAREN, "(", 3},
		{token.IDENT, "c", 3},
		{token.COLON, ":", 3},
		{token.IDENT, "Int", 3},
		{token.COMMA, ",", 3},
		{token.IDENT, "+", 3},
		{token.LPAREN, "(", 3},
		{token.IDENT, "a", 3},
		{token.COMMA, ",", 3},
		{token.INT, "-12", 3},
		{token.RPAREN, ")", 3},
		{token.RPAREN, ")", 3},
		{token.IDENT, "==", 4},
		{token.LPAREN, "(", 4},
		{token.IDENT, "c", 4},
		{token.COMMA, ",", 4},
		{token.INT, "0", 4},
		{token.RPAREN, ")", 4},
		{token.IDENT, "is_null", 4},
		{token.LPAREN, "(", 4},
		{token.IDENT, "b", 4},
		{token.RPAREN, ")", 4},
		{token.TRUE, "true", 4},
		{token.FALSE, "false", 4},
		{token.RBRACE, "}", 5},
		{token.EOF, "", 5},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (%q)", i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
		if tok.Line != tt.expectedLine {
			t.Fatalf("tests[%d] - line wrong for %q. expected=%d, got=%d", i, tok.Lexeme, tt.expectedLine, tok.Line)
		}
	}
}

func TestOperatorIdentifiers(t *testing.T) {
	for _, op := range []string{"+", "-", "*", "/", "mod", "==", "!=", ">", "<", ">=", "<=", "++"} {
		toks := New(op + "(").Tokenize()
		if toks[0].Type != token.IDENT || toks[0].Lexeme != op {
			t.Errorf("%s lexed as %s %q", op, toks[0].Type, toks[0].Lexeme)
		}
		if toks[1].Type != token.LPAREN {
			t.Errorf("%s( should be followed by LPAREN, got %s", op, toks[1].Type)
		}
	}
}

func TestArrowWithoutSpaces(t *testing.T) {
	toks := New("f()->Int").Tokenize()
	want := []token.TokenType{token.IDENT, token.LPAREN, token.RPAREN, token.ARROW, token.IDENT, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w {
			t.Errorf("token %d = %s, want %s", i, toks[i].Type, w)
		}
	}
}

func TestIllegalNumber(t *testing.T) {
	toks := New("f(12ab)").Tokenize()
	last := toks[len(toks)-1]
	if last.Type != token.ILLEGAL || last.Lexeme != "12ab" {
		t.Errorf("expected ILLEGAL 12ab, got %s %q", last.Type, last.Lexeme)
	}
}
