/*
File    : minilang/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "unicode"

// Lexer scans minilang source text into tokens on demand. It is a pure
// function of position: NextToken never backtracks and never mutates
// state other than its own cursor.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// NewLexer creates a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	lex := &Lexer{
		Src:       src,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
	if len(src) > 0 {
		lex.Current = src[0]
	}
	return lex
}

// Peek returns the byte after Current without consuming it.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance moves the cursor one byte forward, tracking line/column.
func (lex *Lexer) Advance() {
	if lex.Current == '\n' {
		lex.Line++
		lex.Column = 1
	} else {
		lex.Column++
	}
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// skipWhitespaceAndComments repeatedly discards whitespace runs and
// "!"-to-end-of-line comments until neither applies.
func (lex *Lexer) skipWhitespaceAndComments() {
	for {
		if isWhitespace(lex.Current) {
			lex.Advance()
			continue
		}
		if lex.Current == '!' {
			for lex.Current != '\n' && lex.Current != 0 {
				lex.Advance()
			}
			continue
		}
		break
	}
}

// NextToken returns the next token in the stream, or an EOF token once
// the source is exhausted.
func (lex *Lexer) NextToken() Token {
	lex.skipWhitespaceAndComments()

	line, col := lex.Line, lex.Column

	if lex.Current == 0 {
		return NewToken(EOF, "", line, col)
	}

	if isLetter(lex.Current) {
		word := lex.readWhile(isLetterOrDigit)
		return NewToken(lookupIdent(word), word, line, col)
	}

	if isDigit(lex.Current) {
		num := lex.readWhile(isDigit)
		return NewToken(INT, num, line, col)
	}

	switch lex.Current {
	case '<':
		lex.Advance()
		if lex.Current == '=' {
			lex.Advance()
			return NewToken(LE, "<=", line, col)
		}
		return NewToken(LT, "<", line, col)
	case '>':
		lex.Advance()
		if lex.Current == '=' {
			lex.Advance()
			return NewToken(GE, ">=", line, col)
		}
		return NewToken(GT, ">", line, col)
	default:
		c := lex.Current
		lex.Advance()
		return NewToken(symbolType(c), string(c), line, col)
	}
}

// readWhile consumes bytes satisfying pred starting at Current (which
// must already satisfy pred) and returns the consumed run.
func (lex *Lexer) readWhile(pred func(byte) bool) string {
	start := lex.Position
	for pred(lex.Current) {
		lex.Advance()
	}
	return lex.Src[start:lex.Position]
}

// symbolType maps a single punctuation byte to its token type. Bytes
// outside the known operator/punctuation set become INVALID; the lexer
// itself never fails — the parser decides by failing to match.
func symbolType(c byte) TokenType {
	switch c {
	case '+':
		return PLUS
	case '-':
		return MINUS
	case '*':
		return STAR
	case '/':
		return SLASH
	case '^':
		return CARET
	case '=':
		return ASSIGN
	case '#':
		return HASH
	case '&':
		return AMP
	case '|':
		return PIPE
	case '?':
		return QUESTION
	case ':':
		return COLON
	case '(':
		return LPAREN
	case ')':
		return RPAREN
	case '{':
		return LBRACE
	case '}':
		return RBRACE
	case ';':
		return SEMI
	case ',':
		return COMMA
	default:
		return INVALID
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isLetter(c byte) bool {
	return unicode.IsLetter(rune(c))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetterOrDigit(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}
