// Package lexer tokenizes language table text. The scanner is line/column
// aware so every token carries the position diagnostics point at.
package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
)

// Lexer scans one document. It is not safe for concurrent use.
type Lexer struct {
	source string
	src    string
	off    int
	line   int
	col    int
}

// New returns a Lexer over src. The source name is used in diagnostics only.
func New(source, src string) *Lexer {
	return &Lexer{source: source, src: src, line: 1, col: 1}
}

// Pos returns the position of the next unread byte.
func (l *Lexer) Pos() dsl.Pos {
	return dsl.Pos{Offset: l.off, Line: l.line, Column: l.col}
}

// Next returns the next token, skipping whitespace and comments.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipSpace(); err != nil {
		return Token{}, err
	}

	pos := l.Pos()
	r, ok := l.peek()
	if !ok {
		return Token{Kind: EOF, Pos: pos}, nil
	}

	switch {
	case r == ':':
		l.advance()
		return Token{Kind: Colon, Text: ":", Pos: pos}, nil
	case r == ',':
		l.advance()
		return Token{Kind: Comma, Text: ",", Pos: pos}, nil
	case r == '(':
		l.advance()
		return Token{Kind: LParen, Text: "(", Pos: pos}, nil
	case r == ')':
		l.advance()
		return Token{Kind: RParen, Text: ")", Pos: pos}, nil
	case r == '{':
		l.advance()
		return Token{Kind: LBrace, Text: "{", Pos: pos}, nil
	case r == '}':
		l.advance()
		return Token{Kind: RBrace, Text: "}", Pos: pos}, nil
	case r == '"':
		return l.scanString(pos)
	case isIdentStart(r):
		return l.scanIdent(pos), nil
	default:
		return Token{}, l.errorf(pos, "unexpected character %q", r)
	}
}

// TypeText consumes raw source text up to the next top-level "," or ")" and
// returns it trimmed. Brackets and parens nest, so composite type expressions
// such as map[string]int or generic instantiations survive intact. The
// terminating rune is not consumed.
func (l *Lexer) TypeText() (string, dsl.Pos, error) {
	if err := l.skipSpace(); err != nil {
		return "", dsl.Pos{}, err
	}

	pos := l.Pos()
	var sb strings.Builder
	depth := 0
	for {
		r, ok := l.peek()
		if !ok {
			return "", dsl.Pos{}, l.errorf(pos, "unterminated parameter type")
		}
		if depth == 0 && (r == ',' || r == ')') {
			break
		}
		switch r {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth < 0 {
				return "", dsl.Pos{}, l.errorf(l.Pos(), "unbalanced %q in parameter type", r)
			}
		case '{', '}', '"':
			return "", dsl.Pos{}, l.errorf(l.Pos(), "unexpected character %q in parameter type", r)
		case '\n':
			return "", dsl.Pos{}, l.errorf(pos, "parameter type must not span lines")
		}
		sb.WriteRune(r)
		l.advance()
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", dsl.Pos{}, l.errorf(pos, "missing parameter type")
	}
	return text, pos, nil
}

func (l *Lexer) scanIdent(pos dsl.Pos) Token {
	start := l.off
	for {
		r, ok := l.peek()
		if !ok || !isIdentPart(r) {
			break
		}
		l.advance()
	}
	return Token{Kind: Ident, Text: l.src[start:l.off], Pos: pos}
}

func (l *Lexer) scanString(pos dsl.Pos) (Token, error) {
	start := l.off
	l.advance() // opening quote
	for {
		r, ok := l.peek()
		if !ok {
			return Token{}, l.errorf(pos, "unterminated string")
		}
		switch r {
		case '\n':
			return Token{}, l.errorf(pos, "newline in string")
		case '\\':
			l.advance()
			if _, ok := l.peek(); !ok {
				return Token{}, l.errorf(pos, "unterminated string")
			}
			l.advance()
		case '"':
			l.advance()
			raw := l.src[start:l.off]
			decoded, err := strconv.Unquote(raw)
			if err != nil {
				return Token{}, l.errorf(pos, "invalid string literal %s", raw)
			}
			return Token{Kind: String, Text: decoded, Pos: pos}, nil
		default:
			l.advance()
		}
	}
}

func (l *Lexer) skipSpace() error {
	for {
		r, ok := l.peek()
		if !ok {
			return nil
		}
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			l.advance()
		case r == '/':
			next, ok := l.peekAt(1)
			if !ok {
				return l.errorf(l.Pos(), "unexpected character %q", r)
			}
			switch next {
			case '/':
				l.skipLineComment()
			case '*':
				if err := l.skipBlockComment(); err != nil {
					return err
				}
			default:
				return l.errorf(l.Pos(), "unexpected character %q", r)
			}
		default:
			return nil
		}
	}
}

func (l *Lexer) skipLineComment() {
	for {
		r, ok := l.peek()
		if !ok || r == '\n' {
			return
		}
		l.advance()
	}
}

func (l *Lexer) skipBlockComment() error {
	pos := l.Pos()
	l.advance() // '/'
	l.advance() // '*'
	for {
		r, ok := l.peek()
		if !ok {
			return l.errorf(pos, "unterminated block comment")
		}
		if r == '*' {
			if next, ok := l.peekAt(1); ok && next == '/' {
				l.advance()
				l.advance()
				return nil
			}
		}
		l.advance()
	}
}

func (l *Lexer) peek() (rune, bool) {
	if l.off >= len(l.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.src[l.off:])
	return r, true
}

func (l *Lexer) peekAt(runes int) (rune, bool) {
	off := l.off
	for ; runes > 0; runes-- {
		if off >= len(l.src) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(l.src[off:])
		off += size
	}
	if off >= len(l.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.src[off:])
	return r, true
}

func (l *Lexer) advance() {
	r, size := utf8.DecodeRuneInString(l.src[l.off:])
	l.off += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *Lexer) errorf(pos dsl.Pos, format string, args ...any) error {
	return dsl.NewParseError(l.source, pos, format, args...)
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
