package lexer

import "github.com/Tomyyy-1337/language-atlas/pkg/dsl"

// Kind enumerates the token kinds a language table can contain.
type Kind int

const (
	EOF Kind = iota
	Ident
	String
	Colon
	Comma
	LParen
	RParen
	LBrace
	RBrace
)

var kindNames = map[Kind]string{
	EOF:    "end of input",
	Ident:  "identifier",
	String: "string",
	Colon:  `":"`,
	Comma:  `","`,
	LParen: `"("`,
	RParen: `")"`,
	LBrace: `"{"`,
	RBrace: `"}"`,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown token"
}

// Token is one lexeme plus its position. For String tokens Text holds the
// decoded value, not the quoted source form.
type Token struct {
	Kind Kind
	Text string
	Pos  dsl.Pos
}

// Describe renders the token for diagnostics.
func (t Token) Describe() string {
	switch t.Kind {
	case Ident:
		return `"` + t.Text + `"`
	case String:
		return "string"
	case EOF:
		return "end of input"
	default:
		return t.Kind.String()
	}
}
