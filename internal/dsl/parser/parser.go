// Package parser implements the language table parser on top of the lexer.
// It produces the dsl.Unit syntax model and reports every structural problem
// as a positioned dsl.ParseError.
package parser

import (
	"context"
	"fmt"
	gotoken "go/token"

	"github.com/Tomyyy-1337/language-atlas/internal/dsl/lexer"
	"github.com/Tomyyy-1337/language-atlas/pkg/dsl"
)

// headerKeyword opens every language table.
const headerKeyword = "LanguageEnum"

// Parser implements dsl.Parser. Construction helpers live in the top-level
// atlas package.
type Parser struct {
	opts dsl.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ dsl.Parser = (*Parser)(nil)

// New constructs a Parser from pre-resolved options.
func New(options dsl.ParserOptions) *Parser {
	return &Parser{opts: options}
}

// Parse consumes the document and returns its syntax model.
func (p *Parser) Parse(ctx context.Context, doc dsl.Document) (*dsl.Unit, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc.Len() == 0 {
		return nil, fmt.Errorf("parser: %w", dsl.ErrEmptyDocument)
	}

	r := &run{
		source: doc.Name(),
		lex:    lexer.New(doc.Name(), doc.Text()),
		opts:   p.opts,
	}
	return r.parseUnit(ctx)
}

type run struct {
	source string
	lex    *lexer.Lexer
	opts   dsl.ParserOptions
	tok    lexer.Token
}

func (r *run) parseUnit(ctx context.Context) (*dsl.Unit, error) {
	if err := r.next(); err != nil {
		return nil, err
	}

	if r.tok.Kind != lexer.Ident || r.tok.Text != headerKeyword {
		return nil, r.errorf(r.tok.Pos, "table must start with the %s header, found %s", headerKeyword, r.tok.Describe())
	}
	if err := r.next(); err != nil {
		return nil, err
	}
	if r.tok.Kind != lexer.Colon {
		return nil, r.errorf(r.tok.Pos, "expected %q after %s, found %s", ":", headerKeyword, r.tok.Describe())
	}
	if err := r.next(); err != nil {
		return nil, err
	}
	if r.tok.Kind != lexer.Ident {
		return nil, r.errorf(r.tok.Pos, "expected type name after %q, found %s", headerKeyword+":", r.tok.Describe())
	}
	if !gotoken.IsIdentifier(r.tok.Text) {
		return nil, r.errorf(r.tok.Pos, "type name %q is not a valid identifier", r.tok.Text)
	}

	unit := &dsl.Unit{TypeName: r.tok.Text, TypePos: r.tok.Pos}
	if err := r.next(); err != nil {
		return nil, err
	}

	seen := make(map[string]dsl.Pos)
	for r.tok.Kind != lexer.EOF {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		field, err := r.parseField()
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[field.Name]; dup {
			return nil, r.errorf(field.Pos, "duplicate field %q (first declared at %s)", field.Name, prev)
		}
		seen[field.Name] = field.Pos
		unit.Fields = append(unit.Fields, field)
	}

	return unit, nil
}

func (r *run) parseField() (dsl.FieldDef, error) {
	if r.tok.Kind != lexer.Ident {
		return dsl.FieldDef{}, r.errorf(r.tok.Pos, "expected field name, found %s", r.tok.Describe())
	}

	field := dsl.FieldDef{Name: r.tok.Text, Pos: r.tok.Pos}
	if err := r.next(); err != nil {
		return dsl.FieldDef{}, err
	}

	if r.tok.Kind == lexer.LParen {
		params, err := r.parseParams(field.Name)
		if err != nil {
			return dsl.FieldDef{}, err
		}
		field.Params = params
	}

	if r.tok.Kind != lexer.LBrace {
		return dsl.FieldDef{}, r.errorf(r.tok.Pos, "expected %q to open field %q, found %s", "{", field.Name, r.tok.Describe())
	}
	if err := r.next(); err != nil {
		return dsl.FieldDef{}, err
	}

	entries, err := r.parseEntries(field.Name)
	if err != nil {
		return dsl.FieldDef{}, err
	}
	field.Entries = entries

	// r.tok is the closing brace here; step past it.
	if err := r.next(); err != nil {
		return dsl.FieldDef{}, err
	}
	return field, nil
}

// parseParams consumes "(" param {"," param} ")" and leaves r.tok on the
// token after the closing paren.
func (r *run) parseParams(fieldName string) ([]dsl.ParamDef, error) {
	if err := r.next(); err != nil { // step past "("
		return nil, err
	}
	if r.tok.Kind == lexer.RParen {
		return nil, r.errorf(r.tok.Pos, "field %q declares an empty parameter list; drop the parens instead", fieldName)
	}

	params := make([]dsl.ParamDef, 0, 2)
	seen := make(map[string]dsl.Pos)
	for {
		if r.tok.Kind != lexer.Ident {
			return nil, r.errorf(r.tok.Pos, "expected parameter name in field %q, found %s", fieldName, r.tok.Describe())
		}
		param := dsl.ParamDef{Name: r.tok.Text, Pos: r.tok.Pos}
		if prev, dup := seen[param.Name]; dup {
			return nil, r.errorf(param.Pos, "duplicate parameter %q in field %q (first declared at %s)", param.Name, fieldName, prev)
		}
		seen[param.Name] = param.Pos

		if err := r.next(); err != nil {
			return nil, err
		}
		if r.tok.Kind == lexer.Colon {
			text, _, err := r.lex.TypeText()
			if err != nil {
				return nil, err
			}
			param.Type = text
			if err := r.next(); err != nil {
				return nil, err
			}
		}
		params = append(params, param)

		switch r.tok.Kind {
		case lexer.Comma:
			if err := r.next(); err != nil {
				return nil, err
			}
			if r.tok.Kind == lexer.RParen {
				return nil, r.errorf(r.tok.Pos, "trailing %q in parameter list of field %q", ",", fieldName)
			}
		case lexer.RParen:
			if err := r.next(); err != nil {
				return nil, err
			}
			return params, nil
		default:
			return nil, r.errorf(r.tok.Pos, "expected %q or %q in parameter list of field %q, found %s", ",", ")", fieldName, r.tok.Describe())
		}
	}
}

// parseEntries consumes language entries up to (but not past) the closing
// brace of the field body.
func (r *run) parseEntries(fieldName string) ([]dsl.Entry, error) {
	var entries []dsl.Entry
	seen := make(map[string]dsl.Pos)
	for {
		switch r.tok.Kind {
		case lexer.RBrace:
			return entries, nil
		case lexer.Ident:
			entry := dsl.Entry{Variant: r.tok.Text, Pos: r.tok.Pos}
			if prev, dup := seen[entry.Variant]; dup {
				return nil, r.errorf(entry.Pos, "duplicate language %q in field %q (first declared at %s)", entry.Variant, fieldName, prev)
			}
			seen[entry.Variant] = entry.Pos

			if err := r.next(); err != nil {
				return nil, err
			}
			if r.tok.Kind != lexer.Colon {
				return nil, r.errorf(r.tok.Pos, "expected %q after language %q in field %q, found %s", ":", entry.Variant, fieldName, r.tok.Describe())
			}
			if err := r.next(); err != nil {
				return nil, err
			}
			if r.tok.Kind != lexer.String {
				return nil, r.errorf(r.tok.Pos, "expected string for language %q in field %q, found %s", entry.Variant, fieldName, r.tok.Describe())
			}
			if max := r.opts.MaxTemplateLen; max > 0 && len(r.tok.Text) > max {
				return nil, r.errorf(r.tok.Pos, "template for language %q in field %q exceeds %d bytes", entry.Variant, fieldName, max)
			}
			entry.Template = r.tok.Text
			entry.ValuePos = r.tok.Pos
			entries = append(entries, entry)

			if err := r.next(); err != nil {
				return nil, err
			}
			if r.tok.Kind == lexer.Comma {
				if err := r.next(); err != nil {
					return nil, err
				}
			}
		case lexer.EOF:
			return nil, r.errorf(r.tok.Pos, "unterminated body of field %q: missing %q", fieldName, "}")
		default:
			return nil, r.errorf(r.tok.Pos, "expected language entry or %q in field %q, found %s", "}", fieldName, r.tok.Describe())
		}
	}
}

func (r *run) next() error {
	tok, err := r.lex.Next()
	if err != nil {
		return err
	}
	r.tok = tok
	return nil
}

func (r *run) errorf(pos dsl.Pos, format string, args ...any) error {
	return dsl.NewParseError(r.source, pos, format, args...)
}
