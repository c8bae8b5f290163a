// Package template implements the placeholder syntax used inside language
// table strings. A template is literal text interspersed with {name}
// references; doubled braces escape literal "{" and "}". Parsing happens at
// generation time so malformed templates fail the build instead of surfacing
// at runtime.
package template

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SegmentKind distinguishes literal text from placeholder references.
type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentPlaceholder
)

// Segment is one piece of a parsed template. Text holds the literal text for
// literal segments (with escape sequences already decoded) and the referenced
// name for placeholder segments.
type Segment struct {
	Kind SegmentKind
	Text string
}

// Error describes a malformed template. Offset is the byte position of the
// offending character within the template text.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("template: offset %d: %s", e.Offset, e.Msg)
}

func errorf(offset int, format string, args ...any) error {
	return &Error{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// Parse splits template text into literal and placeholder segments.
// Consecutive literal runs are merged, so round-tripping the segments yields
// the rendered form of the text, not its escaped source form.
func Parse(text string) ([]Segment, error) {
	var (
		segs    []Segment
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() > 0 {
			segs = append(segs, Segment{Kind: SegmentLiteral, Text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch r {
		case '{':
			if strings.HasPrefix(text[i+size:], "{") {
				literal.WriteByte('{')
				i += size + 1
				continue
			}
			name, width, err := scanPlaceholder(text, i+size)
			if err != nil {
				return nil, err
			}
			flush()
			segs = append(segs, Segment{Kind: SegmentPlaceholder, Text: name})
			i += size + width
		case '}':
			if strings.HasPrefix(text[i+size:], "}") {
				literal.WriteByte('}')
				i += size + 1
				continue
			}
			return nil, errorf(i, `stray "}" (use "}}" for a literal brace)`)
		default:
			literal.WriteRune(r)
			i += size
		}
	}

	flush()
	return segs, nil
}

// scanPlaceholder reads the name and closing brace starting at offset start
// (just past the opening brace). It returns the name and the number of bytes
// consumed including the closing brace.
func scanPlaceholder(text string, start int) (string, int, error) {
	i := start
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '}' {
			name := text[start:i]
			if name == "" {
				return "", 0, errorf(start-1, "empty placeholder {}")
			}
			return name, i + size - start, nil
		}
		if !isNameRune(r, i == start) {
			return "", 0, errorf(i, "invalid character %q in placeholder name", r)
		}
		i += size
	}
	return "", 0, errorf(start-1, `unterminated placeholder (use "{{" for a literal brace)`)
}

func isNameRune(r rune, first bool) bool {
	if r == '_' || unicode.IsLetter(r) {
		return true
	}
	return !first && unicode.IsDigit(r)
}

// Placeholders returns the distinct referenced names in first-reference order.
func Placeholders(segs []Segment) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, seg := range segs {
		if seg.Kind != SegmentPlaceholder {
			continue
		}
		if _, dup := seen[seg.Text]; dup {
			continue
		}
		seen[seg.Text] = struct{}{}
		names = append(names, seg.Text)
	}
	return names
}

// HasPlaceholders reports whether any segment references a name.
func HasPlaceholders(segs []Segment) bool {
	for _, seg := range segs {
		if seg.Kind == SegmentPlaceholder {
			return true
		}
	}
	return false
}

// Literal returns the rendered text of a template with no placeholders and
// reports whether the segments were indeed all literal.
func Literal(segs []Segment) (string, bool) {
	var sb strings.Builder
	for _, seg := range segs {
		if seg.Kind != SegmentLiteral {
			return "", false
		}
		sb.WriteString(seg.Text)
	}
	return sb.String(), true
}

// FormatSpec converts segments into a fmt format string with indexed verbs:
// each placeholder becomes %[k]v where k is its 1-based position in tuple,
// and literal percent signs are doubled. Placeholders missing from the tuple
// keep their {name} form so the output stays inspectable instead of
// panicking inside a generator.
func FormatSpec(segs []Segment, tuple []string) string {
	index := make(map[string]int, len(tuple))
	for i, name := range tuple {
		index[name] = i + 1
	}

	var sb strings.Builder
	for _, seg := range segs {
		switch seg.Kind {
		case SegmentPlaceholder:
			k, ok := index[seg.Text]
			if !ok {
				sb.WriteString("{" + seg.Text + "}")
				continue
			}
			fmt.Fprintf(&sb, "%%[%d]v", k)
		default:
			sb.WriteString(strings.ReplaceAll(seg.Text, "%", "%%"))
		}
	}
	return sb.String()
}

// Render expands the segments against the supplied arguments. Missing
// arguments render as the unexpanded {name} form so callers can spot them.
// Render backs the preview tooling and tests; generated accessors format
// through the standard library instead.
func Render(segs []Segment, args map[string]any) string {
	var sb strings.Builder
	for _, seg := range segs {
		switch seg.Kind {
		case SegmentPlaceholder:
			if value, ok := args[seg.Text]; ok {
				fmt.Fprintf(&sb, "%v", value)
			} else {
				sb.WriteString("{" + seg.Text + "}")
			}
		default:
			sb.WriteString(seg.Text)
		}
	}
	return sb.String()
}
