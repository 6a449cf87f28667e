package json

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/dhamidi/parsekit/parser"
)

// Parse parses text as a single JSON document. Trailing non-whitespace input
// is an error. On failure the returned error is a *parser.Error carrying the
// failure offset and the composed message.
func Parse(text string) (Value, error) {
	return parser.Parse(parser.Parser[Value](value), text)
}

// value is the recursive entry point of the grammar; arrays and objects refer
// back to it by name.
func value(in parser.Input) parser.Result[Value] {
	return grammar(in)
}

// token matches a literal with surrounding whitespace skipped.
func token(text string) parser.Parser[string] {
	return parser.TrimSpace(parser.Lit(text))
}

// stringBodyPattern admits unescaped characters and the short escapes.
// \uXXXX passes the regex as `\u` followed by ordinary characters; the hex
// digits are decoded by unescape.
const stringBodyPattern = `(?:[^"\\]|\\[\\"/bfnrtu])*`

var (
	nullValue = parser.Map(parser.Lit("null"), func(string) Value { return Null{} })

	boolValue = parser.Or(
		parser.Map(parser.Lit("true"), func(string) Value { return Bool(true) }),
		parser.Map(parser.Lit("false"), func(string) Value { return Bool(false) }),
	)

	numberValue = parser.Map(parser.Number, func(f float64) Value { return Number(f) })

	stringLiteral = parser.Map(
		parser.Between(parser.Lit(`"`), parser.Lit(`"`), parser.Regexp(stringBodyPattern)),
		unescape,
	)

	stringValue = parser.Map(stringLiteral, func(s string) Value { return String(s) })

	arrayValue = parser.Map(
		parser.Between(
			token("["),
			parser.Expect(token("]"), "expected ']'"),
			parser.SepBy(parser.Parser[Value](value), parser.Lit(",")),
		),
		func(vs []Value) Value { return Array(vs) },
	)

	member = parser.Map(
		parser.Then(
			parser.ThenSkip(parser.TrimSpace(stringLiteral), parser.Lit(":")),
			parser.Parser[Value](value),
		),
		func(p parser.Pair[string, Value]) Member { return Member{Key: p.First, Value: p.Second} },
	)

	objectValue = parser.Map(
		parser.Between(
			token("{"),
			parser.Expect(token("}"), "expected '}'"),
			parser.SepBy(member, parser.Lit(",")),
		),
		func(ms []Member) Value { return makeObject(ms) },
	)
)

// grammar ties the recursive knot, so it cannot carry an initializer: the
// compiler would report an initialization cycle through value.
var grammar parser.Parser[Value]

func init() {
	grammar = parser.TrimSpace(parser.Expect(
		parser.Or(nullValue, boolValue, numberValue, stringValue, arrayValue, objectValue),
		"illegal start of JSON value",
	))
}

// unescape replaces the recognized escape sequences in a raw string body with
// their characters. \uXXXX decodes to the code point, combining surrogate
// pairs; an unpaired surrogate becomes U+FFFD and a \u not followed by four
// hex digits is kept literally.
func unescape(raw string) string {
	if !strings.Contains(raw, `\`) {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); {
		if raw[i] != '\\' {
			b.WriteByte(raw[i])
			i++
			continue
		}
		// The body regex guarantees a valid escape character follows.
		switch raw[i+1] {
		case '"', '\\', '/':
			b.WriteByte(raw[i+1])
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'u':
			r, size, ok := decodeUnicodeEscape(raw[i:])
			if !ok {
				b.WriteString(`\u`)
				i += 2
				continue
			}
			b.WriteRune(r)
			i += size
		}
	}
	return b.String()
}

// decodeUnicodeEscape decodes a \uXXXX escape at the start of s, returning
// the rune and the number of bytes consumed (12 for a surrogate pair).
func decodeUnicodeEscape(s string) (rune, int, bool) {
	if len(s) < 6 {
		return 0, 0, false
	}
	n, err := strconv.ParseUint(s[2:6], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	r := rune(n)
	if !utf16.IsSurrogate(r) {
		return r, 6, true
	}
	if len(s) >= 12 && s[6] == '\\' && s[7] == 'u' {
		if n2, err := strconv.ParseUint(s[8:12], 16, 32); err == nil {
			if combined := utf16.DecodeRune(r, rune(n2)); combined != unicode.ReplacementChar {
				return combined, 12, true
			}
		}
	}
	return unicode.ReplacementChar, 6, true
}
