package parser

import (
	"regexp"
	"strings"
)

// Lit matches text exactly at the current offset and yields it. A mismatch is
// an uncommitted failure with an empty message; higher-level combinators
// install the wording.
func Lit(text string) Parser[string] {
	return func(in Input) Result[string] {
		if strings.HasPrefix(in.Rest(), text) {
			return Succeed(text, len(text))
		}
		return Fail[string]("", in.Offset, false)
	}
}

// Byte matches a single byte and yields it.
func Byte(c byte) Parser[byte] {
	return func(in Input) Result[byte] {
		if !in.AtEnd() && in.Source[in.Offset] == c {
			return Succeed(c, 1)
		}
		return Fail[byte]("", in.Offset, false)
	}
}

// Regexp matches pattern anchored at the current offset and yields the
// matched text. The pattern must be valid; Regexp panics otherwise, which is
// acceptable because grammars are built from constant patterns.
func Regexp(pattern string) Parser[string] {
	re := regexp.MustCompile(`\A(?:` + pattern + `)`)
	return func(in Input) Result[string] {
		loc := re.FindStringIndex(in.Rest())
		if loc == nil {
			return Fail[string]("", in.Offset, false)
		}
		return Succeed(in.Rest()[:loc[1]], loc[1])
	}
}

// End succeeds with an empty string exactly at end of input, consuming
// nothing.
func End() Parser[string] {
	return func(in Input) Result[string] {
		if in.AtEnd() {
			return Succeed("", 0)
		}
		return Fail[string]("", in.Offset, false)
	}
}
