package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// offsetPosition converts a byte offset in text into the zero-based
// line/character position the protocol expects. Newlines reset the character
// counter; every other rune advances it by one.
func offsetPosition(text string, offset int) protocol.Position {
	line, character := 0, 0
	for i, ch := range text {
		if i >= offset {
			break
		}
		if ch == '\n' {
			line++
			character = 0
		} else {
			character++
		}
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(character),
	}
}

// offsetRange builds a one-character range at offset, collapsing to an empty
// range at end of input.
func offsetRange(text string, offset int) protocol.Range {
	start := offsetPosition(text, offset)
	end := start
	if offset < len(text) {
		end.Character++
	}
	return protocol.Range{Start: start, End: end}
}
