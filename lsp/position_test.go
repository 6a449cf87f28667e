package lsp

import "testing"

func TestOffsetPosition(t *testing.T) {
	text := "{\n  \"a\": 1,\n  \"b\"\n}"

	tests := []struct {
		offset    int
		line      int
		character int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 0},
		{4, 1, 2},
		{12, 2, 0},
		{len(text), 3, 1},
	}

	for _, tt := range tests {
		pos := offsetPosition(text, tt.offset)
		if int(pos.Line) != tt.line || int(pos.Character) != tt.character {
			t.Errorf("offset %d: got %d:%d, want %d:%d", tt.offset, pos.Line, pos.Character, tt.line, tt.character)
		}
	}
}

func TestOffsetRange(t *testing.T) {
	text := "ab"

	r := offsetRange(text, 1)
	if r.Start.Character != 1 || r.End.Character != 2 {
		t.Errorf("got %v, want one-character range at 1", r)
	}

	r = offsetRange(text, len(text))
	if r.Start != r.End {
		t.Errorf("got %v, want empty range at end of input", r)
	}
}
