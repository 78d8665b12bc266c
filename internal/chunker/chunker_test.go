package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		maxChars       int
		expectedPieces int
	}{
		{
			name:           "empty input",
			text:           "",
			maxChars:       100,
			expectedPieces: 0,
		},
		{
			name:           "document fits",
			text:           "Hello world",
			maxChars:       100,
			expectedPieces: 1,
		},
		{
			name:           "paragraphs packed greedily",
			text:           "aaaa\n\nbbbb\n\ncccc",
			maxChars:       10, // aaaa\n\nbbbb is exactly 10
			expectedPieces: 2,
		},
		{
			name: "each paragraph in own piece",
			text: strings.Join([]string{
				strings.Repeat("a", 8),
				strings.Repeat("b", 8),
				strings.Repeat("c", 8),
			}, "\n\n"),
			maxChars:       10,
			expectedPieces: 3,
		},
		{
			name:           "oversized paragraph split on lines",
			text:           "short\n\n" + "line one\nline two\nline three",
			maxChars:       12,
			expectedPieces: 4, // short | line one | line two | line three
		},
		{
			name:           "oversized line split on words",
			text:           "one two three four five",
			maxChars:       9,
			expectedPieces: 3, // one two | three | four five
		},
		{
			name:           "oversized word split on characters",
			text:           "abcdefghij",
			maxChars:       4,
			expectedPieces: 3,
		},
		{
			name:           "blank paragraphs survive",
			text:           "aaaa\n\n\n\nbbbb",
			maxChars:       5,
			expectedPieces: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces := Split(tt.text, tt.maxChars)

			if len(pieces) != tt.expectedPieces {
				t.Errorf("Split() returned %d pieces, want %d: %q", len(pieces), tt.expectedPieces, pieces)
			}

			if got := Join(pieces); got != tt.text {
				t.Errorf("Join(Split()) = %q, want %q", got, tt.text)
			}

			for i, p := range pieces {
				if n := utf8.RuneCountInString(p.Text); n > tt.maxChars {
					t.Errorf("piece[%d] has %d chars, max %d", i, n, tt.maxChars)
				}
			}
		})
	}
}

func TestSplit_MultiByteRunes(t *testing.T) {
	text := strings.Repeat("é", 5)
	pieces := Split(text, 2)

	if len(pieces) != 3 {
		t.Fatalf("Split() returned %d pieces, want 3", len(pieces))
	}
	for i, p := range pieces {
		if !utf8.ValidString(p.Text) {
			t.Errorf("piece[%d] = %q is not valid UTF-8", i, p.Text)
		}
	}
	if Join(pieces) != text {
		t.Errorf("Join(Split()) = %q, want %q", Join(pieces), text)
	}
}

func TestSplit_SeparatorsNotInText(t *testing.T) {
	pieces := Split("first\n\nsecond", 6)

	want := []Piece{
		{Text: "first", Sep: "\n\n"},
		{Text: "second", Sep: ""},
	}
	if len(pieces) != len(want) {
		t.Fatalf("Split() = %q, want %q", pieces, want)
	}
	for i := range want {
		if pieces[i] != want[i] {
			t.Errorf("piece[%d] = %q, want %q", i, pieces[i], want[i])
		}
	}
}

func TestSplit_DefaultMaxChars(t *testing.T) {
	pieces := Split("test", 0) // Should use default

	if len(pieces) != 1 {
		t.Errorf("Split with 0 maxChars should use default, got %d pieces", len(pieces))
	}

	long := strings.Repeat("x", DefaultMaxChars+1)
	if got := len(Split(long, 0)); got != 2 {
		t.Errorf("Split of %d chars with default limit returned %d pieces, want 2", len(long), got)
	}
}
