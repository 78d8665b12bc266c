// Package chunker splits documents into pieces that fit a single translate call.
package chunker

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxChars is the Azure Translator limit on characters per request.
const DefaultMaxChars = 50000

// separators are tried in order: paragraphs, then lines, then words.
var separators = []string{"\n\n", "\n", " "}

// Piece is one chunk of a document. Sep is the text that followed the chunk
// in the source and is not sent for translation.
type Piece struct {
	Text string
	Sep  string
}

// Join concatenates translated pieces back into a document.
func Join(pieces []Piece) string {
	var b strings.Builder
	for _, p := range pieces {
		b.WriteString(p.Text)
		b.WriteString(p.Sep)
	}
	return b.String()
}

// Split breaks text into pieces of at most maxChars characters.
// Paragraphs are kept whole and packed greedily. A paragraph that is too
// long on its own is split at line breaks, then spaces, then characters.
// Join(Split(text, n)) == text.
func Split(text string, maxChars int) []Piece {
	if text == "" {
		return nil
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return split(text, "", maxChars, 0)
}

// split breaks text, which is followed by sep in the source, using
// separators[level:].
func split(text, sep string, maxChars, level int) []Piece {
	if utf8.RuneCountInString(text) <= maxChars {
		return []Piece{{Text: text, Sep: sep}}
	}
	if level == len(separators) {
		return splitRunes(text, sep, maxChars)
	}

	s := separators[level]
	parts := strings.Split(text, s)
	if len(parts) == 1 {
		return split(text, sep, maxChars, level+1)
	}

	var (
		pieces  []Piece
		current strings.Builder
		size    int
		started bool
	)
	flush := func(trailing string) {
		pieces = append(pieces, Piece{Text: current.String(), Sep: trailing})
		current.Reset()
		size = 0
		started = false
	}

	last := len(parts) - 1
	for i, part := range parts {
		trailing := s
		if i == last {
			trailing = sep
		}
		n := utf8.RuneCountInString(part)

		// An oversized part gets its own pieces at the next level.
		if n > maxChars {
			if started {
				flush(s)
			}
			pieces = append(pieces, split(part, trailing, maxChars, level+1)...)
			continue
		}

		if started && size+len(s)+n > maxChars {
			flush(s)
		}
		if started {
			current.WriteString(s)
			size += len(s)
		}
		current.WriteString(part)
		size += n
		started = true

		if i == last {
			flush(sep)
		}
	}

	return pieces
}

// splitRunes cuts text every maxChars runes, never inside a rune.
func splitRunes(text, sep string, maxChars int) []Piece {
	var pieces []Piece
	for text != "" {
		cut := len(text)
		count := 0
		for i := range text {
			if count == maxChars {
				cut = i
				break
			}
			count++
		}
		pieces = append(pieces, Piece{Text: text[:cut]})
		text = text[cut:]
	}
	pieces[len(pieces)-1].Sep = sep
	return pieces
}
