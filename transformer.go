package supersub

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer applies a transliteration table to a byte stream.
// It implements the [transform.Transformer] interface, so it can be used
// with [transform.String], [transform.NewReader], and [transform.NewWriter].
//
// Unlike [Transliterate], a failing Transformer may already have written
// transformed bytes to the destination; use Transliterate when the
// all-or-nothing guarantee matters.
type Transformer struct {
	table  map[rune]rune
	action Action
	pos    int // rune index of the next source rune, for error reporting
}

// NewTransformer returns a Transformer that transliterates through the table
// selected by mode, applying action to unmapped characters.
func NewTransformer(mode Mode, action Action) *Transformer {
	return &Transformer{table: mode.table(), action: action}
}

// Reset implements the [transform.Transformer] interface.
func (t *Transformer) Reset() {
	t.pos = 0
}

// Transform implements the [transform.Transformer] interface.
// Bytes that do not form a valid UTF-8 encoding are handled like unmapped
// characters, one utf8.RuneError per invalid byte.
func (t *Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		out, ok := t.table[r]
		if !ok {
			switch t.action {
			case ActionSkip:
				nSrc += size
				t.pos++
				continue
			case ActionKeep:
				out = r
			default:
				return nDst, nSrc, &InvalidRuneError{Rune: r, Pos: t.pos}
			}
		}
		if utf8.RuneLen(out) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], out)
		nSrc += size
		t.pos++
	}
	return nDst, nSrc, nil
}
