package supersub

import (
	"fmt"
	"strings"
)

// Action selects the behavior when a character has no entry in the active
// table.
// The numeric values match the action digits of the format-specifier
// grammar.
type Action uint8

const (
	// ActionFail aborts the whole operation with an [InvalidRuneError].
	// No partial output is returned.
	ActionFail Action = iota

	// ActionSkip omits the unmapped character from the output.
	ActionSkip

	// ActionKeep emits the unmapped character unchanged.
	ActionKeep
)

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Action value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "Skip"
	case ActionKeep:
		return "Keep"
	default:
		return "Fail"
	}
}

// InvalidRuneError is returned when a character has no entry in the active
// table and the action is [ActionFail].
// Pos is the rune index of the character within the input, not its byte
// offset.
type InvalidRuneError struct {
	Rune rune
	Pos  int
}

// Error implements the error interface.
func (e *InvalidRuneError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Rune, e.Pos)
}

// Transliterate converts a string character by character through the table
// selected by mode.
// Characters present in the table are replaced; for characters absent from
// the table the action decides whether the operation fails, skips them, or
// keeps them unchanged.
//
// The scan is a single ordered pass, and the operation either fully
// succeeds or fails as a whole: on failure the result is always the empty
// string, never partial output.
func Transliterate(s string, mode Mode, action Action) (string, error) {
	return transliterate(s, mode.table(), action)
}

func transliterate(s string, table map[rune]rune, action Action) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	pos := 0
	for _, r := range s {
		switch out, ok := table[r]; {
		case ok:
			b.WriteRune(out)
		case action == ActionSkip:
			// drop it
		case action == ActionKeep:
			b.WriteRune(r)
		default:
			return "", &InvalidRuneError{Rune: r, Pos: pos}
		}
		pos++
	}
	return b.String(), nil
}
