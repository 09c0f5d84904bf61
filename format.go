package supersub

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/govalues/decimal"
)

var (
	// ErrInvalidSpecifier is returned when a format specifier does not
	// match the su[pb][0-2]? grammar.
	ErrInvalidSpecifier = errors.New("invalid format specifier")

	// ErrUnboundFormatter is returned when Format is called on a
	// Formatter that was not obtained from [NewFormatter].
	ErrUnboundFormatter = errors.New("formatter not bound to character tables")
)

// Specifier is a parsed format specifier.
// See [ParseSpecifier] for the grammar.
type Specifier struct {
	Mode   Mode
	Action Action
}

// ParseSpecifier converts a string to a specifier.
// The input must match su[pb][0-2]? case-insensitively:
//
//	sup	superscript, skip unmapped characters
//	sub	subscript, skip unmapped characters
//	SUP0	superscript, fail on unmapped characters
//	sub2	subscript, keep unmapped characters
//
// The trailing digit selects the invalid-character action (0 fail, 1 skip,
// 2 keep) and defaults to skip when absent.
// ParseSpecifier returns an error wrapping [ErrInvalidSpecifier] if the
// string does not conform to the grammar.
func ParseSpecifier(s string) (Specifier, error) {
	if len(s) < 3 || len(s) > 4 || lower(s[0]) != 's' || lower(s[1]) != 'u' {
		return Specifier{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidSpecifier)
	}
	var mode Mode
	switch lower(s[2]) {
	case 'p':
		mode = Superscript
	case 'b':
		mode = Subscript
	default:
		return Specifier{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidSpecifier)
	}
	action := ActionSkip
	if len(s) == 4 {
		if s[3] < '0' || s[3] > '2' {
			return Specifier{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidSpecifier)
		}
		action = Action(s[3] - '0')
	}
	return Specifier{Mode: mode, Action: action}, nil
}

// lower folds an ASCII letter to lower case.
func lower(c byte) byte {
	return c | 0x20
}

// MustParseSpecifier is like [ParseSpecifier] but panics if the string
// cannot be parsed.
// It simplifies safe initialization of global variables holding specifiers.
func MustParseSpecifier(s string) Specifier {
	sp, err := ParseSpecifier(s)
	if err != nil {
		panic(fmt.Sprintf("ParseSpecifier(%q) failed: %v", s, err))
	}
	return sp
}

// Format renders a value using the specifier and the default formatter.
// See [Formatter.Format] for the rendering rules.
func (sp Specifier) Format(v any) (string, error) {
	return defaultFormatter.render(sp, v)
}

// Formatter renders values as superscript or subscript strings.
// It acts as a capability token: the zero value is unusable and fails with
// [ErrUnboundFormatter], so a Formatter must be obtained from
// [NewFormatter].
// Formatters are immutable and safe for concurrent use by multiple
// goroutines.
type Formatter struct {
	sup, sub map[rune]rune
}

// NewFormatter returns a formatter bound to the process-wide superscript
// and subscript tables.
func NewFormatter() Formatter {
	return Formatter{sup: superscripts, sub: subscripts}
}

var defaultFormatter = NewFormatter()

// Format renders a value under the given format specifier:
//
//  1. The specifier is parsed; see [ParseSpecifier] for the grammar.
//  2. A nil value renders as the empty string.
//  3. Strings and byte slices pass through verbatim.
//     Numeric values render per their [Kind]: integers in plain base 10
//     with sign; floating-point values in general notation in superscript
//     mode but fixed-point with no fractional digits in subscript mode,
//     since the subscript table has no exponent-letter glyphs; anything
//     else via its default representation.
//  4. The intermediate string is transliterated through the table selected
//     by the mode, applying the specifier's invalid-character action.
//
// Format returns an error wrapping [ErrInvalidSpecifier] for a malformed
// specifier and an [InvalidRuneError] when the fail action meets an
// unmapped character.
func (f Formatter) Format(spec string, v any) (string, error) {
	sp, err := ParseSpecifier(spec)
	if err != nil {
		return "", err
	}
	return f.render(sp, v)
}

func (f Formatter) render(sp Specifier, v any) (string, error) {
	if f.sup == nil || f.sub == nil {
		return "", ErrUnboundFormatter
	}
	table := f.sup
	if sp.Mode == Subscript {
		table = f.sub
	}
	return transliterate(intermediate(v, sp.Mode), table, sp.Action)
}

// Format renders a value using the default formatter.
// It is shorthand for NewFormatter().Format(spec, v).
func Format(spec string, v any) (string, error) {
	return defaultFormatter.Format(spec, v)
}

// MustFormat is like [Format] but panics if the value cannot be rendered.
// It simplifies safe initialization of global variables holding rendered
// strings.
func MustFormat(spec string, v any) string {
	s, err := Format(spec, v)
	if err != nil {
		panic(fmt.Sprintf("Format(%q, %v) failed: %v", spec, v, err))
	}
	return s
}

// ToSuperscript renders a value in superscript, skipping unmapped
// characters.
// It is shorthand for Format("sup", v).
func ToSuperscript(v any) (string, error) {
	return Format("sup", v)
}

// ToSubscript renders a value in subscript, skipping unmapped characters.
// It is shorthand for Format("sub", v).
func ToSubscript(v any) (string, error) {
	return Format("sub", v)
}

// renderFunc renders a classified value to its intermediate string.
type renderFunc func(v any, mode Mode) string

// renderers dispatches rendering by kind.
// Keeping the table keyed by the closed Kind set means a newly supported
// numeric representation cannot silently fall through to the default
// rendering.
var renderers = map[Kind]renderFunc{
	SignedInt:   renderSigned,
	UnsignedInt: renderUnsigned,
	Float:       renderFloat,
	BigInt:      renderBigInt,
	Complex:     renderComplex,
}

// intermediate renders a value to the string that will be transliterated.
// A nil value, or a renderer producing no text, yields the empty string.
func intermediate(v any, mode Mode) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	}
	if fn, ok := renderers[Classify(v)]; ok {
		return fn(v, mode)
	}
	return fmt.Sprint(v)
}

func renderSigned(v any, _ Mode) string {
	var n int64
	switch t := v.(type) {
	case int:
		n = int64(t)
	case int8:
		n = int64(t)
	case int16:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	}
	return strconv.FormatInt(n, 10)
}

func renderUnsigned(v any, _ Mode) string {
	var n uint64
	switch t := v.(type) {
	case uint:
		n = uint64(t)
	case uint8:
		n = uint64(t)
	case uint16:
		n = uint64(t)
	case uint32:
		n = uint64(t)
	case uint64:
		n = t
	case uintptr:
		n = uint64(t)
	}
	return strconv.FormatUint(n, 10)
}

func renderFloat(v any, mode Mode) string {
	sub := mode == Subscript
	switch t := v.(type) {
	case float32:
		if sub {
			return strconv.FormatFloat(float64(t), 'f', 0, 32)
		}
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case float64:
		if sub {
			return strconv.FormatFloat(t, 'f', 0, 64)
		}
		return strconv.FormatFloat(t, 'g', -1, 64)
	case decimal.Decimal:
		if sub {
			return t.Round(0).String()
		}
		return t.String()
	case big.Float:
		return renderBigFloat(&t, sub)
	case *big.Float:
		if t == nil {
			return ""
		}
		return renderBigFloat(t, sub)
	}
	return ""
}

func renderBigFloat(f *big.Float, sub bool) string {
	if sub {
		return f.Text('f', 0)
	}
	return f.Text('g', -1)
}

func renderBigInt(v any, _ Mode) string {
	switch t := v.(type) {
	case big.Int:
		return t.String()
	case *big.Int:
		if t == nil {
			return ""
		}
		return t.String()
	}
	return ""
}

func renderComplex(v any, mode Mode) string {
	var c complex128
	switch t := v.(type) {
	case complex64:
		c = complex128(t)
	case complex128:
		c = t
	}
	if mode == Subscript {
		return strconv.FormatComplex(c, 'f', 0, 128)
	}
	return strconv.FormatComplex(c, 'g', -1, 128)
}
