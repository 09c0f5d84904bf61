package supersub_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"

	"github.com/mossy2100/supersub"
)

func TestTransformer(t *testing.T) {
	testCases := []struct {
		name     string
		mode     supersub.Mode
		action   supersub.Action
		input    string
		expected string
	}{
		{
			name:     "superscript digits",
			mode:     supersub.Superscript,
			action:   supersub.ActionFail,
			input:    "0123456789",
			expected: "⁰¹²³⁴⁵⁶⁷⁸⁹",
		},
		{
			name:     "superscript scientific notation",
			mode:     supersub.Superscript,
			action:   supersub.ActionFail,
			input:    "1.5e+10",
			expected: "¹˙⁵ᵉ⁺¹⁰",
		},
		{
			name:     "subscript with skip",
			mode:     supersub.Subscript,
			action:   supersub.ActionSkip,
			input:    "C6H12O6",
			expected: "₆₁₂₆",
		},
		{
			name:     "subscript with keep",
			mode:     supersub.Subscript,
			action:   supersub.ActionKeep,
			input:    "C6H12O6",
			expected: "C₆H₁₂O₆",
		},
		{
			name:     "empty input",
			mode:     supersub.Superscript,
			action:   supersub.ActionFail,
			input:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, _, err := transform.String(supersub.NewTransformer(tc.mode, tc.action), tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
		})
	}
}

func TestTransformerFail(t *testing.T) {
	tr := supersub.NewTransformer(supersub.Superscript, supersub.ActionFail)

	_, _, err := transform.String(tr, "12x3")
	var ire *supersub.InvalidRuneError
	require.ErrorAs(t, err, &ire)
	require.Equal(t, 'x', ire.Rune)
	require.Equal(t, 2, ire.Pos)

	// transform.String resets the transformer, so the reported position
	// is relative to the new input, not cumulative.
	_, _, err = transform.String(tr, "1y")
	require.ErrorAs(t, err, &ire)
	require.Equal(t, 'y', ire.Rune)
	require.Equal(t, 1, ire.Pos)
}

func TestTransformerReader(t *testing.T) {
	r := transform.NewReader(
		strings.NewReader("pi is roughly 3.14159"),
		supersub.NewTransformer(supersub.Superscript, supersub.ActionKeep),
	)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "pi is roughly ³˙¹⁴¹⁵⁹", string(got))
}

func TestTransformerShortDst(t *testing.T) {
	// Each superscript digit is wider than its ASCII source, so a
	// destination sized to the input forces ErrShortDst at least once.
	tr := supersub.NewTransformer(supersub.Superscript, supersub.ActionFail)
	src := []byte("123456")

	var out []byte
	dst := make([]byte, len(src))
	for len(src) > 0 {
		nDst, nSrc, err := tr.Transform(dst, src, true)
		out = append(out, dst[:nDst]...)
		src = src[nSrc:]
		if err != nil {
			require.ErrorIs(t, err, transform.ErrShortDst)
		}
	}
	require.Equal(t, "¹²³⁴⁵⁶", string(out))
}
