/*
Package supersub renders numeric and textual values as Unicode superscript or
subscript strings.
It combines a small format-specifier grammar with fixed character tables and
supports the standard Go numeric types as well as [big.Int], [big.Float], and
[decimal.Decimal] values.

# Format Specifiers

Rendering is driven by a specifier string matching su[pb][0-2]?,
case-insensitively:

  - "sup" selects superscript mode, "sub" selects subscript mode;
  - an optional trailing digit selects what happens to characters the active
    table cannot map: 0 fails, 1 skips them, 2 keeps them unchanged.
    Without the digit, unmapped characters are skipped.

For example, Format("sup", 123) returns "¹²³" and Format("sub", -4) returns
"₋₄".

# Rendering

A value is first rendered to an intermediate string, then transliterated
through the table selected by the mode.
Strings and byte slices pass through verbatim.
Integers of any width, big integers included, render in plain base 10 with
sign.
Floating-point values render in general (shortest) notation in superscript
mode, but in fixed-point notation with no fractional digits in subscript
mode: the subscript table has no exponent-letter glyphs, so scientific
notation cannot be represented there.
A nil value renders as the empty string.

# Character Tables

The two tables are fixed at process start and never mutated, so all
operations are safe for concurrent use by multiple goroutines.
The subscript table is considerably smaller than the superscript one: it
covers only the digits and the minus sign.

# Streaming

[Transformer] adapts a table and an invalid-character action to the
[transform.Transformer] interface, so transliteration can run inside
x/text transform pipelines and readers.

# Errors

All operations are synchronous and deterministic.
Errors are returned for malformed specifiers, zero divisors, and, under the
fail action, for characters the active table cannot map; the latter report
the offending rune and its position via [InvalidRuneError].
*/
package supersub
