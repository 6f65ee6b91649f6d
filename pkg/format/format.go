// Package format renders counter values as display strings.
//
// Formatting is pure and deterministic: a finite float64 plus an Options
// value always produces the same string, so callers can re-run it on every
// animation tick without side effects.
package format

import (
	"strconv"
	"strings"
)

// Options controls how a numeric value is rendered.
type Options struct {
	// Decimals is the number of digits after the decimal point.
	Decimals int
	// Prefix is prepended to the formatted number (e.g. "$").
	Prefix string
	// Suffix is appended to the formatted number (e.g. "+").
	Suffix string
	// Separator groups the integer digits by thousands when non-empty
	// (e.g. "," renders 1234567 as "1,234,567"). The decimal part is
	// never grouped.
	Separator string
}

// Format renders value according to opts: fixed-decimal rounding, optional
// thousands grouping of the integer part, then prefix and suffix.
func Format(value float64, opts Options) string {
	decimals := opts.Decimals
	if decimals < 0 {
		decimals = 0
	}

	number := strconv.FormatFloat(value, 'f', decimals, 64)
	if opts.Separator != "" {
		number = groupThousands(number, opts.Separator)
	}

	if opts.Prefix == "" && opts.Suffix == "" {
		return number
	}

	var sb strings.Builder
	sb.Grow(len(opts.Prefix) + len(number) + len(opts.Suffix))
	sb.WriteString(opts.Prefix)
	sb.WriteString(number)
	sb.WriteString(opts.Suffix)
	return sb.String()
}

// groupThousands inserts sep between groups of three integer digits,
// counting from the right. The sign and any decimal part pass through
// untouched.
func groupThousands(number, sep string) string {
	sign := ""
	if strings.HasPrefix(number, "-") {
		sign = "-"
		number = number[1:]
	}

	intPart := number
	fracPart := ""
	if dot := strings.IndexByte(number, '.'); dot >= 0 {
		intPart = number[:dot]
		fracPart = number[dot:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var sb strings.Builder
	sb.Grow(len(sign) + len(intPart) + len(fracPart) + (len(intPart)-1)/3*len(sep))
	sb.WriteString(sign)

	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(intPart[i : i+3])
	}

	sb.WriteString(fracPart)
	return sb.String()
}
