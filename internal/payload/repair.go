package payload

import (
	"strings"
	"unicode"
)

// Repair applies a heuristic structural pass to near-valid JSON: trailing
// commas are dropped, single-quoted strings are re-quoted, unescaped inner
// quotes and raw newlines inside strings are escaped, missing commas between
// members are inserted, and unclosed brackets are completed. It is a pure
// best-effort transform, not a guarantee that the result parses.
func Repair(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 8)

	runes := []rune(raw)
	var stack []rune
	inStr := false
	escaped := false
	// last significant rune emitted outside of string literals
	prev := rune(0)

	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if inStr {
			switch {
			case escaped:
				b.WriteRune(ch)
				escaped = false
			case ch == '\\':
				b.WriteRune(ch)
				escaped = true
			case ch == '\n':
				b.WriteString(`\n`)
			case ch == '\r':
				// swallowed; the matching \n is rewritten above
			case ch == '\t':
				b.WriteString(`\t`)
			case ch == '"':
				if closesString(runes, i+1) {
					b.WriteRune(ch)
					inStr = false
					prev = '"'
				} else {
					b.WriteString(`\"`)
				}
			default:
				b.WriteRune(ch)
			}
			continue
		}

		switch {
		case ch == '"':
			writeSeparator(&b, prev)
			b.WriteRune(ch)
			inStr = true
		case ch == '\'':
			writeSeparator(&b, prev)
			i = writeSingleQuoted(&b, runes, i)
			prev = '"'
		case ch == '{' || ch == '[':
			writeSeparator(&b, prev)
			stack = append(stack, ch)
			b.WriteRune(ch)
			prev = ch
		case ch == '}' || ch == ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			b.WriteRune(ch)
			prev = ch
		case ch == ',':
			if next := nextSignificant(runes, i+1); next == '}' || next == ']' || next == ',' || next == 0 {
				continue // trailing or duplicated comma
			}
			b.WriteRune(ch)
			prev = ch
		case unicode.IsSpace(ch):
			b.WriteRune(ch)
		default:
			b.WriteRune(ch)
			prev = ch
		}
	}

	if inStr {
		b.WriteRune('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			b.WriteRune('}')
		} else {
			b.WriteRune(']')
		}
	}
	return b.String()
}

// closesString reports whether a double quote at position i-1 plausibly
// terminates the current string literal: the next significant rune must be a
// structural character or the end of input. Anything else means the quote is
// an unescaped quote inside the string.
func closesString(runes []rune, i int) bool {
	switch nextSignificant(runes, i) {
	case ',', '}', ']', ':', 0:
		return true
	}
	return false
}

func nextSignificant(runes []rune, i int) rune {
	for ; i < len(runes); i++ {
		if !unicode.IsSpace(runes[i]) {
			return runes[i]
		}
	}
	return 0
}

// writeSeparator inserts the comma the model forgot between two members:
// a new value may not directly follow the end of a previous one.
func writeSeparator(b *strings.Builder, prev rune) {
	switch prev {
	case '"', '}', ']':
		b.WriteRune(',')
	default:
		if unicode.IsDigit(prev) || unicode.IsLetter(prev) {
			b.WriteRune(',')
		}
	}
}

// writeSingleQuoted re-emits a single-quoted string as a double-quoted one,
// returning the index of the closing quote (or the last rune consumed).
func writeSingleQuoted(b *strings.Builder, runes []rune, start int) int {
	b.WriteRune('"')
	i := start + 1
	for ; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '\\' && i+1 < len(runes):
			b.WriteRune(ch)
			i++
			b.WriteRune(runes[i])
		case ch == '\'':
			b.WriteRune('"')
			return i
		case ch == '"':
			b.WriteString(`\"`)
		case ch == '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(ch)
		}
	}
	b.WriteRune('"')
	return i
}
