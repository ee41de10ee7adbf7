// Package escape provides the shared escaping rules for anchor payloads
// and backmatter quoted strings.
package escape

import "strings"

// Unescape expands the fixed escape set in a single left-to-right pass:
// \\ \" \' \n \r \t become their literal characters. Any other backslash
// sequence, including a trailing lone backslash, passes through unchanged.
// The substitution is non-recursive: output characters are never re-examined.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			// Unknown escape: keep the backslash and leave the next
			// character for the following iteration.
			b.WriteByte(c)
			continue
		}
		i++
	}
	return b.String()
}

// Quote renders s as a double-quoted backmatter string, escaping exactly
// the characters Unescape expands. Quote and Unescape are inverses for
// any input.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// EscapeComment escapes s for use inside a backmatter comment, where an
// unescaped ')' terminates the comment. Only ')' needs escaping; comments
// have no other escape sequences.
func EscapeComment(s string) string {
	return strings.ReplaceAll(s, `)`, `\)`)
}
