package model

import (
	"errors"
	"strings"
)

// Persisted line format:
//
//	@<name>                        stock type header
//	<code>|<quantity>|<description> stock line
//
// Fields escape '\', '|', '@', LF and CR with a backslash.
const (
	HeaderPrefix   = '@'
	FieldSeparator = '|'
	escapeChar     = '\\'
)

var ErrBadEscape = errors.New("bad escape sequence")

var fieldEscaper = strings.NewReplacer(
	`\`, `\\`,
	`|`, `\|`,
	`@`, `\@`,
	"\n", `\n`,
	"\r", `\r`,
)

// EscapeField encodes s so it can sit in a single persisted line field.
func EscapeField(s string) string {
	return fieldEscaper.Replace(s)
}

// SplitFields splits a persisted line on unescaped separators and unescapes
// every field.
func SplitFields(line string) ([]string, error) {
	var (
		fields []string
		cur    strings.Builder
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch c {
		case escapeChar:
			if i+1 >= len(line) {
				return nil, ErrBadEscape
			}
			i++
			switch line[i] {
			case '\\', '|', '@':
				cur.WriteByte(line[i])
			case 'n':
				cur.WriteByte('\n')
			case 'r':
				cur.WriteByte('\r')
			default:
				return nil, ErrBadEscape
			}
		case FieldSeparator:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	return append(fields, cur.String()), nil
}

// UnescapeField decodes a single field. An unescaped separator is an error.
func UnescapeField(s string) (string, error) {
	fields, err := SplitFields(s)
	if err != nil {
		return "", err
	}
	if len(fields) != 1 {
		return "", errors.New("unexpected field separator")
	}
	return fields[0], nil
}
