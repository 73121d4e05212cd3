// Package dump renders byte buffers for debugging and decodes key text
// containing hex escapes.
package dump

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// smallSize is the largest buffer Table prints as a single integer.
const smallSize = 8

// ErrBadEscape indicates a backslash not followed by two hex digits or a
// second backslash.
var ErrBadEscape = errors.New("invalid escape sequence")

// String renders a buffer holding ASCII text as-is.
func String(buf []byte) string {
	return string(buf)
}

// Binary renders every byte as a \xNN escape.
func Binary(buf []byte) string {
	var sb strings.Builder
	sb.Grow(4 * len(buf))
	for _, b := range buf {
		fmt.Fprintf(&sb, "\\x%02x", b)
	}
	return sb.String()
}

// Table renders a named buffer as debug lines. Buffers of up to 8 bytes are
// shown as one hex integer assembled least-significant byte first; longer
// buffers get a row of byte indices above a row of hex bytes.
func Table(name string, data []byte) []string {
	if len(data) <= smallSize {
		var v uint64
		for i, b := range data {
			v |= uint64(b) << (8 * i)
		}
		return []string{fmt.Sprintf("%s: 0x%x", name, v)}
	}
	return rows(name, data, fmt.Sprintf("(%d bytes)", len(data)))
}

// TablePrefix renders at most limit bytes of data like Table. When data is
// cut, the byte row ends with the shown and total lengths.
func TablePrefix(name string, data []byte, limit int) []string {
	if limit < 0 || len(data) <= limit {
		return Table(name, data)
	}
	return rows(name, data[:limit], fmt.Sprintf("(first %d of %d bytes)", limit, len(data)))
}

func rows(name string, data []byte, footer string) []string {
	var header, row strings.Builder
	header.WriteString(strings.Repeat(" ", len(name)+2))
	row.WriteString(name + ": ")
	for i, b := range data {
		fmt.Fprintf(&header, "%2d ", i)
		fmt.Fprintf(&row, "%02x ", b)
	}
	row.WriteString(footer)
	return []string{strings.TrimRight(header.String(), " "), row.String()}
}

// Unescape decodes key text where \NN (two hex digits) stands for one byte
// and \\ for a literal backslash, so "Hi\ff\33" yields 4 bytes.
func Unescape(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		if i+1 < len(s) && s[i+1] == '\\' {
			out = append(out, '\\')
			i++
			continue
		}
		if i+2 >= len(s) {
			return nil, fmt.Errorf("%w at offset %d", ErrBadEscape, i)
		}
		b, err := hex.DecodeString(s[i+1 : i+3])
		if err != nil {
			return nil, fmt.Errorf("%w at offset %d: %q", ErrBadEscape, i, s[i:i+3])
		}
		out = append(out, b[0])
		i += 2
	}
	return out, nil
}
