package stream

import "strings"

// ContentDisposition builds an inline Content-Disposition value carrying both an ASCII
// fallback filename and the RFC 5987 UTF-8 form. CR, LF, double quote and backslash are
// dropped from the name first.
func ContentDisposition(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', '"', '\\':
			return -1
		}
		return r
	}, name)
	if sanitized == "" {
		return "inline"
	}

	fallback := strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return '_'
		}
		return r
	}, sanitized)

	return `inline; filename="` + fallback + `"; filename*=UTF-8''` + encodeExtValue(sanitized)
}

const upperHex = "0123456789ABCDEF"

// encodeExtValue percent-encodes every byte outside the RFC 5987 attr-char set
func encodeExtValue(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

func isAttrChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '&', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}
