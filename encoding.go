package guuid

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// Style selects a textual notation for Encode.
type Style string

const (
	StyleDefault     Style = ""  // same as StyleDashed
	StyleDashed      Style = "D" // XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX
	StyleDashedLower Style = "d"
	StyleLong        Style = "L" // urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
	StyleBraces      Style = "B" // {XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}
	StyleBracesLower Style = "b"
	StyleParens      Style = "P" // (XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX)
	StyleParensLower Style = "p"
	StyleHex         Style = "N" // 32 hex digits, no separators
	StyleHexLower    Style = "n"
	StyleBase64      Style = "U" // URL-safe Base64, 22 characters
	StyleBase32      Style = "Z" // RFC 4648 Base32, 26 characters
	StyleBase32Lower Style = "z"
	StyleStruct      Style = "X" // {0xXXXXXXXX,0xXXXX,0xXXXX,{0xXX,...}}
)

const (
	urnPrefix        = "urn:uuid:"
	base64Len        = 22
	base32Len        = 26
	hexDigits        = 32
	hexAlphabetUpper = "0123456789ABCDEF"
)

var styles = []Style{
	StyleDashed, StyleDashedLower, StyleLong,
	StyleBraces, StyleBracesLower, StyleParens, StyleParensLower,
	StyleHex, StyleHexLower, StyleBase64,
	StyleBase32, StyleBase32Lower, StyleStruct,
}

// Styles returns every notation Encode supports.
func Styles() []Style {
	out := make([]Style, len(styles))
	copy(out, styles)
	return out
}

// ParseStyle validates a style tag. The empty tag selects StyleDashed.
func ParseStyle(s string) (Style, error) {
	if s == "" {
		return StyleDashed, nil
	}
	for _, st := range styles {
		if string(st) == s {
			return st, nil
		}
	}
	return StyleDefault, fmt.Errorf("guuid: unknown style %q", s)
}

var (
	base64Encoding = base64.RawURLEncoding.Strict()
	base32Encoding = base32.StdEncoding.WithPadding(base32.NoPadding)
	base32Aliases  = strings.NewReplacer("0", "O", "1", "I")
	base64Aliases  = strings.NewReplacer("+", "-", "/", "_")
)

// Encode renders u in the given notation. Unrecognized styles encode as
// StyleDashed.
func (u UUID) Encode(style Style) string {
	switch style {
	case StyleDashedLower:
		return strings.ToLower(u.dashed())
	case StyleLong:
		return urnPrefix + strings.ToLower(u.dashed())
	case StyleBraces:
		return "{" + u.dashed() + "}"
	case StyleBracesLower:
		return "{" + strings.ToLower(u.dashed()) + "}"
	case StyleParens:
		return "(" + u.dashed() + ")"
	case StyleParensLower:
		return "(" + strings.ToLower(u.dashed()) + ")"
	case StyleHex:
		t := u.RFC4122()
		return strings.ToUpper(hex.EncodeToString(t[:]))
	case StyleHexLower:
		t := u.RFC4122()
		return hex.EncodeToString(t[:])
	case StyleBase64:
		return base64Encoding.EncodeToString(u[:])
	case StyleBase32:
		return base32Encoding.EncodeToString(u[:])
	case StyleBase32Lower:
		return strings.ToLower(base32Encoding.EncodeToString(u[:]))
	case StyleStruct:
		return u.structDump()
	default:
		return u.dashed()
	}
}

// dashed returns the upper-case 8-4-4-4-12 form
func (u UUID) dashed() string {
	var buf [36]byte
	encodeHex(buf[:], u.RFC4122())
	return string(buf[:])
}

// encodeHex encodes text-ordered bytes to the dashed hex representation
func encodeHex(dst []byte, t [16]byte) {
	hexUpper(dst[0:8], t[0:4])
	dst[8] = '-'
	hexUpper(dst[9:13], t[4:6])
	dst[13] = '-'
	hexUpper(dst[14:18], t[6:8])
	dst[18] = '-'
	hexUpper(dst[19:23], t[8:10])
	dst[23] = '-'
	hexUpper(dst[24:36], t[10:16])
}

func hexUpper(dst, src []byte) {
	for i, v := range src {
		dst[i*2] = hexAlphabetUpper[v>>4]
		dst[i*2+1] = hexAlphabetUpper[v&0x0f]
	}
}

// structDump renders the four groups as source-embeddable hex literals.
func (u UUID) structDump() string {
	t := u.RFC4122()
	var sb strings.Builder
	sb.Grow(68)
	fmt.Fprintf(&sb, "{0x%02x%02x%02x%02x,0x%02x%02x,0x%02x%02x,{",
		t[0], t[1], t[2], t[3], t[4], t[5], t[6], t[7])
	for i := 8; i < 16; i++ {
		if i > 8 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "0x%02x", t[i])
	}
	sb.WriteString("}}")
	return sb.String()
}

// Parse parses a UUID from any supported notation, ignoring case and
// surrounding whitespace:
//   - XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX, optionally wrapped in {} or ()
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - 32 hex digits without separators
//   - {0xXXXXXXXX,0xXXXX,0xXXXX,{0xXX,0xXX,0xXX,0xXX,0xXX,0xXX,0xXX,0xXX}}
//   - 22 characters of URL-safe Base64, '+' and '/' accepted, up to two '=' ignored
//   - 26 characters of Base32, '0' read as 'O' and '1' as 'I'
//
// Base64 and Base32 text whose unused trailing bits are not zero is rejected,
// so every UUID has exactly one text in each of those notations.
//
// The empty string parses to Nil.
func Parse(s string) (UUID, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Nil, nil
	}

	if unpadded := strings.TrimRight(t, "="); len(unpadded) == base64Len && len(t)-len(unpadded) <= 2 {
		return parseBase64(s, unpadded)
	}
	if len(t) == base32Len {
		return parseBase32(s, t)
	}
	return parseHex(s, t)
}

func parseBase64(orig, s string) (UUID, error) {
	var uuid UUID
	data, err := base64Encoding.DecodeString(base64Aliases.Replace(s))
	if err != nil || len(data) != 16 {
		return Nil, &FormatError{Input: orig}
	}
	copy(uuid[:], data)
	return uuid, nil
}

func parseBase32(orig, s string) (UUID, error) {
	var uuid UUID
	canonical := base32Aliases.Replace(strings.ToUpper(s))
	data, err := base32Encoding.DecodeString(canonical)
	// the trailing bits of the last character must be zero
	if err != nil || len(data) != 16 || base32Encoding.EncodeToString(data) != canonical {
		return Nil, &FormatError{Input: orig}
	}
	copy(uuid[:], data)
	return uuid, nil
}

// parseHex strips every decoration the hex notations use and requires exactly
// 32 hex digits to remain.
func parseHex(orig, s string) (UUID, error) {
	if len(s) >= len(urnPrefix) && strings.EqualFold(s[:len(urnPrefix)], urnPrefix) {
		s = s[len(urnPrefix):]
	}

	var (
		digits [hexDigits]byte
		n      int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '0' && i+1 < len(s) && (s[i+1] == 'x' || s[i+1] == 'X'):
			i++
		case c == '{' || c == '}' || c == '(' || c == ')' || c == '-' || c == ',':
		case fromHexChar(c) >= 0:
			if n == hexDigits {
				return Nil, &FormatError{Input: orig}
			}
			digits[n] = c
			n++
		default:
			return Nil, &FormatError{Input: orig}
		}
	}
	if n != hexDigits {
		return Nil, &FormatError{Input: orig}
	}

	var t [16]byte
	for i := range t {
		t[i] = byte(fromHexChar(digits[2*i])<<4 | fromHexChar(digits[2*i+1]))
	}
	return FromRFC4122(t), nil
}

func fromHexChar(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	}
	return -1
}
