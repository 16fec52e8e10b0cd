package lexer

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeSource strips a UTF-8, UTF-16LE, or UTF-16BE byte order mark and
// returns UTF-8 text. Input without a recognized BOM is assumed to already be UTF-8 (§6.4).
func decodeSource(data []byte) string {
	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return string(data[3:])
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return decodeUTF16(data, unicode.LittleEndian)
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return decodeUTF16(data, unicode.BigEndian)
	default:
		return string(data)
	}
}

func decodeUTF16(data []byte, endianness unicode.Endianness) string {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return string(data)
	}
	out = bytes.TrimPrefix(out, []byte{0xEF, 0xBB, 0xBF})
	return string(bytes.TrimPrefix(out, []byte("\ufeff")))
}
