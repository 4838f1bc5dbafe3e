package source

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode turns raw file bytes into UTF-8. A UTF-8 BOM is dropped; UTF-16
// input (detected by its BOM) is transcoded. Line endings are left alone:
// the lexer treats '\r' as whitespace.
func Decode(raw []byte) ([]byte, FileFlags, error) {
	var flags FileFlags
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return raw[len(bomUTF8):], FileHadBOM, nil
	case bytes.HasPrefix(raw, bomUTF16LE), bytes.HasPrefix(raw, bomUTF16BE):
		flags = FileHadBOM | FileTranscoded
	default:
		return raw, 0, nil
	}

	// BOMOverride выбирает порядок байт по BOM и срезает его
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return nil, 0, fmt.Errorf("decode utf-16: %w", err)
	}
	return out, flags, nil
}
