// Package pathtext reads newline-delimited path lists.
//
// Path lists come from tools like find(1) or dir exports and arrive in a
// handful of encodings; lines are decoded to UTF-8 before use. Blank lines
// and #-comments are skipped.
package pathtext

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	// scannerInitialBufferSize starts the line buffer; deep paths are long
	// but rarely exceed a few KB.
	scannerInitialBufferSize = 64 * 1024

	// scannerMaxLineSize caps a single line.
	scannerMaxLineSize = 1024 * 1024

	commentPrefix = "#"
)

// Encoding names accepted by ScanLines.
const (
	EncodingUTF8   = "utf-8"   // default; honors and strips any BOM
	EncodingUTF16  = "utf-16"  // little-endian unless a BOM says otherwise
	EncodingLatin1 = "latin-1" // Windows-1252, the usual dir-export encoding
)

func decoder(encoding string) (transform.Transformer, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8:
		// BOMOverride auto-detects UTF-16 inputs by their BOM and strips
		// a UTF-8 BOM; BOM-less input passes through untouched.
		return unicode.BOMOverride(transform.Nop), nil
	case EncodingUTF16:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case EncodingLatin1:
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("pathtext: unknown encoding %q", encoding)
	}
}

// ScanLines decodes r per encoding and calls fn once per path line,
// skipping blanks and comments. It stops on the first error fn returns.
func ScanLines(r io.Reader, encoding string, fn func(line string) error) error {
	dec, err := decoder(encoding)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(transform.NewReader(r, dec))
	buf := make([]byte, 0, scannerInitialBufferSize)
	scanner.Buffer(buf, scannerMaxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
