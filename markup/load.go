package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// ErrNotMarkup is returned for input recognized as some binary format.
var ErrNotMarkup = errors.New("not a markup file")

// Load reads file at path and returns its content as UTF-8 text. When enc is
// nil encoding is detected, otherwise enc is used unconditionally.
func Load(path string, enc encoding.Encoding) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read markup: %w", err)
	}
	text, err := Decode(data, enc)
	if err != nil {
		return "", fmt.Errorf("unable to load %q: %w", path, err)
	}
	return text, nil
}

// Decode converts raw markup bytes to UTF-8 text.
func Decode(data []byte, enc encoding.Encoding) (string, error) {
	if kind, _ := filetype.Match(data); kind != filetype.Unknown {
		return "", fmt.Errorf("%w: looks like %s (%s)", ErrNotMarkup, kind.Extension, kind.MIME.Value)
	}

	if enc == nil {
		enc, _ = DetectEncoding(data)
	}

	out, err := io.ReadAll(enc.NewDecoder().Reader(bytes.NewReader(data)))
	if err != nil {
		return "", fmt.Errorf("unable to decode markup: %w", err)
	}
	return strings.TrimPrefix(string(out), "\ufeff"), nil
}

// DetectEncoding returns encoding of the markup and its name. Byte order mark
// wins, then valid UTF-8, then whatever document declares in its head.
func DetectEncoding(data []byte) (encoding.Encoding, string) {
	e, name, certain := charset.DetermineEncoding(data, "text/html")
	if !certain && utf8.Valid(data) {
		return encoding.Nop, "utf-8"
	}
	return e, name
}
