// Package decode turns page bytes in a legacy single-byte encoding into
// UTF-8 text before HTML parsing.
package decode

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is the label of the encoding phrontistery.info pages are
// served in. The site does not declare it reliably, so it is fixed here
// rather than sniffed.
const DefaultEncoding = "windows-1252"

// ErrUnknownEncoding is returned for labels the WHATWG index does not know.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Decoder converts bytes of one fixed encoding to a UTF-8 string.
type Decoder struct {
	name string
	enc  encoding.Encoding
}

// New resolves label (e.g. "windows-1252", "latin1", "utf-8") through the
// WHATWG label index. An empty label selects DefaultEncoding.
func New(label string) (*Decoder, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultEncoding
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	return &Decoder{name: name, enc: enc}, nil
}

// Windows1252 returns the decoder for DefaultEncoding without a lookup.
func Windows1252() *Decoder {
	return &Decoder{name: DefaultEncoding, enc: charmap.Windows1252}
}

// Name is the canonical label of the encoding.
func (d *Decoder) Name() string { return d.name }

// Decode returns b as UTF-8. Every byte maps to some rune for single-byte
// encodings, so a wrong encoding choice garbles text without failing.
func (d *Decoder) Decode(b []byte) (string, error) {
	if d.enc == charmap.Windows1252 {
		return decodeWindows1252(b), nil
	}
	out, err := d.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", d.name, err)
	}
	return string(out), nil
}

// decodeWindows1252 follows the WHATWG index, where the five bytes left
// undefined by the code page (0x81, 0x8D, 0x8F, 0x90, 0x9D) map to the C1
// control with the same value. charmap yields U+FFFD for them.
func decodeWindows1252(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) + len(b)/2)
	for _, c := range b {
		r := charmap.Windows1252.DecodeByte(c)
		if r == utf8.RuneError {
			r = rune(c)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
