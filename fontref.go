package fontkit

import "fmt"

// FontRef is a Font backed by a borrowed byte slice. The caller keeps
// ownership of the bytes and must not modify them for the lifetime of
// the FontRef; no copy is made.
//
// See FontData for the owning variant.
type FontRef struct {
	face
}

var _ Font = (*FontRef)(nil)

// NewFontRef parses a font from a borrowed byte slice.
// For collection files, select a sub-font with WithIndex.
//
// This is the only fallible entry point of the query surface: the
// returned error wraps ErrInvalidFont when the bytes cannot be parsed
// or the collection index is out of range. All queries on a
// successfully constructed font either succeed or report absence.
func NewFontRef(data []byte, opts ...Option) (*FontRef, error) {
	dec, err := parseDecoder(data, opts)
	if err != nil {
		return nil, err
	}
	return &FontRef{face: face{dec: dec}}, nil
}

// parseDecoder applies options and runs the selected decoder backend,
// normalizing failures onto ErrInvalidFont.
func parseDecoder(data []byte, opts []Option) (TableDecoder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	dec, err := getDecoder(cfg.decoderName).Parse(data, cfg.index)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	return dec, nil
}
