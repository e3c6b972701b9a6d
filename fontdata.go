package fontkit

// FontData is a Font that owns its bytes: construction copies the
// input slice, so the caller's buffer can be reused or discarded
// immediately.
//
// See FontRef for the zero-copy variant.
type FontData struct {
	face
	data []byte
}

var _ Font = (*FontData)(nil)

// NewFontData parses a font from a private copy of the byte slice.
// For collection files, select a sub-font with WithIndex.
//
// Same error contract as NewFontRef: the returned error wraps
// ErrInvalidFont, and construction is the only fallible entry point.
func NewFontData(data []byte, opts ...Option) (*FontData, error) {
	owned := make([]byte, len(data))
	copy(owned, data)

	dec, err := parseDecoder(owned, opts)
	if err != nil {
		return nil, err
	}
	return &FontData{face: face{dec: dec}, data: owned}, nil
}

// Data returns the font's underlying bytes. The slice is owned by the
// FontData and must not be modified.
func (f *FontData) Data() []byte {
	return f.data
}
