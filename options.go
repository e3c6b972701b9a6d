package fontkit

// Option configures font construction.
type Option func(*config)

// config holds construction configuration.
type config struct {
	index       int
	decoderName string
}

// defaultConfig returns the default construction configuration.
func defaultConfig() config {
	return config{
		index:       0,
		decoderName: defaultDecoderName,
	}
}

// WithIndex selects a sub-font for collection (.ttc) files.
// The default is 0, which also matches plain single-font files.
// An out-of-range index fails construction with ErrInvalidFont.
func WithIndex(n int) Option {
	return func(c *config) {
		c.index = n
	}
}

// WithDecoder selects the table-decoding backend by registry name.
// The default is "ximage" (golang.org/x/image/font/sfnt); "gotext"
// (go-text/typesetting) also ships with the package, and custom
// backends can be added with RegisterDecoder. Unknown names fall back
// to the default backend.
func WithDecoder(name string) Option {
	return func(c *config) {
		c.decoderName = name
	}
}
