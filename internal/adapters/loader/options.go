package loader

import "github.com/okian/fifastats/pkg/logger"

// Option applies a configuration option to a load.
type Option func(*settings)

type settings struct {
	charset string
	sheet   string
	comma   rune
	log     logger.Logger
}

func defaults() settings {
	return settings{
		charset: "utf-8",
		comma:   ',',
		log:     logger.Nop(),
	}
}

// WithCharset sets the text encoding of CSV input (any WHATWG label such as
// "utf-8", "windows-1251", "koi8-r"). Workbooks carry their own encoding.
func WithCharset(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.charset = name
		}
	}
}

// WithSheet selects a workbook sheet by name. Empty means the first sheet.
func WithSheet(name string) Option {
	return func(s *settings) {
		s.sheet = name
	}
}

// WithComma sets the CSV field delimiter.
func WithComma(r rune) Option {
	return func(s *settings) {
		if r != 0 {
			s.comma = r
		}
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}
