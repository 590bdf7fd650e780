package loader

import "errors"

// Sentinel kinds for loader errors. A missing file is reported distinctly
// from everything else so callers can print a dedicated message.
var (
	ErrFileNotFound       = errors.New("dataset file not found")
	ErrUnsupportedFormat  = errors.New("unsupported dataset format")
	ErrUnsupportedCharset = errors.New("unsupported charset")
	ErrSheetNotFound      = errors.New("sheet not found")
	ErrParse              = errors.New("dataset parse failed")
)
