package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// readCSV reads every record of a delimited text file, decoding it from the
// configured charset first.
func readCSV(path string, s settings) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	src, err := decoded(f, s.charset)
	if err != nil {
		return nil, err
	}

	r := csv.NewReader(src)
	r.Comma = s.comma
	r.FieldsPerRecord = -1 // ragged rows are handled by toRows
	r.TrimLeadingSpace = true
	r.LazyQuotes = true
	return r.ReadAll()
}

func decoded(r io.Reader, charset string) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCharset, charset)
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
