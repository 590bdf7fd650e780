// Package loader reads a country statistics table from disk and turns it
// into rows for the stats package. It is the only place that touches files.
//
// The first row of every source is the header; each following row becomes a
// stats.Row keyed by header name. Blank rows are skipped and short rows leave
// trailing fields missing, which the stats package coerces to zero.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/okian/fifastats/internal/domain/stats"
	"github.com/okian/fifastats/pkg/logger"
	"github.com/okian/fifastats/pkg/metrics"
)

// Format identifies a supported source format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

// DetectFormat picks a format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads the table at path and returns its data rows in file order.
func Load(ctx context.Context, path string, opts ...Option) ([]stats.Row, error) {
	s := defaults()
	for _, opt := range opts {
		opt(&s)
	}

	start := time.Now()
	format, err := DetectFormat(path)
	if err != nil {
		metrics.RecordDatasetLoad("unknown", "error")
		metrics.RecordErrorByComponent("loader", "unsupported_format")
		return nil, err
	}

	rows, err := load(ctx, format, path, s)
	metrics.RecordDatasetLoadDuration(float64(time.Since(start).Microseconds()) / 1000)
	if err != nil {
		metrics.RecordDatasetLoad(string(format), "error")
		metrics.RecordErrorByComponent("loader", errorType(err))
		s.log.Error(ctx, "dataset load failed",
			logger.String("path", path),
			logger.String("format", string(format)),
			logger.Error(err),
		)
		return nil, err
	}

	metrics.RecordDatasetLoad(string(format), "ok")
	metrics.UpdateDatasetRows(len(rows))
	s.log.Info(ctx, "dataset loaded",
		logger.String("path", path),
		logger.String("format", string(format)),
		logger.Int("rows", len(rows)),
	)
	return rows, nil
}

// LoadCollection loads path and builds a collection from its rows.
func LoadCollection(ctx context.Context, path string, opts ...Option) (*stats.Collection, error) {
	rows, err := Load(ctx, path, opts...)
	if err != nil {
		return nil, err
	}
	return stats.FromRows(rows), nil
}

func load(ctx context.Context, format Format, path string, s settings) ([]stats.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		table [][]string
		err   error
	)
	switch format {
	case FormatCSV:
		table, err = readCSV(path, s)
	case FormatXLSX:
		table, err = readXLSX(path, s)
	case FormatXLS:
		table, err = readXLS(path, s)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, classify(path, err)
	}
	return toRows(ctx, table, s)
}

// toRows maps every data row onto the header.
func toRows(ctx context.Context, table [][]string, s settings) ([]stats.Row, error) {
	if len(table) == 0 {
		return []stats.Row{}, nil
	}

	header := make([]string, len(table[0]))
	for i, h := range table[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	rows := make([]stats.Row, 0, len(table)-1)
	for n, rec := range table[1:] {
		if n%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if blank(rec) {
			continue
		}
		if len(rec) < len(header) {
			s.log.Debug(ctx, "short row", logger.Int("line", n+2), logger.Int("fields", len(rec)))
		}
		row := make(stats.Row, len(header))
		for i, key := range header {
			if key == "" || i >= len(rec) {
				continue
			}
			row[key] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// classify folds OS-level "does not exist" into ErrFileNotFound and leaves
// already classified errors alone; the rest becomes ErrParse.
func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	case errors.Is(err, ErrUnsupportedCharset), errors.Is(err, ErrSheetNotFound), errors.Is(err, ErrParse):
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrParse, path, err)
}

func errorType(err error) string {
	switch {
	case errors.Is(err, ErrFileNotFound):
		return "not_found"
	case errors.Is(err, ErrUnsupportedCharset):
		return "charset"
	case errors.Is(err, ErrSheetNotFound):
		return "sheet"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	}
	return "parse"
}
