package stats

import (
	"fmt"
	"strings"
)

// Metric names a quantity the collection can rank countries by.
type Metric string

// Supported ranking metrics.
const (
	MetricTitles     Metric = "titles"
	MetricWinRate    Metric = "win_rate"
	MetricEfficiency Metric = "efficiency"
)

// Metrics lists every supported metric in a stable order.
func Metrics() []Metric {
	return []Metric{MetricTitles, MetricWinRate, MetricEfficiency}
}

// ParseMetric resolves a metric name. Matching ignores case and accepts
// dashes in place of underscores.
func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	switch m {
	case MetricTitles, MetricWinRate, MetricEfficiency:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// value returns the metric for r, or false for an unknown metric.
func (m Metric) value(r Record) (float64, bool) {
	switch m {
	case MetricTitles:
		return float64(r.titles), true
	case MetricWinRate:
		return r.WinRatePercent(), true
	case MetricEfficiency:
		return r.EfficiencyIndex(), true
	}
	return 0, false
}

// Collection is an ordered, read-only sequence of records in input order.
//
// There is no index: every query is a linear scan. A dataset holds one row
// per country, a few hundred at most.
type Collection struct {
	records []Record
}

// NewCollection takes ownership of a copy of records; later changes to the
// caller's slice do not affect the collection.
func NewCollection(records []Record) *Collection {
	owned := make([]Record, len(records))
	copy(owned, records)
	return &Collection{records: owned}
}

// FromRows builds one record per row, keeping row order.
func FromRows(rows []Row) *Collection {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, NewRecord(row))
	}
	return &Collection{records: records}
}

// Len returns the number of records.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Records returns a copy of the records in input order.
func (c *Collection) Records() []Record {
	if c == nil {
		return nil
	}
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// FindByName returns the first record whose name equals name exactly.
// Duplicate names are not rejected at load time; the earliest one wins.
func (c *Collection) FindByName(name string) (Record, bool) {
	if c == nil {
		return Record{}, false
	}
	for _, r := range c.records {
		if r.name == name {
			return r, true
		}
	}
	return Record{}, false
}

// TopByTitles returns the record with the most titles.
func (c *Collection) TopByTitles() (Record, bool) {
	return c.TopBy(MetricTitles)
}

// TopByWinRate returns the record with the highest win rate.
func (c *Collection) TopByWinRate() (Record, bool) {
	return c.TopBy(MetricWinRate)
}

// MostEfficient returns the record with the highest efficiency index.
func (c *Collection) MostEfficient() (Record, bool) {
	return c.TopBy(MetricEfficiency)
}

// TopBy returns the record with the largest value of m. Ties go to the
// record that appears first. An empty collection or an unknown metric
// yields false.
func (c *Collection) TopBy(m Metric) (Record, bool) {
	if c.Len() == 0 {
		return Record{}, false
	}

	best, ok := m.value(c.records[0])
	if !ok {
		return Record{}, false
	}
	bestIdx := 0
	for i := 1; i < len(c.records); i++ {
		v, _ := m.value(c.records[i])
		// Strictly greater keeps the first occurrence on ties.
		if v > best {
			best = v
			bestIdx = i
		}
	}
	return c.records[bestIdx], true
}
