package stats

import "errors"

// Sentinel kinds for stats errors.
var (
	ErrUnknownMetric = errors.New("unknown metric")
)
