// Package mappers converts between domain aggregates and persistence
// models. Timestamps are stored as milli-epoch integers.
package mappers

import "time"

func millisToTime(millis int64) time.Time {
	return time.UnixMilli(millis)
}
