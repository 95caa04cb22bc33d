package services

import "time"

// utcNow is the default service clock. Timestamps are truncated to the
// microsecond so values round-trip through every supported database.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
