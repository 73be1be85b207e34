package rawtext

import "time"

// iso8601Micro is the layout for ISO 8601 date and time strings with
// microsecond precision and an explicit UTC offset.
const iso8601Micro = "2006-01-02T15:04:05.000000-07:00"

// copyToISO8601 materializes a POSIX microsecond timestamp as an ISO 8601
// string normalized to UTC, e.g. "2024-01-01T00:00:00.000000+00:00".
func copyToISO8601(micro int64) string {
	return time.UnixMicro(micro).UTC().Format(iso8601Micro)
}
