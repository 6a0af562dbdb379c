package helper

import "time"

const stampLayout = "02/01/2006 15:04:05"

// FormatStamp renders the admin-facing "last updated" text in the venue time zone.
func FormatStamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(stampLayout)
}
