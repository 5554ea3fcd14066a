package dateutil

import (
	"fmt"
	"time"
)

// DisplayLayout is the human-facing timestamp form: 3-letter month,
// zero-padded day, 12-hour clock, uppercase AM/PM.
// Example: "Mar 05 2024 at 08:30 AM".
const DisplayLayout = "Jan 02 2006 at 03:04 PM"

// zonedLayouts carry their own offset; the parsed instant is converted
// to the display zone later.
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

// naiveLayouts carry no zone information. A naive timestamp is presumed
// to already be wall-clock time in the display zone, so it is parsed
// there rather than shifted.
var naiveLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDisplay renders t in the given location using DisplayLayout.
// A nil location means the local system zone.
func FormatDisplay(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DisplayLayout)
}

// ParseInLocation converts a timestamp string to a time.Time. RFC3339
// forms keep their embedded offset; zone-less forms are interpreted as
// wall-clock time in loc. A nil location means the local system zone.
func ParseInLocation(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// Parse converts a timestamp string to a time.Time, interpreting
// zone-less forms in the local system zone.
func Parse(s string) (time.Time, error) {
	return ParseInLocation(s, time.Local)
}
