package fieldfmt

import (
	"fmt"
	"strings"
	"time"
)

const (
	nsPerDay    = 24 * 60 * 60 * int64(time.Second)
	nsPerHour   = 60 * 60 * int64(time.Second)
	nsPerMinute = 60 * int64(time.Second)
)

// renderInterval writes a duration in its canonical long form:
// "H:MM:SS", prefixed with "N day[s], " when the interval spans whole
// days, with a 6-digit fractional suffix when the sub-second component
// is nonzero. Negative intervals are floor-normalized so the day count
// carries the sign: -1s renders as "-1 day, 23:59:59".
func renderInterval(d time.Duration) string {
	ns := d.Nanoseconds()

	days := ns / nsPerDay
	if ns%nsPerDay < 0 {
		days--
	}
	rem := ns - days*nsPerDay

	hours := rem / nsPerHour
	rem %= nsPerHour
	minutes := rem / nsPerMinute
	rem %= nsPerMinute
	seconds := rem / int64(time.Second)
	micros := (rem % int64(time.Second)) / int64(time.Microsecond)

	var b strings.Builder
	if days != 0 {
		unit := "days"
		if days == 1 || days == -1 {
			unit = "day"
		}
		fmt.Fprintf(&b, "%d %s, ", days, unit)
	}
	fmt.Fprintf(&b, "%d:%02d:%02d", hours, minutes, seconds)
	if micros > 0 {
		fmt.Fprintf(&b, ".%06d", micros)
	}
	return b.String()
}
