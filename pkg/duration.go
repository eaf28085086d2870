package pkg

import (
	"strconv"
	"strings"
	"time"
)

type timeUnit struct {
	ShortName string
	Value     time.Duration
}

// Units from largest to smallest for formatting logic.
var units = []timeUnit{
	{ShortName: "d", Value: 24 * time.Hour},
	{ShortName: "h", Value: time.Hour},
	{ShortName: "m", Value: time.Minute},
	{ShortName: "s", Value: time.Second},
}

// SmartDurationFormat renders a duration compactly using at most two units,
// e.g. "1d4h" or "12s". Sub-second durations fall back to milliseconds.
func SmartDurationFormat(d time.Duration) string {
	if d == 0 {
		return "0"
	}
	if d < time.Second {
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	}

	var builder strings.Builder
	remaining := d
	parts := 0
	for _, unit := range units {
		if remaining < unit.Value {
			continue
		}
		count := remaining / unit.Value
		builder.WriteString(strconv.FormatInt(int64(count), 10))
		builder.WriteString(unit.ShortName)
		remaining %= unit.Value
		parts++
		if parts == 2 || remaining == 0 {
			break
		}
	}
	return builder.String()
}
