package interval

import (
	"fmt"
	"sort"
	"strings"
)

const secondsPerDay = 86400

// Calendar approximations, not exact Gregorian math. The provider samples on
// these grids, so the values only feed pagination estimates.
var durations = map[string]int64{
	"1d":  secondsPerDay,
	"5d":  5 * secondsPerDay,
	"1wk": 7 * secondsPerDay,
	"1mo": 30 * secondsPerDay,
	"3mo": 90 * secondsPerDay,
}

var descriptions = map[string]string{
	"1d":  "1 day interval",
	"5d":  "5 day interval",
	"1wk": "1 week interval",
	"1mo": "1 month interval",
	"3mo": "3 month interval",
}

// Seconds returns the duration of one sample at the given interval label.
// Unknown labels return 0, which is unusable for pagination math; callers
// must Validate the label first.
func Seconds(label string) int64 {
	return durations[label]
}

// Supported returns the supported interval labels in sorted order.
func Supported() []string {
	labels := make([]string, 0, len(durations))
	for label := range durations {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// InvalidIntervalError reports an interval label outside the supported set.
type InvalidIntervalError struct {
	Label     string
	Supported []string
}

// Error implements the error interface
func (e *InvalidIntervalError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "interval %q is not valid, you should use one of the following valid intervals:\n", e.Label)
	for _, label := range e.Supported {
		fmt.Fprintf(&sb, "%s: %s\n", label, descriptions[label])
	}
	return sb.String()
}

// Validate checks that label is exactly one of the supported intervals.
// The returned error carries the supported list for user display.
func Validate(label string) error {
	if _, ok := durations[label]; !ok {
		return &InvalidIntervalError{
			Label:     label,
			Supported: Supported(),
		}
	}
	return nil
}
