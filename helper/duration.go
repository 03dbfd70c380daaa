package helper

import "time"

// DefaultDuration is used whenever a reservation carries no duration
// label or one we do not recognize.
const DefaultDuration = time.Hour

var durationTable = map[string]time.Duration{
	"15min": 15 * time.Minute,
	"30min": 30 * time.Minute,
	"45min": 45 * time.Minute,
	"1h":    time.Hour,
}

// ResolveDuration maps a duration label to its span. Unknown labels
// fall back to the default on purpose, they are not a validation error.
func ResolveDuration(label string) time.Duration {
	if d, ok := durationTable[label]; ok {
		return d
	}
	return DefaultDuration
}
