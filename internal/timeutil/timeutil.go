package timeutil

import "time"

// DateKeyLayout is the 8-digit day-bucket key (YYYYMMDD) the schedule feed
// publishes under.
const DateKeyLayout = "20060102"

// DefaultTimezone is the region the schedule upstream buckets its days by.
const DefaultTimezone = "Asia/Shanghai"

// DateKey formats a time as a YYYYMMDD key in the given location. A nil
// location leaves the time in its current location.
func DateKey(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYYMMDD key as midnight in the given location.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateKeyLayout, key, loc)
}

// ResolveLocation loads a named timezone, falling back to the schedule
// default and finally UTC when the name is unknown.
func ResolveLocation(name string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}
