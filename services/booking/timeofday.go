package booking

import (
	"fmt"
	"strings"
	"time"
)

var timeOfDayLayouts = []string{"15:04", "15:04:05"}

// parseTimeOfDay turns "HH:MM" (or "HH:MM:SS") into an offset from midnight.
func parseTimeOfDay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeOfDayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a time of day", ErrInvalidTime, s)
}

// window is the [start, end) span of a booking within its day. A booking
// without an end time occupies only its start instant.
type window struct {
	start, end time.Duration
}

func bookingWindow(startTime, endTime string) (window, error) {
	start, err := parseTimeOfDay(startTime)
	if err != nil {
		return window{}, fmt.Errorf("startTime: %w", err)
	}
	if strings.TrimSpace(endTime) == "" {
		return window{start: start, end: start}, nil
	}
	end, err := parseTimeOfDay(endTime)
	if err != nil {
		return window{}, fmt.Errorf("endTime: %w", err)
	}
	if end <= start {
		return window{}, fmt.Errorf("%w: endTime %s is not after startTime %s", ErrInvalidTime, endTime, startTime)
	}
	return window{start: start, end: end}, nil
}

func (w window) overlaps(o window) bool {
	if w.start == o.start {
		return true
	}
	return w.start < o.end && o.start < w.end
}
