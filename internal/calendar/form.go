package calendar

import (
	"fmt"
	"strings"
	"time"
)

// EventTimes combines date with the start and end times of day given as
// HH:MM. When end is not after start the event is taken to run past
// midnight and end moves to the next day.
func EventTimes(date time.Time, start, end string) (time.Time, time.Time, error) {
	startAt, err := atClock(date, start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endAt, err := atClock(date, end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !endAt.After(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
	}
	return startAt, endAt, nil
}

func atClock(date time.Time, hhmm string) (time.Time, error) {
	clock, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidClock, hhmm)
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, clock.Hour(), clock.Minute(), 0, 0, date.Location()), nil
}
