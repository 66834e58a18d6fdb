package calendar

import "errors"

var (
	// ErrICSParse is returned when an iCalendar document cannot be read.
	ErrICSParse = errors.New("cannot parse iCalendar document")
	// ErrInvalidClock is returned for a time of day not in HH:MM form.
	ErrInvalidClock = errors.New("time of day must be HH:MM")
)
