package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle       = errors.New("title is required")
	ErrInvalidPriority  = errors.New("priority must be low, medium or high")
	ErrInvalidEventType = errors.New("type must be assignment, exam, meeting or other")
)
