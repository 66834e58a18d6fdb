package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-study-planner/models"
)

// Field names accepted by [DraftValidator.Validate].
const (
	FieldTitle    = "title"
	FieldPriority = "priority"
	FieldType     = "type"
)

// DraftValidator validates task, note and event drafts.
type DraftValidator struct{}

func NewDraftValidator() Validator {
	return &DraftValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// drafts are accepted. With no fields every rule of the draft type runs.
func (v *DraftValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TodoDraft:
		return v.validateTodo(value, fields...)
	case *models.TodoDraft:
		return v.validateTodo(*value, fields...)

	case models.NoteDraft:
		return v.validateNote(value, fields...)
	case *models.NoteDraft:
		return v.validateNote(*value, fields...)

	case models.EventDraft:
		return v.validateEvent(value, fields...)
	case *models.EventDraft:
		return v.validateEvent(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DraftValidator) validateTodo(draft models.TodoDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(draft.Title) {
				return ErrEmptyTitle
			}
		case FieldPriority:
			if !slices.Contains(models.Priorities, draft.Priority) {
				return ErrInvalidPriority
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func (v *DraftValidator) validateNote(draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(draft.Title) {
				return ErrEmptyTitle
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func (v *DraftValidator) validateEvent(draft models.EventDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(draft.Title) {
				return ErrEmptyTitle
			}
		case FieldType:
			if !slices.Contains(models.EventTypes, draft.Type) {
				return ErrInvalidEventType
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
