// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// study planner screens.
//
// Msg* constants are the human-readable strings shown in the status line
// after an action, or next to a form field that failed to parse. Keeping them
// in one place keeps the wording consistent between screens.
package app

const (
	// MsgTaskAdded is shown after a task is created.
	MsgTaskAdded = "Task added"

	// MsgTaskUpdated is shown after a task is edited.
	MsgTaskUpdated = "Task updated"

	// MsgTaskDeleted is shown after a task is removed.
	MsgTaskDeleted = "Task deleted"

	// MsgNoteAdded is shown after a note is created.
	MsgNoteAdded = "Note added"

	// MsgNoteUpdated is shown after a note is edited.
	MsgNoteUpdated = "Note updated"

	// MsgNoteDeleted is shown after a note is removed.
	MsgNoteDeleted = "Note deleted"

	// MsgNoteCopied is shown after the note content is put on the clipboard.
	MsgNoteCopied = "Note copied to clipboard"

	// MsgEventAdded is shown after an event is created.
	MsgEventAdded = "Event added"

	// MsgEventDeleted is shown after an event is removed.
	MsgEventDeleted = "Event deleted"

	// MsgCalendarExported is followed by the path of the written file.
	MsgCalendarExported = "Calendar exported to "

	// MsgCalendarImported is a format string taking the number of imported
	// events and the path of the read file.
	MsgCalendarImported = "Imported %d events from %s"

	// MsgInvalidDueDate is shown when the due date field is not YYYY-MM-DD.
	MsgInvalidDueDate = "Due date must be YYYY-MM-DD"

	// MsgUserIDRequired is shown when the sign-in form has no user ID.
	MsgUserIDRequired = "User ID is required"

	// MsgUserIDHasSpaces is shown when the user ID contains whitespace.
	MsgUserIDHasSpaces = "User ID must not contain spaces"
)
