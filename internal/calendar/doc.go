// Package calendar answers date questions about calendar events: which events
// touch a given day, which ones are coming up, how a month grid is laid out.
// It also converts events to and from iCalendar documents.
//
// Days are cut in the location of the date passed in; event instants are
// compared as instants, so events stored in UTC land on the right local day.
package calendar
