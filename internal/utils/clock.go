// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "time"

// ISO8601 is the layout used for every persisted timestamp.
const ISO8601 = time.RFC3339Nano

// Clock is the source of the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC without the monotonic reading, so
// values compare equal after a JSON round trip.
type SystemClock struct{}

// Now implements [Clock].
func (SystemClock) Now() time.Time {
	return time.Now().UTC().Round(0)
}

// FormatTimestamp renders t as an ISO-8601 string in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(ISO8601)
}
