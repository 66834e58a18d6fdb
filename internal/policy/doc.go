// Package policy holds the read-side ordering and filtering rules applied to
// tasks and notes before they are shown. Every function is pure: inputs are
// never modified and the result is a fresh slice.
package policy
