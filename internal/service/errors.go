package service

import "errors"

var (
	// ErrSessionActive is returned by Login while another user is loaded.
	ErrSessionActive = errors.New("another user session is active")
	// ErrEmptyUserID is returned by Login for a user without an id.
	ErrEmptyUserID = errors.New("user id is empty")
	// ErrLoadFailed is returned by Login when the stored snapshot could not
	// be read. The store stays unloaded.
	ErrLoadFailed = errors.New("failed to load user data")
	// ErrNoSession is returned by operations that need a signed-in user.
	ErrNoSession = errors.New("no user is signed in")
)
