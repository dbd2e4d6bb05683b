package book

import "errors"

// Error taxonomy for the Matcher. The Order Book itself never returns an
// error from Add/Cancel — matching is a total function over a valid book
// state (§7): invalid or non-admissible orders are silently dropped
// rather than rejected, and InvalidOrder is surfaced upstream of this
// package, by the parser, before submission.
var (
	// ErrShutdown is returned by Submit/SubmitCancel once Stop has
	// completed, and by Start after Stop. The Matcher is not reusable
	// after Stop.
	ErrShutdown = errors.New("matcher is shut down")

	// ErrAlreadyRunning is returned by Start if the Matcher's worker
	// goroutine is already active.
	ErrAlreadyRunning = errors.New("matcher is already running")
)
