package feed

import "errors"

// ErrNotConnected is returned by Start when Connect has not succeeded
// yet.
var ErrNotConnected = errors.New("feed: not connected")
