package driver

import "errors"

// ErrInitFailure indicates the underlying browser resource failed to
// construct. Always fatal to the current call; never retried here.
var ErrInitFailure = errors.New("driver: initialization failed")
