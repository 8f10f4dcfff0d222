package cli

import "errors"

// ErrUsage marks a command line that cannot be run: wrong argument count or
// an invalid flag value.
var ErrUsage = errors.New("usage error")
