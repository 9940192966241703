package async

import "errors"

// ErrTimeout is returned by RunTimeout when the deadline expires
// before every check has completed.
var ErrTimeout = errors.New("async: validation checks timed out")
