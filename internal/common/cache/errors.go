package cache

import "errors"

// ErrCacheMiss is returned by Get when the key is absent; the solve-cache
// layer treats it as a signal to run the solver rather than a failure.
var ErrCacheMiss = errors.New("cache miss")
