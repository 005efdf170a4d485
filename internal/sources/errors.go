package sources

import "errors"

// ErrUnavailable indicates a source is not configured or cannot be reached.
var ErrUnavailable = errors.New("sources: upstream unavailable")
