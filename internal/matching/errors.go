package matching

import "github.com/pkg/errors"

// ErrInvalidInput marks a violated data invariant, e.g. missing
// coordinates or an inverted salary range. It is returned before any
// scoring math runs and is never swallowed by the matchers; callers
// decide whether to hide the listing or show "match unavailable".
var ErrInvalidInput = errors.New("invalid input")
