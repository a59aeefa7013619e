package errors

import "errors"

// ErrStatusConflict signals a lost compare-and-swap: the request status
// was changed by a concurrent decision between read and write.
var ErrStatusConflict = errors.New("request status changed by a concurrent decision")
