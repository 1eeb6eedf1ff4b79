package folder

import "errors"

// The four error kinds returned by the service. Every failure from a folder
// operation wraps exactly one of them, so callers can match with errors.Is
// instead of parsing server response strings.
var (
	ErrNotFound   = errors.New("folder not found")
	ErrExists     = errors.New("folder already exists")
	ErrOperation  = errors.New("folder operation failed")
	ErrUnexpected = errors.New("unexpected folder error")
)
