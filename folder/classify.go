package folder

import (
	"errors"
	"fmt"
	"strings"
)

// Response codes from RFC 5530, plus the spellings used by servers predating
// it (Dovecot, Courier, the go-imap memory backend).
var (
	notFoundPatterns = []string{
		"nonexistent",
		"no such mailbox",
		"does not exist",
		"doesn't exist",
		"not found",
	}
	existsPatterns = []string{
		"alreadyexists",
		"already exists",
	}
)

// classify matches a client error to one of the error kinds.
// An error already carrying a kind is returned unchanged, so backends can
// classify their own failures when they know better than the response text.
// Everything unrecognized becomes ErrOperation: the failure is surfaced to
// the caller either way.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrExists) ||
		errors.Is(err, ErrOperation) ||
		errors.Is(err, ErrUnexpected) {
		return err
	}
	text := strings.ToLower(err.Error())
	for _, pattern := range existsPatterns {
		if strings.Contains(text, pattern) {
			return wrap(ErrExists, err)
		}
	}
	for _, pattern := range notFoundPatterns {
		if strings.Contains(text, pattern) {
			return wrap(ErrNotFound, err)
		}
	}
	return wrap(ErrOperation, err)
}

func wrap(kind, err error) error {
	return fmt.Errorf("%w: %s", kind, err)
}
