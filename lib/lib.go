package lib

import "strings"

// VerifyDelimiter translates the hierarchy separator of a folder name:
// a folder known as "Parent/Child" to a backend using "/" needs to become
// "Parent.Child" on a backend using ".".
// An empty delimiter on either side leaves the name untouched: a server
// with no mailbox yet reports no delimiter at all.
func VerifyDelimiter(name, existingDelimiter, expectedDelimiter string) string {
	if existingDelimiter == "" || expectedDelimiter == "" || existingDelimiter == expectedDelimiter {
		return name
	}
	name = strings.ReplaceAll(name, expectedDelimiter, "\\"+expectedDelimiter)
	// TODO: verify we're not replacing \existingDelimiter (escaped delimiter)
	name = strings.ReplaceAll(name, existingDelimiter, expectedDelimiter)
	return name
}
