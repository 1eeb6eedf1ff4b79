package mailbox

import "github.com/creativeprojects/folders/lib"

// Info identifies a folder on a backend.
type Info struct {
	// The server's path separator.
	Delimiter string
	// The folder name, including the names of its parents.
	Name string
}

// ChangeDelimiter returns the same folder expressed with a different path separator.
func ChangeDelimiter(info Info, delimiter string) Info {
	return Info{
		Delimiter: delimiter,
		Name:      lib.VerifyDelimiter(info.Name, info.Delimiter, delimiter),
	}
}
