package mailbox

import "strings"

// Folders commonly provisioned by IMAP servers on a new account.
const (
	Inbox   = "INBOX"
	Drafts  = "Drafts"
	Sent    = "Sent"
	Trash   = "Trash"
	Junk    = "Junk"
	Archive = "Archive"
)

// DefaultFolders cannot be deleted through the folder service.
var DefaultFolders = []string{Inbox, Drafts, Sent, Trash, Junk, Archive}

// IsDefault tells if the name refers to one of the default folders.
// The comparison is case-insensitive: RFC 3501 mandates it for INBOX, and
// servers are inconsistent about the case of the other default folders.
func IsDefault(name string) bool {
	for _, folder := range DefaultFolders {
		if strings.EqualFold(name, folder) {
			return true
		}
	}
	return false
}
