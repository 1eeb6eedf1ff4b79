package mem

import (
	"fmt"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/lib"
	"github.com/creativeprojects/folders/mailbox"
)

const Delimiter = "."

// Backend keeps its folders in memory. It is used as the "memory" account
// type and as a substitutable client in tests.
type Backend struct {
	// names in creation order: ListMailbox reports them back unsorted,
	// like an IMAP server would
	names []string
	log   lib.Logger
}

func New() *Backend {
	return &Backend{
		names: make([]string, 0, 10),
		log:   &lib.NoLog{},
	}
}

func (m *Backend) Close() error {
	m.names = m.names[:0]
	return nil
}

// DebugLogger sets a logger to send debug information to
func (m *Backend) DebugLogger(logger lib.Logger) {
	if logger == nil {
		logger = &lib.NoLog{}
	}
	m.log = logger
}

func (m *Backend) Delimiter() string {
	return Delimiter
}

func (m *Backend) CreateMailbox(info mailbox.Info) error {
	name := lib.VerifyDelimiter(info.Name, info.Delimiter, Delimiter)
	if m.exists(name) {
		return fmt.Errorf("%w: %q", folder.ErrExists, name)
	}
	m.log.Printf("creating mailbox %q", name)
	m.names = append(m.names, name)
	return nil
}

func (m *Backend) DeleteMailbox(info mailbox.Info) error {
	name := lib.VerifyDelimiter(info.Name, info.Delimiter, Delimiter)
	for index, existing := range m.names {
		if existing == name {
			m.log.Printf("deleting mailbox %q", name)
			m.names = append(m.names[:index], m.names[index+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", folder.ErrNotFound, name)
}

func (m *Backend) RenameMailbox(from, to mailbox.Info) error {
	fromName := lib.VerifyDelimiter(from.Name, from.Delimiter, Delimiter)
	toName := lib.VerifyDelimiter(to.Name, to.Delimiter, Delimiter)
	if m.exists(toName) {
		return fmt.Errorf("%w: %q", folder.ErrExists, toName)
	}
	for index, existing := range m.names {
		if existing == fromName {
			m.log.Printf("renaming mailbox %q to %q", fromName, toName)
			m.names[index] = toName
			return nil
		}
	}
	return fmt.Errorf("%w: %q", folder.ErrNotFound, fromName)
}

func (m *Backend) ListMailbox() ([]mailbox.Info, error) {
	list := make([]mailbox.Info, len(m.names))
	for index, name := range m.names {
		list[index] = mailbox.Info{
			Delimiter: Delimiter,
			Name:      name,
		}
	}
	return list, nil
}

func (m *Backend) exists(name string) bool {
	for _, existing := range m.names {
		if existing == name {
			return true
		}
	}
	return false
}
