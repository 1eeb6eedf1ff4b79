package folder

import (
	"fmt"

	"github.com/creativeprojects/folders/lib"
	"github.com/creativeprojects/folders/mailbox"
)

// Client runs the folder commands against a backend: an IMAP server, a local
// maildir or an in-memory store. The client owns its own connection, the
// service never opens or closes it.
type Client interface {
	// Delimiter used to construct a path of folders with its children
	Delimiter() string
	CreateMailbox(info mailbox.Info) error
	DeleteMailbox(info mailbox.Info) error
	RenameMailbox(from, to mailbox.Info) error
	ListMailbox() ([]mailbox.Info, error)
}

// Service exposes the four folder operations over an injected Client and
// translates client failures into the folder error kinds. It keeps no state
// between calls and sends exactly one client command per operation.
type Service struct {
	client Client
	log    lib.Logger
}

func NewService(client Client) *Service {
	return &Service{
		client: client,
		log:    &lib.NoLog{},
	}
}

// DebugLogger sets a logger to send debug information to
func (s *Service) DebugLogger(logger lib.Logger) {
	if logger == nil {
		logger = &lib.NoLog{}
	}
	s.log = logger
}

// CreateFolder creates a new folder on the backend.
// It returns ErrExists when a folder with the same name is already present.
func (s *Service) CreateFolder(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	s.log.Printf("creating folder %q", name)
	if err := s.client.CreateMailbox(s.info(name)); err != nil {
		return fmt.Errorf("cannot create folder %q: %w", name, classify(err))
	}
	s.log.Printf("created folder %q", name)
	return nil
}

// DeleteFolder deletes a folder from the backend. It refuses to delete the
// default folders (INBOX, Drafts, Sent, Trash, Junk, Archive) and returns
// ErrNotFound when the folder does not exist.
func (s *Service) DeleteFolder(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	if mailbox.IsDefault(name) {
		return fmt.Errorf("%w: cannot delete default folder %q", ErrUnexpected, name)
	}
	s.log.Printf("deleting folder %q", name)
	if err := s.client.DeleteMailbox(s.info(name)); err != nil {
		return fmt.Errorf("cannot delete folder %q: %w", name, classify(err))
	}
	s.log.Printf("deleted folder %q", name)
	return nil
}

// RenameFolder renames an existing folder. It returns ErrNotFound when the
// old name does not exist, and ErrExists when the new name is already taken.
func (s *Service) RenameFolder(oldName, newName string) error {
	if err := checkName(oldName); err != nil {
		return err
	}
	if err := checkName(newName); err != nil {
		return err
	}
	s.log.Printf("renaming folder %q to %q", oldName, newName)
	if err := s.client.RenameMailbox(s.info(oldName), s.info(newName)); err != nil {
		return fmt.Errorf("cannot rename folder %q to %q: %w", oldName, newName, classify(err))
	}
	s.log.Printf("renamed folder %q to %q", oldName, newName)
	return nil
}

// ListFolders returns the folder names in the order reported by the backend.
func (s *Service) ListFolders() ([]string, error) {
	s.log.Print("listing folders")
	list, err := s.client.ListMailbox()
	if err != nil {
		return nil, fmt.Errorf("cannot list folders: %w", classify(err))
	}
	names := make([]string, len(list))
	for index, info := range list {
		names[index] = info.Name
	}
	s.log.Printf("listed %d folders", len(names))
	return names, nil
}

func (s *Service) info(name string) mailbox.Info {
	return mailbox.Info{
		Delimiter: s.client.Delimiter(),
		Name:      name,
	}
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty folder name", ErrUnexpected)
	}
	return nil
}
