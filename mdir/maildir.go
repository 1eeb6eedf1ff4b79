package mdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/lib"
	"github.com/creativeprojects/folders/mailbox"
	"github.com/emersion/go-maildir"
)

const Delimiter = "."

// Maildir manages folders as maildir directories under a common root.
type Maildir struct {
	root string
	log  lib.Logger
}

func New(root string) (*Maildir, error) {
	err := os.MkdirAll(root, 0700)
	if err != nil {
		return nil, err
	}
	return &Maildir{
		root: root,
		log:  &lib.NoLog{},
	}, nil
}

func (m *Maildir) Close() error {
	return nil
}

// DebugLogger sets a logger to send debug information to
func (m *Maildir) DebugLogger(logger lib.Logger) {
	if logger == nil {
		logger = &lib.NoLog{}
	}
	m.log = logger
}

func (m *Maildir) Root() string {
	return m.root
}

func (m *Maildir) Delimiter() string {
	return Delimiter
}

func (m *Maildir) CreateMailbox(info mailbox.Info) error {
	name := lib.VerifyDelimiter(info.Name, info.Delimiter, Delimiter)
	dirName := filepath.Join(m.root, name)
	if _, err := os.Stat(dirName); err == nil || errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %q", folder.ErrExists, name)
	}
	m.log.Printf("creating maildir %q", dirName)
	mbox := maildir.Dir(dirName)
	return mbox.Init()
}

func (m *Maildir) DeleteMailbox(info mailbox.Info) error {
	name := lib.VerifyDelimiter(info.Name, info.Delimiter, Delimiter)
	dirName := filepath.Join(m.root, name)
	if _, err := os.Stat(dirName); err != nil {
		return fmt.Errorf("%w: %q", folder.ErrNotFound, name)
	}
	m.log.Printf("deleting maildir %q", dirName)
	return os.RemoveAll(dirName)
}

func (m *Maildir) RenameMailbox(from, to mailbox.Info) error {
	fromName := lib.VerifyDelimiter(from.Name, from.Delimiter, Delimiter)
	toName := lib.VerifyDelimiter(to.Name, to.Delimiter, Delimiter)
	fromDir := filepath.Join(m.root, fromName)
	toDir := filepath.Join(m.root, toName)
	if _, err := os.Stat(fromDir); err != nil {
		return fmt.Errorf("%w: %q", folder.ErrNotFound, fromName)
	}
	if _, err := os.Stat(toDir); err == nil {
		return fmt.Errorf("%w: %q", folder.ErrExists, toName)
	}
	m.log.Printf("renaming maildir %q to %q", fromDir, toDir)
	return os.Rename(fromDir, toDir)
}

func (m *Maildir) ListMailbox() ([]mailbox.Info, error) {
	list := make([]mailbox.Info, 0)
	files, err := os.ReadDir(m.root)
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if !file.IsDir() {
			continue
		}
		list = append(list, mailbox.Info{
			Delimiter: Delimiter,
			Name:      file.Name(),
		})
	}
	return list, nil
}
