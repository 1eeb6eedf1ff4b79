package cmd

import (
	"fmt"
	"log"

	"github.com/creativeprojects/folders/cfg"
	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/lib"
	"github.com/creativeprojects/folders/mdir"
	"github.com/creativeprojects/folders/mem"
	"github.com/creativeprojects/folders/remote"
)

// Backend is a folder.Client the command line can open and close on demand
type Backend interface {
	folder.Client
	// DebugLogger sets a logger to send debug information to
	DebugLogger(logger lib.Logger)
	// Close the backend
	Close() error
}

// verify interface
var (
	_ Backend = &remote.Imap{}
	_ Backend = &mdir.Maildir{}
	_ Backend = &mem.Backend{}
)

func NewBackend(account cfg.Account) (Backend, error) {
	switch account.Type {
	case cfg.IMAP:
		return remote.NewImap(remote.Config{
			ServerURL:           account.ServerURL,
			Username:            account.Username,
			Password:            account.Password,
			NoTLS:               account.NoTLS,
			SkipTLSVerification: account.SkipTLSVerification,
			CommandsPerSecond:   account.CommandsPerSecond,
		})
	case cfg.MAILDIR:
		return mdir.New(account.Root)
	case cfg.MEMORY:
		return mem.New(), nil
	default:
		return nil, fmt.Errorf("unsupported account type %q", account.Type)
	}
}

// openAccount creates the backend and the folder service for a configured account
func openAccount(name string) (Backend, *folder.Service, error) {
	account, ok := config.Accounts[name]
	if !ok {
		return nil, nil, fmt.Errorf("account not found: %s", name)
	}
	backend, err := NewBackend(account)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open backend: %w", err)
	}
	service := folder.NewService(backend)
	if global.verbose {
		backend.DebugLogger(log.Default())
		service.DebugLogger(log.Default())
	}
	return backend, service, nil
}
