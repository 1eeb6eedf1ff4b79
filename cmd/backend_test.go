package cmd

import (
	"testing"

	"github.com/creativeprojects/folders/cfg"
	"github.com/creativeprojects/folders/foldertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackendFromConfig(t *testing.T) {
	backend, err := NewBackend(cfg.Account{Type: cfg.MEMORY})
	require.NoError(t, err)

	err = foldertest.PrepareClient(backend)
	require.NoError(t, err)

	foldertest.RunTestsOnClient(t, backend)

	err = backend.Close()
	assert.NoError(t, err)
}

func TestMaildirBackendFromConfig(t *testing.T) {
	backend, err := NewBackend(cfg.Account{Type: cfg.MAILDIR, Root: t.TempDir()})
	require.NoError(t, err)

	err = foldertest.PrepareClient(backend)
	require.NoError(t, err)

	foldertest.RunTestsOnClient(t, backend)

	err = backend.Close()
	assert.NoError(t, err)
}

func TestUnknownBackendFromConfig(t *testing.T) {
	_, err := NewBackend(cfg.Account{Type: "tape"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tape")
}

func TestOpenMissingAccount(t *testing.T) {
	config = &cfg.Config{Accounts: map[string]cfg.Account{}}
	_, _, err := openAccount("nowhere")
	assert.Error(t, err)
}

func TestOpenMemoryAccount(t *testing.T) {
	config = &cfg.Config{Accounts: map[string]cfg.Account{
		"scratch": {Type: cfg.MEMORY},
	}}
	backend, service, err := openAccount("scratch")
	require.NoError(t, err)
	defer backend.Close()

	folders, err := service.ListFolders()
	require.NoError(t, err)
	assert.Empty(t, folders)
}
