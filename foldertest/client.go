package foldertest

import (
	"testing"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/lib"
	"github.com/creativeprojects/folders/mailbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PrepareClient makes sure the backend starts with an INBOX, like a freshly
// provisioned IMAP account would. IMAP backends already have one.
func PrepareClient(client folder.Client) error {
	existing, err := client.ListMailbox()
	if err != nil {
		return err
	}
	if folderExists(mailbox.Inbox, existing) {
		return nil
	}
	return client.CreateMailbox(mailbox.Info{
		Delimiter: client.Delimiter(),
		Name:      mailbox.Inbox,
	})
}

// RunTestsOnClient is the unit tests runner called by the concrete
// implementations of folder.Client. It drives a folder.Service over the
// client, so classification is verified against the real backend errors.
// The subtests depend on each other and run in order.
func RunTestsOnClient(t *testing.T, client folder.Client) {
	require.NotNil(t, client)

	service := folder.NewService(client)
	service.DebugLogger(lib.NewTestLogger(t, "service"))

	t.Run("ListFolders", func(t *testing.T) {
		list, err := service.ListFolders()
		require.NoError(t, err)
		assert.Contains(t, list, mailbox.Inbox)
	})

	t.Run("CreateFolder", func(t *testing.T) {
		err := service.CreateFolder("Work")
		require.NoError(t, err)

		list, err := service.ListFolders()
		require.NoError(t, err)
		assert.Contains(t, list, "Work")
	})

	t.Run("CreateExistingFolder", func(t *testing.T) {
		err := service.CreateFolder("Work")
		assert.ErrorIs(t, err, folder.ErrExists)
	})

	t.Run("CreateFolderInsideFolder", func(t *testing.T) {
		name := "Path" + client.Delimiter() + "Folder"
		err := service.CreateFolder(name)
		require.NoError(t, err)

		list, err := service.ListFolders()
		require.NoError(t, err)
		assert.Contains(t, list, name)

		err = service.DeleteFolder(name)
		require.NoError(t, err)
		// IMAP servers may have created the parent on the way
		_ = service.DeleteFolder("Path")
	})

	t.Run("RenameFolder", func(t *testing.T) {
		err := service.RenameFolder("Work", "Personal")
		require.NoError(t, err)

		list, err := service.ListFolders()
		require.NoError(t, err)
		assert.Contains(t, list, "Personal")
		assert.NotContains(t, list, "Work")
	})

	t.Run("RenameMissingFolder", func(t *testing.T) {
		err := service.RenameFolder("No folder at that name", "Anything")
		assert.ErrorIs(t, err, folder.ErrNotFound)
	})

	t.Run("DeleteMissingFolder", func(t *testing.T) {
		err := service.DeleteFolder("No folder at that name")
		assert.ErrorIs(t, err, folder.ErrNotFound)
	})

	t.Run("DeleteDefaultFolder", func(t *testing.T) {
		err := service.DeleteFolder(mailbox.Inbox)
		assert.ErrorIs(t, err, folder.ErrUnexpected)

		list, err := service.ListFolders()
		require.NoError(t, err)
		assert.Contains(t, list, mailbox.Inbox)
	})

	t.Run("EmptyFolderName", func(t *testing.T) {
		err := service.CreateFolder("")
		assert.ErrorIs(t, err, folder.ErrUnexpected)
	})

	t.Run("DeleteFolder", func(t *testing.T) {
		err := service.DeleteFolder("Personal")
		require.NoError(t, err)

		list, err := service.ListFolders()
		require.NoError(t, err)
		assert.NotContains(t, list, "Personal")
	})
}

func folderExists(name string, in []mailbox.Info) bool {
	for _, info := range in {
		if info.Name == name {
			return true
		}
	}
	return false
}
