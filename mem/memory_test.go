package mem

import (
	"testing"

	"github.com/creativeprojects/folders/folder"
	"github.com/creativeprojects/folders/foldertest"
	"github.com/creativeprojects/folders/lib"
	"github.com/creativeprojects/folders/mailbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBackend(t *testing.T) {
	backend := New()
	backend.DebugLogger(lib.NewTestLogger(t, "mem"))

	err := foldertest.PrepareClient(backend)
	require.NoError(t, err)

	foldertest.RunTestsOnClient(t, backend)

	err = backend.Close()
	assert.NoError(t, err)
}

func TestEmptyBackendHasNoFolder(t *testing.T) {
	backend := New()
	list, err := backend.ListMailbox()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListKeepsCreationOrder(t *testing.T) {
	backend := New()
	for _, name := range []string{"Zulu", "Alpha", "Mike"} {
		err := backend.CreateMailbox(mailbox.Info{Delimiter: Delimiter, Name: name})
		require.NoError(t, err)
	}

	list, err := backend.ListMailbox()
	require.NoError(t, err)
	names := make([]string, len(list))
	for index, info := range list {
		names[index] = info.Name
	}
	assert.Equal(t, []string{"Zulu", "Alpha", "Mike"}, names)
}

func TestRenameToExistingMailbox(t *testing.T) {
	backend := New()
	require.NoError(t, backend.CreateMailbox(mailbox.Info{Delimiter: Delimiter, Name: "Work"}))
	require.NoError(t, backend.CreateMailbox(mailbox.Info{Delimiter: Delimiter, Name: "Personal"}))

	err := backend.RenameMailbox(
		mailbox.Info{Delimiter: Delimiter, Name: "Work"},
		mailbox.Info{Delimiter: Delimiter, Name: "Personal"},
	)
	assert.ErrorIs(t, err, folder.ErrExists)
}

func TestRenameKeepsPosition(t *testing.T) {
	backend := New()
	for _, name := range []string{"One", "Two", "Three"} {
		require.NoError(t, backend.CreateMailbox(mailbox.Info{Delimiter: Delimiter, Name: name}))
	}

	err := backend.RenameMailbox(
		mailbox.Info{Delimiter: Delimiter, Name: "Two"},
		mailbox.Info{Delimiter: Delimiter, Name: "Dos"},
	)
	require.NoError(t, err)

	list, err := backend.ListMailbox()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Dos", list[1].Name)
}

func TestMailboxWithDifferentDelimiter(t *testing.T) {
	backend := New()
	err := backend.CreateMailbox(mailbox.Info{Delimiter: "#", Name: "Path#Folder"})
	require.NoError(t, err)

	list, err := backend.ListMailbox()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Path.Folder", list[0].Name)
}
