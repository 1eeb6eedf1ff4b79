package folder

import (
	"errors"
	"testing"

	"github.com/creativeprojects/folders/lib"
	"github.com/creativeprojects/folders/mailbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient responds to every command with the configured error, and counts
// the commands it received.
type fakeClient struct {
	list  []mailbox.Info
	err   error
	calls int
}

func (c *fakeClient) Delimiter() string { return "/" }

func (c *fakeClient) CreateMailbox(info mailbox.Info) error {
	c.calls++
	return c.err
}

func (c *fakeClient) DeleteMailbox(info mailbox.Info) error {
	c.calls++
	return c.err
}

func (c *fakeClient) RenameMailbox(from, to mailbox.Info) error {
	c.calls++
	return c.err
}

func (c *fakeClient) ListMailbox() ([]mailbox.Info, error) {
	c.calls++
	return c.list, c.err
}

func newService(t *testing.T, client Client) *Service {
	t.Helper()
	service := NewService(client)
	service.DebugLogger(lib.NewTestLogger(t, "service"))
	return service
}

func TestCreateFolder(t *testing.T) {
	client := &fakeClient{}
	service := newService(t, client)

	err := service.CreateFolder("Work")
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)
}

func TestCreateExistingFolder(t *testing.T) {
	client := &fakeClient{err: errors.New("[ALREADYEXISTS] duplicate mailbox")}
	service := newService(t, client)

	err := service.CreateFolder("Work")
	assert.ErrorIs(t, err, ErrExists)
	assert.Contains(t, err.Error(), "Work")
}

func TestDeleteMissingFolder(t *testing.T) {
	client := &fakeClient{err: errors.New("no such mailbox")}
	service := newService(t, client)

	err := service.DeleteFolder("Work")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteDefaultFolder(t *testing.T) {
	client := &fakeClient{}
	service := newService(t, client)

	for _, name := range mailbox.DefaultFolders {
		err := service.DeleteFolder(name)
		assert.ErrorIs(t, err, ErrUnexpected)
	}
	// the commands were refused before reaching the client
	assert.Equal(t, 0, client.calls)
}

func TestRenameMissingFolder(t *testing.T) {
	client := &fakeClient{err: errors.New("[NONEXISTENT] no mailbox at that name")}
	service := newService(t, client)

	err := service.RenameFolder("Work", "Personal")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRenameToExistingFolder(t *testing.T) {
	client := &fakeClient{err: errors.New("a mailbox with that name already exists")}
	service := newService(t, client)

	err := service.RenameFolder("Work", "Personal")
	assert.ErrorIs(t, err, ErrExists)
}

func TestUnclassifiedFailureIsNotSwallowed(t *testing.T) {
	cause := errors.New("connection reset by peer")
	client := &fakeClient{err: cause}
	service := newService(t, client)

	err := service.CreateFolder("Work")
	assert.ErrorIs(t, err, ErrOperation)
	assert.Contains(t, err.Error(), cause.Error())

	err = service.DeleteFolder("Work")
	assert.ErrorIs(t, err, ErrOperation)

	err = service.RenameFolder("Work", "Personal")
	assert.ErrorIs(t, err, ErrOperation)

	_, err = service.ListFolders()
	assert.ErrorIs(t, err, ErrOperation)
}

func TestEmptyFolderNames(t *testing.T) {
	client := &fakeClient{}
	service := newService(t, client)

	assert.ErrorIs(t, service.CreateFolder(""), ErrUnexpected)
	assert.ErrorIs(t, service.DeleteFolder(""), ErrUnexpected)
	assert.ErrorIs(t, service.RenameFolder("", "Personal"), ErrUnexpected)
	assert.ErrorIs(t, service.RenameFolder("Work", ""), ErrUnexpected)
	assert.Equal(t, 0, client.calls)
}

func TestListFolders(t *testing.T) {
	client := &fakeClient{list: []mailbox.Info{
		{Delimiter: "/", Name: "INBOX"},
		{Delimiter: "/", Name: "Work"},
		{Delimiter: "/", Name: "Work/Reports"},
	}}
	service := newService(t, client)

	names, err := service.ListFolders()
	require.NoError(t, err)
	// same names, same order as reported by the client
	assert.Equal(t, []string{"INBOX", "Work", "Work/Reports"}, names)
}

func TestListNoFolders(t *testing.T) {
	client := &fakeClient{}
	service := newService(t, client)

	names, err := service.ListFolders()
	require.NoError(t, err)
	assert.Empty(t, names)
}
