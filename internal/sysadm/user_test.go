package sysadm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	stdin string
	name  string
	args  []string
}

type fakeRunner struct {
	calls   []call
	outputs map[string][]byte
	failOn  string
}

func (r *fakeRunner) Run(ctx context.Context, stdin, name string, args ...string) ([]byte, error) {
	r.calls = append(r.calls, call{stdin: stdin, name: name, args: args})
	if r.failOn == name {
		return nil, errors.New(name + " failed")
	}
	return r.outputs[name], nil
}

func newTestManager(t *testing.T, runner *fakeRunner) *Manager {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewManager(runner, t.TempDir(), logger)
	m.newID = func() string { return "feedface" }
	return m
}

func TestAddUser(t *testing.T) {
	runner := &fakeRunner{}
	m := newTestManager(t, runner)

	err := m.AddUser(context.Background(), AddUserOptions{
		Username:   "bob",
		FullName:   "Bob Smith",
		Password:   "hunter2",
		CreateHome: true,
	})
	require.NoError(t, err)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, "useradd", runner.calls[0].name)
	assert.Equal(t, []string{"-m", "-c", "Bob Smith", "bob"}, runner.calls[0].args)
	assert.Empty(t, runner.calls[0].stdin)

	// The password travels on stdin, never on argv.
	assert.Equal(t, "chpasswd", runner.calls[1].name)
	assert.Empty(t, runner.calls[1].args)
	assert.Equal(t, "bob:hunter2\n", runner.calls[1].stdin)
}

func TestAddUserWithoutPasswordOrHome(t *testing.T) {
	runner := &fakeRunner{}
	m := newTestManager(t, runner)

	err := m.AddUser(context.Background(), AddUserOptions{Username: "deploy"})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"deploy"}, runner.calls[0].args)
}

func TestAddUserRequiresUsername(t *testing.T) {
	m := newTestManager(t, &fakeRunner{})
	err := m.AddUser(context.Background(), AddUserOptions{})
	assert.Error(t, err)
}

func TestDeleteUser(t *testing.T) {
	runner := &fakeRunner{}
	m := newTestManager(t, runner)

	archive, err := m.DeleteUser(context.Background(), DeleteUserOptions{Username: "bob"})
	require.NoError(t, err)

	assert.Empty(t, archive)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "userdel", runner.calls[0].name)
	assert.Equal(t, []string{"bob"}, runner.calls[0].args)
}

func TestDeleteUserRemoveHome(t *testing.T) {
	runner := &fakeRunner{}
	m := newTestManager(t, runner)

	_, err := m.DeleteUser(context.Background(), DeleteUserOptions{Username: "bob", RemoveHome: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"-r", "bob"}, runner.calls[0].args)
}

func TestDeleteUserArchivesHomeFirst(t *testing.T) {
	runner := &fakeRunner{}
	m := newTestManager(t, runner)

	archive, err := m.DeleteUser(context.Background(), DeleteUserOptions{
		Username:    "bob",
		RemoveHome:  true,
		ArchiveHome: true,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(m.archiveDir, "bob-feedface.tar.gz"), archive)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, "tar", runner.calls[0].name)
	assert.Equal(t, []string{"-czf", archive, "-C", "/home", "bob"}, runner.calls[0].args)
	assert.Equal(t, "userdel", runner.calls[1].name)
}

func TestDeleteUserArchiveFailureStopsDeletion(t *testing.T) {
	runner := &fakeRunner{failOn: "tar"}
	m := newTestManager(t, runner)

	_, err := m.DeleteUser(context.Background(), DeleteUserOptions{Username: "bob", ArchiveHome: true})
	require.Error(t, err)

	// userdel must not run when the archive step failed.
	for _, c := range runner.calls {
		assert.NotEqual(t, "userdel", c.name)
	}
}

func TestUserInfo(t *testing.T) {
	runner := &fakeRunner{outputs: map[string][]byte{
		"id":     []byte("uid=1001(bob) gid=1001(bob) groups=1001(bob)\n"),
		"getent": []byte("bob:x:1001:1001:Bob Smith:/home/bob:/bin/bash\n"),
	}}
	m := newTestManager(t, runner)

	out, err := m.UserInfo(context.Background(), "bob")
	require.NoError(t, err)

	assert.Contains(t, out, "uid=1001(bob)")
	assert.Contains(t, out, "/home/bob:/bin/bash")

	require.Len(t, runner.calls, 2)
	assert.Equal(t, []string{"bob"}, runner.calls[0].args)
	assert.Equal(t, []string{"passwd", "bob"}, runner.calls[1].args)
}

func TestUserInfoUnknownUser(t *testing.T) {
	runner := &fakeRunner{failOn: "id"}
	m := newTestManager(t, runner)

	_, err := m.UserInfo(context.Background(), "ghost")
	assert.Error(t, err)
}
