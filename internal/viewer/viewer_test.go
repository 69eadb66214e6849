package viewer

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func found(name string) (string, error) { return "/usr/bin/" + name, nil }

func missing(string) (string, error) { return "", exec.ErrNotFound }

func tempPDF(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "123.pdf")
	require.NoError(t, os.WriteFile(p, []byte("%PDF"), 0o644))
	return p
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos string
		name string
		args []string
	}{
		{OSDarwin, "open", []string{"/d/1.pdf"}},
		{OSWindows, "cmd", []string{"/c", "start", "", "/d/1.pdf"}},
		{OSLinux, "xdg-open", []string{"/d/1.pdf"}},
		{OSAndroid, "am", []string{"start", "-a", "android.intent.action.VIEW", "-d", "file:///d/1.pdf", "-t", "application/pdf"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, ok := newLauncher(tt.goos, found, nil).command("/d/1.pdf")
			assert.True(t, ok)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.args, args)
		})
	}

	_, _, ok := newLauncher("plan9", found, nil).command("/d/1.pdf")
	assert.False(t, ok)
}

func TestAvailable(t *testing.T) {
	assert.True(t, newLauncher(OSLinux, found, nil).Available())
	assert.False(t, newLauncher(OSLinux, missing, nil).Available())
	assert.False(t, newLauncher("js", found, nil).Available())
}

func TestOpen_Unsupported(t *testing.T) {
	l := newLauncher(OSLinux, missing, func(*exec.Cmd) error {
		t.Fatal("must not start a process")
		return nil
	})

	err := l.Open(context.Background(), tempPDF(t))

	assert.ErrorIs(t, err, ErrUnsupportedViewer)
}

func TestOpen_StartsOpener(t *testing.T) {
	var started *exec.Cmd
	l := newLauncher(OSLinux, found, func(cmd *exec.Cmd) error {
		started = cmd
		return nil
	})
	path := tempPDF(t)

	require.NoError(t, l.Open(context.Background(), path))
	require.NotNil(t, started)
	assert.Equal(t, []string{"xdg-open", path}, started.Args)
}

func TestOpen_HandoffError(t *testing.T) {
	l := newLauncher(OSLinux, found, func(*exec.Cmd) error { return errors.New("no display") })

	err := l.Open(context.Background(), tempPDF(t))

	assert.ErrorIs(t, err, ErrOpenFailed)
	assert.Contains(t, err.Error(), "no display")
}

func TestOpen_MissingFile(t *testing.T) {
	l := newLauncher(OSLinux, found, func(*exec.Cmd) error { return nil })

	err := l.Open(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))

	assert.ErrorIs(t, err, ErrOpenFailed)
}
