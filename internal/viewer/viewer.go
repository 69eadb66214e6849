package viewer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

var (
	ErrUnsupportedViewer = errors.New("opening documents is not supported on this device")
	ErrOpenFailed        = errors.New("failed to open document")
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Launcher hands a local file to the platform's default viewer.
type Launcher interface {
	// Available reports whether the platform opener can be used.
	Available() bool
	// Open launches the viewer for localPath. It does not wait for the viewer to exit.
	Open(ctx context.Context, localPath string) error
}

type osLauncher struct {
	goos     string
	lookPath func(string) (string, error)
	start    func(cmd *exec.Cmd) error
}

// New returns a Launcher for the running operating system.
func New() Launcher {
	return newLauncher(platform(), exec.LookPath, func(cmd *exec.Cmd) error { return cmd.Start() })
}

func newLauncher(goos string, lookPath func(string) (string, error), start func(*exec.Cmd) error) *osLauncher {
	return &osLauncher{goos: goos, lookPath: lookPath, start: start}
}

// platform reports "android" when running under an Android userland, which
// Go builds for linux/arm64 do not reflect in runtime.GOOS.
func platform() string {
	if runtime.GOOS == OSLinux && (os.Getenv("ANDROID_DATA") != "" || os.Getenv("ANDROID_ROOT") != "") {
		return OSAndroid
	}
	return runtime.GOOS
}

// command returns the opener program and its arguments for path.
func (l *osLauncher) command(path string) (string, []string, bool) {
	switch l.goos {
	case OSDarwin:
		return "open", []string{path}, true
	case OSWindows:
		return "cmd", []string{"/c", "start", "", path}, true
	case OSLinux:
		return "xdg-open", []string{path}, true
	case OSAndroid:
		return "am", []string{"start", "-a", "android.intent.action.VIEW", "-d", "file://" + path, "-t", "application/pdf"}, true
	default:
		return "", nil, false
	}
}

func (l *osLauncher) Available() bool {
	name, _, ok := l.command("")
	if !ok {
		return false
	}
	_, err := l.lookPath(name)
	return err == nil
}

func (l *osLauncher) Open(ctx context.Context, localPath string) error {
	if !l.Available() {
		return ErrUnsupportedViewer
	}
	abs, err := filepath.Abs(localPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// The viewer outlives the request, so the command is not bound to ctx.
	name, args, _ := l.command(abs)
	cmd := exec.Command(name, args...)
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOpenFailed, name, err)
	}
	if cmd.Process != nil {
		go cmd.Wait()
	}
	return nil
}
