package preference

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// fileStore keeps preferences as a small JSON object on disk.
type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a Store persisted at path. The file is created on first write.
func NewFile(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) GetSuppressPopup(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: read %s: %w", ErrPreferenceIO, s.path, err)
	}

	var record map[string]json.RawMessage
	if err := json.Unmarshal(b, &record); err != nil {
		return false, fmt.Errorf("%w: decode %s: %w", ErrPreferenceIO, s.path, err)
	}
	raw, ok := record[KeyDontShowPopup]
	if !ok {
		return false, nil
	}

	// Accept both a JSON boolean and the string form "true".
	v := strings.TrimSpace(string(raw))
	var str string
	if json.Unmarshal(raw, &str) == nil {
		v = str
	}
	return ParseFlag(v), nil
}

func (s *fileStore) SetSuppressPopup(ctx context.Context, suppress bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.Marshal(map[string]bool{KeyDontShowPopup: suppress})
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPreferenceIO, err)
	}
	if err := writeFileAtomic(s.path, b); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrPreferenceIO, s.path, err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
