package preference

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_DefaultIsFalse(t *testing.T) {
	s := NewFile(filepath.Join(t.TempDir(), "prefs.json"))

	got, err := s.GetSuppressPopup(context.Background())

	assert.NoError(t, err)
	assert.False(t, got)
}

func TestFileStore_SetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	ctx := context.Background()

	require.NoError(t, NewFile(path).SetSuppressPopup(ctx, true))

	// A fresh store over the same file simulates a restart.
	got, err := NewFile(path).GetSuppressPopup(ctx)
	require.NoError(t, err)
	assert.True(t, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var record map[string]any
	require.NoError(t, json.Unmarshal(raw, &record))
	assert.Equal(t, map[string]any{"dontShowPopup": true}, record)

	require.NoError(t, NewFile(path).SetSuppressPopup(ctx, false))
	got, err = NewFile(path).GetSuppressPopup(ctx)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestFileStore_StoredValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
		wantErr bool
	}{
		{name: "json boolean", content: `{"dontShowPopup": true}`, want: true},
		{name: "string true", content: `{"dontShowPopup": "true"}`, want: true},
		{name: "string false", content: `{"dontShowPopup": "false"}`, want: false},
		{name: "legacy merged object", content: `{"dontShowPopup": {"dontShowAgain": true}}`, want: false},
		{name: "missing key", content: `{"other": true}`, want: false},
		{name: "corrupt", content: `{not json`, want: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "prefs.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := NewFile(path).GetSuppressPopup(context.Background())

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPreferenceIO)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileStore_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// The parent "directory" is a regular file, so the write must fail.
	err := NewFile(filepath.Join(blocker, "prefs.json")).SetSuppressPopup(context.Background(), true)

	assert.ErrorIs(t, err, ErrPreferenceIO)
}

func TestParseFlag(t *testing.T) {
	assert.True(t, ParseFlag("true"))
	assert.False(t, ParseFlag("TRUE"))
	assert.False(t, ParseFlag(`{"dontShowAgain":true}`))
	assert.False(t, ParseFlag(""))
	assert.Equal(t, "true", FormatFlag(true))
	assert.Equal(t, "false", FormatFlag(false))
}
