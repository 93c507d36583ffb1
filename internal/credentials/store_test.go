package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"labreport/internal/models"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), ".email_config.json"))

	want := models.Credentials{
		Host:     "smtp.gmail.com",
		Port:     587,
		Email:    "grader@example.com",
		Password: "app-password",
	}
	require.NoError(t, store.Save(want))

	got, ok, err := store.Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	_, ok, err := store.Load()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFileStorePasswordNotPlaintextOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".email_config.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(models.Credentials{
		Host: "smtp.gmail.com", Port: 587, Email: "a@b.c", Password: "hunter2",
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "hunter2")

	var onDisk map[string]any
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	require.Equal(t, "aHVudGVyMg==", onDisk["password"])

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

// Configs written by older versions of the tool use the same field
// names and base64 password; they must keep loading.
func TestFileStoreReadsLegacyFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".email_config.json")
	legacy := `{"smtp_server": "smtp-mail.outlook.com", "smtp_port": 587, "email": "x@y.z", "password": "c2VjcmV0"}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o600))

	got, ok, err := NewFileStore(path).Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "smtp-mail.outlook.com", got.Host)
	require.Equal(t, 587, got.Port)
	require.Equal(t, "secret", got.Password)
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".email_config.json")
	store := NewFileStore(path)
	require.NoError(t, store.Save(models.Credentials{Host: "h", Port: 1, Email: "e", Password: "p"}))

	require.NoError(t, store.Clear())
	_, ok, err := store.Load()
	require.NoError(t, err)
	require.False(t, ok)

	// clearing twice is fine
	require.NoError(t, store.Clear())
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".email_config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, _, err := NewFileStore(path).Load()
	require.Error(t, err)
}
