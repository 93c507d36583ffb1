// Package credentials persists the SMTP account between runs.
package credentials

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"labreport/internal/models"
)

// Store is the only thing the CLI talks to for credential persistence;
// the pipeline itself never sees credentials.
type Store interface {
	// Load returns the saved credentials, or ok=false when none exist.
	Load() (creds models.Credentials, ok bool, err error)
	Save(models.Credentials) error
	Clear() error
}

// FileStore keeps credentials in a JSON file with the password base64
// encoded. That is obfuscation, not encryption; the file is chmod 0600
// as the second line of defense.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load() (models.Credentials, bool, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return models.Credentials{}, false, nil
	}
	if err != nil {
		return models.Credentials{}, false, fmt.Errorf("read credentials %s: %w", s.Path, err)
	}

	var creds models.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return models.Credentials{}, false, fmt.Errorf("parse credentials %s: %w", s.Path, err)
	}
	secret, err := base64.StdEncoding.DecodeString(creds.Password)
	if err != nil {
		return models.Credentials{}, false, fmt.Errorf("decode credentials %s: %w", s.Path, err)
	}
	creds.Password = string(secret)
	return creds, true, nil
}

func (s *FileStore) Save(creds models.Credentials) error {
	creds.Password = base64.StdEncoding.EncodeToString([]byte(creds.Password))
	data, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials %s: %w", s.Path, err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials %s: %w", s.Path, err)
	}
	return nil
}
