// Package authstore persists the signed-in user across sessions.
package authstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yoonjun1204/chatbot-for-customer-support/internal/model"
)

// Store is the durable record of the signed-in identity: read once at
// startup, written on every login, removed on logout.
type Store interface {
	Load() (*model.AuthUser, error)
	Save(user *model.AuthUser) error
	Clear() error
}

// FileStore keeps the signed-in user as a JSON file on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored user. A missing or empty record returns
// (nil, nil): no one is signed in.
func (f *FileStore) Load() (*model.AuthUser, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var user model.AuthUser
	if err := json.Unmarshal(b, &user); err != nil {
		return nil, err
	}
	if user.Email == "" {
		return nil, nil
	}
	return &user, nil
}

// Save writes the user record, creating parent directories as needed.
// The write goes through a temp file and rename so a crash cannot leave
// a half-written record.
func (f *FileStore) Save(user *model.AuthUser) error {
	if user == nil || user.Email == "" {
		return fmt.Errorf("invalid user record")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Clear removes the stored record. Clearing a missing record is not an
// error.
func (f *FileStore) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
