// Package storage persists uploaded photos on local disk under the static
// file root, mirroring the URL layout they are served back from.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const userPhotosDir = "user_photos"

// LocalStorage writes photo files under <basePath>/user_photos/<user_id>/
// and returns /static URL paths for them.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(filepath.Join(basePath, userPhotosDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Save writes src to a freshly named file in the user's directory and
// returns the URL path the file is served from.
func (s *LocalStorage) Save(userID int, ext string, src io.Reader) (string, error) {
	userDir := filepath.Join(s.basePath, userPhotosDir, strconv.Itoa(userID))
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create user directory: %w", err)
	}

	filename := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	diskPath := filepath.Join(userDir, filename)

	dst, err := os.Create(diskPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(diskPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(diskPath)
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return fmt.Sprintf("/static/%s/%d/%s", userPhotosDir, userID, filename), nil
}

// Remove deletes the file behind a URL path previously returned by Save.
// Paths that resolve outside the photo directory are rejected.
func (s *LocalStorage) Remove(photoURL string) error {
	rel := strings.TrimPrefix(photoURL, "/static/")
	if rel == photoURL {
		return fmt.Errorf("unexpected photo url %q", photoURL)
	}

	base, err := filepath.Abs(filepath.Join(s.basePath, userPhotosDir))
	if err != nil {
		return err
	}
	target, err := filepath.Abs(filepath.Join(s.basePath, filepath.FromSlash(rel)))
	if err != nil {
		return err
	}
	if target != base && !strings.HasPrefix(target, base+string(os.PathSeparator)) {
		return fmt.Errorf("photo url %q escapes storage directory", photoURL)
	}

	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
