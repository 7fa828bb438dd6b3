package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"lead-service/internal/config"
)

// LocalMediaStorage keeps uploaded files on the local filesystem under MEDIA_ROOT.
type LocalMediaStorage struct {
	root    string
	baseURL string
}

func NewLocalMediaStorage(cfg config.MediaConfig) *LocalMediaStorage {
	return &LocalMediaStorage{
		root:    cfg.Root,
		baseURL: cfg.URL,
	}
}

// Save writes content under dir with a generated name and returns the path relative to the root.
func (s *LocalMediaStorage) Save(ctx context.Context, dir, filename string, content io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	name := path.Join(dir, uuid.NewString()+ext)
	target := filepath.Join(s.root, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create media directory: %w", err)
	}

	file, err := os.OpenFile(target, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		os.Remove(target)
		return "", fmt.Errorf("write media file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("close media file: %w", err)
	}
	return name, nil
}

// URL maps a stored relative path to its public URL.
func (s *LocalMediaStorage) URL(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimSuffix(s.baseURL, "/") + "/" + name
}

// Delete removes a stored file. A file that is already gone is not an error.
func (s *LocalMediaStorage) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" {
		return nil
	}

	target := filepath.Join(s.root, filepath.FromSlash(path.Clean("/" + name)))
	if err := os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove media file: %w", err)
	}
	return nil
}
