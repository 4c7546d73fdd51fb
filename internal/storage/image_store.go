// Package storage keeps product image files on an afero filesystem.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/spf13/afero"
)

const (
	maxNameAttempts = 10
	suffixLen       = 8
)

type imageStore struct {
	fs afero.Fs
}

// NewImageStore stores images in the root of fsys. Use afero.NewBasePathFs
// to confine it to a media directory.
func NewImageStore(fsys afero.Fs) port.ImageStore {
	return &imageStore{fs: fsys}
}

// NewDirImageStore stores images under dir on the OS filesystem.
func NewDirImageStore(dir string) (port.ImageStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("MkdirAll[%s]: %w", dir, err)
	}

	return NewImageStore(afero.NewBasePathFs(osFs, dir)), nil
}

func (s *imageStore) Put(name string, data []byte) (string, error) {
	clean, err := cleanName(name)
	if err != nil {
		return "", err
	}

	candidate := clean
	for range maxNameAttempts {
		err := s.create(candidate, data)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", err
		}
		candidate = withSuffix(clean, uuid.NewString()[:suffixLen])
	}

	return "", fmt.Errorf("image name[%s]: no free name after %d attempts", clean, maxNameAttempts)
}

// create writes a new file and fails with fs.ErrExist when name is taken.
func (s *imageStore) create(name string, data []byte) (writeErr error) {
	f, err := s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("fs.OpenFile[%s]: %w", name, err)
	}

	defer func() {
		if err := f.Close(); err != nil && writeErr == nil {
			writeErr = fmt.Errorf("f.Close[%s]: %w", name, err)
		}
		if writeErr != nil {
			_ = s.fs.Remove(name)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("f.Write[%s]: %w", name, err)
	}

	return nil
}

func (s *imageStore) Get(name string) ([]byte, error) {
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(s.fs, clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("image[%s]: %w", clean, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("afero.ReadFile[%s]: %w", clean, err)
	}

	return data, nil
}

func (s *imageStore) Delete(name string) error {
	clean, err := cleanName(name)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(clean); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("fs.Remove[%s]: %w", clean, err)
	}

	return nil
}

// cleanName keeps only the base name so uploads cannot escape the store.
func cleanName(name string) (string, error) {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == ".." || base == "" {
		return "", fmt.Errorf("image name[%s] is not valid", name)
	}
	return base, nil
}

// withSuffix turns "photo.png" into "photo_<suffix>.png".
func withSuffix(name, suffix string) string {
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + "_" + suffix + ext
}
