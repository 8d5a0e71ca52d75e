package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"guestdesk/core/logger"
	"guestdesk/core/utils"
)

type localStorage struct {
	dir string
}

func newLocalStorage(dir string) (*localStorage, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	logger.Info("Storage:Local:Initialized", "dir", dir)
	return &localStorage{dir: dir}, nil
}

func (s *localStorage) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	name := fmt.Sprintf("%s-%s", utils.GenerateID(), filepath.Base(filename))
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Error("Storage:Local:Upload", err)
		return "", err
	}
	return path, nil
}

func (s *localStorage) Delete(ctx context.Context, path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		logger.Error("Storage:Local:Delete", err)
		return err
	}
	return nil
}

func (s *localStorage) FileURL(ctx context.Context, path string) (string, error) {
	return "/" + filepath.ToSlash(path), nil
}
