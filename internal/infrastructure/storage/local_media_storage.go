// Package storage provides the media storage implementations. The local
// backend writes under a configured directory and serves for development;
// the azure backend uploads to an Azure Blob Storage container.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dannykhan02/Ticketing-system/internal/domain/media"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
)

type localMediaStorage struct {
	directory string
	logger    logger.Logger
}

// NewLocalMediaStorage creates a filesystem-backed media.Storage rooted at
// directory, creating it if necessary.
func NewLocalMediaStorage(directory string, logger logger.Logger) (media.Storage, error) {
	if directory == "" {
		return nil, fmt.Errorf("storage directory must not be empty")
	}
	if err := os.MkdirAll(directory, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &localMediaStorage{
		directory: directory,
		logger:    logger,
	}, nil
}

func (s *localMediaStorage) Save(_ context.Context, name string, _ string, data []byte) (string, error) {
	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("failed to create media subdirectory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("failed to write media object: %w", err)
	}

	s.logger.Info("Saved media object ", name)
	return path, nil
}

func (s *localMediaStorage) Fetch(_ context.Context, name string) ([]byte, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read media object: %w", err)
	}
	return data, nil
}

func (s *localMediaStorage) Delete(_ context.Context, name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete media object: %w", err)
	}

	s.logger.Info("Deleted media object ", name)
	return nil
}

// resolve joins name under the storage root and rejects path traversal.
func (s *localMediaStorage) resolve(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid media object name: %s", name)
	}
	return filepath.Join(s.directory, cleaned), nil
}
