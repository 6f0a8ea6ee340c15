package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DrekStyler/handypro-api/internal/domain"
)

const localRefScheme = "local://"

// LocalStore keeps blobs on the local filesystem. Development only.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create local storage dir: %w", err)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create blob dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return localRefScheme + key, nil
}

func (s *LocalStore) Delete(_ context.Context, ref string) (domain.DeleteOutcome, error) {
	if !strings.HasPrefix(ref, localRefScheme) {
		return domain.DeleteNotFound, nil
	}
	key := strings.TrimPrefix(ref, localRefScheme)

	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DeleteNotFound, nil
		}
		return domain.DeleteFailed, err
	}
	return domain.Deleted, nil
}
