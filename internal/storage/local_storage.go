package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"trustrent-backend/internal/logger"
	"trustrent-backend/internal/security"
)

var ErrInvalidKey = errors.New("invalid storage key")

// LocalStorageService stores reports on the local filesystem and serves them
// through signed download links handled by the HTTP API.
type LocalStorageService struct {
	baseURL string
	dir     string
	tokens  security.TokenManager
}

// NewLocalStorageService creates the report directory if needed.
func NewLocalStorageService(cfg Config) (*LocalStorageService, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}

	secret := cfg.SigningSecret
	if secret == "" {
		secret = uuid.NewString() + uuid.NewString()
		logger.Warn("No report signing secret configured; download links will not survive a restart")
	}

	return &LocalStorageService{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		dir:     cfg.Dir,
		tokens:  security.NewTokenManager(secret),
	}, nil
}

// NewObjectKey returns a unique key under prefix keeping the extension of filename.
func NewObjectKey(prefix, filename string) string {
	return fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), filepath.Ext(filename))
}

func (m *LocalStorageService) GeneratePresignedDownloadURL(ctx context.Context, key, filename string, expiresIn time.Duration) (string, error) {
	if _, err := m.path(key); err != nil {
		return "", err
	}
	token, err := m.tokens.GenerateDownloadToken(key, filename, expiresIn)
	if err != nil {
		return "", fmt.Errorf("failed to sign download token: %w", err)
	}
	return fmt.Sprintf("%s/api/v1/reports/download?token=%s", m.baseURL, url.QueryEscape(token)), nil
}

func (m *LocalStorageService) ResolveDownloadToken(ctx context.Context, token string) (string, string, error) {
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return "", "", err
	}
	return claims.Key, claims.Filename, nil
}

func (m *LocalStorageService) FileExists(ctx context.Context, key string) (bool, int64, error) {
	fullPath, err := m.path(key)
	if err != nil {
		return false, 0, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (m *LocalStorageService) DeleteFile(ctx context.Context, key string) error {
	fullPath, err := m.path(key)
	if err != nil {
		return err
	}

	err = os.Remove(fullPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (m *LocalStorageService) SaveFile(ctx context.Context, key string, reader io.Reader) error {
	fullPath, err := m.path(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	logger.Debug("Stored report", "key", key)
	return nil
}

func (m *LocalStorageService) ReadFile(ctx context.Context, key string) (io.ReadCloser, error) {
	fullPath, err := m.path(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// path maps key into the storage directory, rejecting keys that escape it.
func (m *LocalStorageService) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(m.dir, clean), nil
}
