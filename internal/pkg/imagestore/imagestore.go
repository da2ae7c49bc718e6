package imagestore

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/emre/innohub/internal/pkg/logger"
)

// Store keeps startup images on the local filesystem. Uploads arrive as
// base64 payloads (optionally wrapped in a data URL) from the admin
// dashboard; deletes are best-effort so a missing file never blocks the
// owning record's removal.
type Store struct {
	basePath string
	baseURL  string
}

// NewStore creates a new image store rooted at basePath. baseURL, when set,
// is prepended to returned file paths.
func NewStore(basePath, baseURL string) (*Store, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create image storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &Store{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

var extByMime = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// SaveBase64 decodes and stores a base64 image, returning its accessible
// path. Data URLs ("data:image/png;base64,....") are accepted, the media
// type picks the file extension; a bare payload is stored as .png.
func (s *Store) SaveBase64(data string) (string, error) {
	payload := data
	ext := ".png"

	if strings.HasPrefix(data, "data:") {
		head, rest, found := strings.Cut(data, ",")
		if !found {
			return "", fmt.Errorf("malformed data URL")
		}
		payload = rest

		mime := strings.TrimPrefix(head, "data:")
		mime = strings.TrimSuffix(mime, ";base64")
		if e, ok := extByMime[mime]; ok {
			ext = e
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("invalid base64 image data: %w", err)
	}

	filename := uuid.New().String() + ext
	dstPath := filepath.Join(s.basePath, filename)

	if err := os.WriteFile(dstPath, raw, 0o644); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write image file")
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	if s.baseURL != "" {
		return strings.TrimSuffix(s.baseURL, "/") + "/" + filename, nil
	}
	return "/" + filepath.ToSlash(filepath.Join(filepath.Base(s.basePath), filename)), nil
}

// Delete removes a previously stored image by its accessible path.
// Missing files are not an error.
func (s *Store) Delete(fileURL string) error {
	if fileURL == "" {
		return nil
	}

	// Only the final path segment identifies the stored file
	filename := filepath.Base(fileURL)
	if filename == "." || filename == "/" || strings.Contains(filename, "..") {
		return fmt.Errorf("invalid image path %q", fileURL)
	}

	err := os.Remove(filepath.Join(s.basePath, filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}
