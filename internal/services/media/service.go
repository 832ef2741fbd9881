package media

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"securereport/internal/domain"
	"securereport/internal/ports"
)

// Collaborator glue: the report core only ever receives already-hosted
// (type, url) pairs. This service hosts the bytes and hands back the pair;
// it keeps no state the core depends on.

type Service struct {
	uploader ports.Uploader
}

func New(uploader ports.Uploader) *Service { return &Service{uploader: uploader} }

func (s *Service) Upload(ctx context.Context, data []byte, contentType string) (domain.MediaItem, error) {
	return s.uploader.Upload(ctx, data, contentType)
}

// DiskUploader writes files under Dir and returns URLs below /uploads, which
// the server serves statically. Stand-in for a hosted media store.
type DiskUploader struct {
	Dir string
}

func (d DiskUploader) Upload(_ context.Context, data []byte, contentType string) (domain.MediaItem, error) {
	kind, ext, err := kindFor(contentType)
	if err != nil {
		return domain.MediaItem{}, err
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return domain.MediaItem{}, err
	}
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return domain.MediaItem{}, err
	}
	name := hex.EncodeToString(buf) + ext
	if err := os.WriteFile(filepath.Join(d.Dir, name), data, 0o644); err != nil {
		return domain.MediaItem{}, err
	}
	return domain.MediaItem{Type: kind, URL: "/uploads/" + name}, nil
}

func kindFor(contentType string) (domain.MediaType, string, error) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		ext := "." + strings.TrimPrefix(contentType, "image/")
		if ext == ".jpeg" {
			ext = ".jpg"
		}
		return domain.MediaImage, ext, nil
	case strings.HasPrefix(contentType, "video/"):
		return domain.MediaVideo, "." + strings.TrimPrefix(contentType, "video/"), nil
	}
	return "", "", fmt.Errorf("unsupported content type %q", contentType)
}
