package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/exam_analyzer/internal/domain"
)

const LocalScheme = "local"

// LocalStore keeps objects as files under root/<bucket>/<key>.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

func (s *LocalStore) Put(ctx context.Context, bucket, key string, data []byte, _ string) (string, error) {
	path := Path{Scheme: LocalScheme, Bucket: bucket, Key: key}

	if err := ctx.Err(); err != nil {
		return "", transferError("upload", path.String(), err)
	}

	full, err := s.filename(path)
	if err != nil {
		return "", transferError("upload", path.String(), err)
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", transferError("upload", path.String(), err)
	}

	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", transferError("upload", path.String(), err)
	}

	return path.String(), nil
}

func (s *LocalStore) Get(ctx context.Context, raw, localDestination string) (err error) {
	path, err := ParsePath(raw, LocalScheme)
	if err != nil {
		return transferError("download", raw, err)
	}

	if err := ctx.Err(); err != nil {
		return transferError("download", raw, err)
	}

	full, err := s.filename(path)
	if err != nil {
		return transferError("download", raw, err)
	}

	src, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", domain.ErrBlobNotFound, err)
		}
		return transferError("download", raw, err)
	}
	defer src.Close()

	dst, err := os.Create(localDestination)
	if err != nil {
		return transferError("download", raw, err)
	}
	defer func() { err = errors.Join(err, dst.Close()) }()

	if _, err := io.Copy(dst, src); err != nil {
		return transferError("download", raw, err)
	}

	return nil
}

func (s *LocalStore) Validate(raw string) error {
	path, err := ParsePath(raw, LocalScheme)
	if err != nil {
		return err
	}

	_, err = s.filename(path)
	return err
}

func (s *LocalStore) Ping(context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("failed to stat blob root %q: %w", s.root, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("blob root %q is not a directory", s.root)
	}

	return nil
}

func (s *LocalStore) filename(path Path) (string, error) {
	rel := filepath.Join(path.Bucket, filepath.FromSlash(path.Key))
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q escapes the store root", ErrMalformedPath, path.String())
	}

	return filepath.Join(s.root, rel), nil
}
