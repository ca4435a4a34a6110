package utils

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	StorageProviderLocal = "local"
	StorageProviderGCS   = "gcs"
	StorageProviderS3    = "s3"

	StorageFolderPhotos = "photos"
	StorageFolderFiles  = "files"
)

// ErrObjectNotFound is reported for a missing object and for names that
// could escape their folder.
var ErrObjectNotFound = errors.New("File not found")

// ObjectStorage keeps uploaded photos and documents. Objects are addressed by
// folder (photos or files) and a flat name.
type ObjectStorage interface {
	Put(ctx context.Context, folder string, name string, data []byte, contentType string) error
	Get(ctx context.Context, folder string, name string) (io.ReadCloser, error)
	Close() error
}

func ValidObjectName(name string) bool {
	return name != "" && name != "." && !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}

func objectKey(folder, name string) string {
	return folder + "/" + name
}

// LocalStorage writes objects under one directory per folder.
type LocalStorage struct {
	dirs map[string]string
}

func NewLocalStorage(photosDir, filesDir string) (*LocalStorage, error) {
	for _, dir := range []string{photosDir, filesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &LocalStorage{dirs: map[string]string{
		StorageFolderPhotos: photosDir,
		StorageFolderFiles:  filesDir,
	}}, nil
}

func (s *LocalStorage) path(folder, name string) (string, error) {
	dir, ok := s.dirs[folder]
	if !ok || !ValidObjectName(name) {
		return "", ErrObjectNotFound
	}
	return filepath.Join(dir, name), nil
}

func (s *LocalStorage) Put(_ context.Context, folder string, name string, data []byte, _ string) error {
	p, err := s.path(folder, name)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}

func (s *LocalStorage) Get(_ context.Context, folder string, name string) (io.ReadCloser, error) {
	p, err := s.path(folder, name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrObjectNotFound
	}
	return f, err
}

func (s *LocalStorage) Close() error { return nil }
