package storage

import (
	"ClipHub/config"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
)

// FSStore keeps one file per media object in a flat directory.
type FSStore struct {
	dir string
}

// NewFSStore creates the directory if needed and returns the store.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{dir: dir}, nil
}

// Put writes the stream to a temp file in the same directory and
// renames it into place, so a locator never resolves to partial bytes.
func (s *FSStore) Put(ctx context.Context, originalName string, reader io.Reader, size int64, opts PutOptions) (string, error) {
	locator := NewLocator(originalName)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, locator)); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	return locator, nil
}

// Get opens the object file for reading.
func (s *FSStore) Get(ctx context.Context, locator string) (io.ReadCloser, ObjectInfo, error) {
	path := filepath.Join(s.dir, filepath.Base(locator))
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ObjectInfo{}, ErrObjectNotFound
		}
		return nil, ObjectInfo{}, err
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, ObjectInfo{}, err
	}
	return file, ObjectInfo{Locator: locator, Size: stat.Size()}, nil
}

// Remove deletes the object file. A missing file is a silent no-op.
func (s *FSStore) Remove(ctx context.Context, locator string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(locator)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// InitFS initializes the filesystem store as the default backend.
func InitFS() {
	store, err := NewFSStore(config.AppConfig.UploadDir)
	if err != nil {
		log.Fatalln("init upload dir fail:", err)
	}
	log.Println("init fs storage success:", config.AppConfig.UploadDir)
	Default = store
}
