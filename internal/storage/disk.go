package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore writes objects under a local directory; the API server serves
// that directory at baseURL. Used in development and single-host deploys.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDisk(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (d *DiskStore) Dir() string {
	return d.dir
}

func (d *DiskStore) Put(ctx context.Context, objectPath, contentType string, r io.Reader, size int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full := filepath.Join(d.dir, filepath.FromSlash(objectPath))
	rel, err := filepath.Rel(d.dir, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("invalid object path %q", objectPath)
	}

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}

	f, err := os.Create(full)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		return err
	}
	return nil
}

func (d *DiskStore) PublicURL(objectPath string) string {
	return d.baseURL + "/" + strings.TrimLeft(objectPath, "/")
}
