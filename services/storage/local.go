package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type LocalProvider struct {
	// RootPath is the directory served at URLPrefix
	RootPath  string
	URLPrefix string
}

func NewLocalProvider(root, urlPrefix string) (*LocalProvider, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalProvider{RootPath: root, URLPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (l *LocalProvider) path(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(l.RootPath, filepath.FromSlash(clean)), nil
}

func (l *LocalProvider) Put(_ context.Context, key string, body io.ReadSeeker, _ string) error {
	p, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	f, err := os.Create(p)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		_ = os.Remove(p)
		return err
	}
	return f.Close()
}

func (l *LocalProvider) Delete(_ context.Context, key string) error {
	p, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (l *LocalProvider) URL(key string) string {
	return l.URLPrefix + "/" + strings.TrimLeft(key, "/")
}
