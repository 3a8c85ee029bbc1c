package fs

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/fx"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// LintFS wraps the filesystem operations used by the client.
type LintFS interface {
	UserCacheDir() (string, error)
	MkdirAll(path string) error
	Stat(name string) (fs.FileInfo, error)
	DirExists(path string) (bool, error)
	FileExists(path string) (bool, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
	// WriteFileAtomic writes data to a temporary file next to name and renames it into place,
	// so readers never observe a partially written file.
	WriteFileAtomic(name string, data []byte) error
	Remove(name string) error
}

type fsImpl struct{}

// New creates a new LintFS backed by the os package.
func New() LintFS {
	return fsImpl{}
}

func (fsImpl) UserCacheDir() (string, error) { return os.UserCacheDir() }

func (fsImpl) MkdirAll(path string) error { return os.MkdirAll(path, os.ModePerm) }

func (fsImpl) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

func (fsImpl) DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

func (fsImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

func (fsImpl) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (fsImpl) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, 0o644)
}

func (fsImpl) WriteFileAtomic(name string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}

func (fsImpl) Remove(name string) error {
	return os.Remove(name)
}
