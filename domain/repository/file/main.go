package file

import "os"

type Repository interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte, perm os.FileMode) error
	// CreateExclusive creates path and fails with an os.ErrExist error if it is already there.
	CreateExclusive(path string, data []byte) error
	Rename(from, to string) error
	Stat(path string) (os.FileInfo, error)
	Exists(path string) bool
	Delete(path string) error
	// ReadDir returns the entry names of dir sorted by name.
	ReadDir(dir string) ([]string, error)
	Getwd() (string, error)
}
