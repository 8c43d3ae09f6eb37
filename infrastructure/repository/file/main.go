package file

import (
	"os"
)

type FileRepository struct{}

func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

func (r *FileRepository) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (r *FileRepository) Write(path string, data []byte, perm os.FileMode) error {
	return os.WriteFile(path, data, perm)
}

func (r *FileRepository) CreateExclusive(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (r *FileRepository) Rename(from, to string) error {
	return os.Rename(from, to)
}

func (r *FileRepository) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (r *FileRepository) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (r *FileRepository) Delete(path string) error {
	return os.Remove(path)
}

func (r *FileRepository) ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (r *FileRepository) Getwd() (string, error) {
	return os.Getwd()
}
