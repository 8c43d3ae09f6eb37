//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package pathComplete

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/jobconf/domain/model/completion"
	"github.com/t-kuni/jobconf/util/path"
)

type FileRepository interface {
	Getwd() (string, error)
	ReadDir(dir string) ([]string, error)
}

type PathCompleteService struct {
	fileRepository FileRepository
}

func NewPathCompleteService(fileRepository FileRepository) *PathCompleteService {
	return &PathCompleteService{
		fileRepository: fileRepository,
	}
}

// Complete lists the entries of the directory part of partial whose names start with
// the last path segment. A single match is returned as a path ending in "/" so the
// caller can keep completing below it.
func (s *PathCompleteService) Complete(partial string) (completion.Result, error) {
	result := completion.Result{Input: partial}

	normalized := path.Normalize(partial)
	prefix, segment := "", normalized

	var dir string
	if i := strings.LastIndex(normalized, "/"); i >= 0 {
		prefix, segment = normalized[:i+1], normalized[i+1:]
		dir = prefix
	} else {
		cwd, err := s.fileRepository.Getwd()
		if err != nil {
			return result, eris.Wrap(err, "failed to get working directory")
		}
		dir = cwd
	}

	names, err := s.fileRepository.ReadDir(dir)
	if err != nil {
		return result, eris.Wrapf(err, "failed to list directory: %s", dir)
	}

	matches := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, segment) {
			matches = append(matches, name)
		}
	}

	if len(matches) == 1 {
		result.Candidates = []string{prefix + matches[0] + "/"}
		result.Descended = true
		return result, nil
	}

	result.Candidates = matches
	return result, nil
}
