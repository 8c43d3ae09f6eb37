package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/jobconf/domain/model/patch"
	"github.com/t-kuni/jobconf/domain/repository/config"
	"github.com/t-kuni/jobconf/domain/repository/file"
	"github.com/t-kuni/jobconf/domain/service/patchEngine"
	"github.com/t-kuni/jobconf/domain/service/syntax"
)

type IDGenerator interface {
	New() string
}

type ConfigRepository struct {
	path           string
	engine         *patchEngine.PatchEngine
	fileRepository file.Repository
	idGenerator    IDGenerator
	logger         *slog.Logger

	doc    string
	loaded bool
}

var _ config.Repository = (*ConfigRepository)(nil)

func NewConfigRepository(
	path string,
	fileRepository file.Repository,
	idGenerator IDGenerator,
	logger *slog.Logger,
) (*ConfigRepository, error) {
	s, err := syntax.ForPath(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ConfigRepository{
		path:           path,
		engine:         patchEngine.NewPatchEngine(s),
		fileRepository: fileRepository,
		idGenerator:    idGenerator,
		logger:         logger,
	}, nil
}

func (r *ConfigRepository) Path() string {
	return r.path
}

func (r *ConfigRepository) Syntax() patch.Syntax {
	return r.engine.Syntax()
}

func (r *ConfigRepository) Load() error {
	content, err := r.fileRepository.Read(r.path)
	if err != nil {
		return eris.Wrapf(err, "failed to read config file: %s", r.path)
	}

	r.doc = string(content)
	r.loaded = true
	r.logger.Debug("Loaded config", slog.String("path", r.path), slog.String("syntax", r.engine.Syntax().Name()))
	return nil
}

func (r *ConfigRepository) Document() string {
	return r.doc
}

// PatchField applies rule to the in-memory document. Nothing is written until Save.
func (r *ConfigRepository) PatchField(rule patch.Rule, answer string) (patch.Result, error) {
	if !r.loaded {
		if err := r.Load(); err != nil {
			return patch.Result{Rule: rule.Name, Status: patch.StatusNotFound}, err
		}
	}

	doc, result, err := r.engine.Apply(r.doc, rule, answer)
	if err != nil {
		return result, eris.Wrapf(err, "failed to patch %s", r.path)
	}

	r.doc = doc
	r.logger.Debug("Patched field",
		slog.String("field", rule.Name),
		slog.String("status", result.Status.String()),
		slog.String("before", result.Before),
		slog.String("after", result.After))
	return result, nil
}

// Save replaces the file with the in-memory document through a temporary file,
// so a reader never sees a half written document.
func (r *ConfigRepository) Save() error {
	if !r.loaded {
		return eris.Errorf("config not loaded: %s", r.path)
	}

	perm := os.FileMode(0644)
	if info, err := r.fileRepository.Stat(r.path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp := fmt.Sprintf("%s.%s.tmp", r.path, r.idGenerator.New())
	if err := r.fileRepository.Write(tmp, []byte(r.doc), perm); err != nil {
		return eris.Wrapf(err, "failed to write temporary file: %s", tmp)
	}

	if err := r.fileRepository.Rename(tmp, r.path); err != nil {
		r.fileRepository.Delete(tmp)
		return eris.Wrapf(err, "failed to replace config file: %s", r.path)
	}

	r.logger.Debug("Saved config", slog.String("path", r.path))
	return nil
}

func (r *ConfigRepository) Read() (*config.Config, error) {
	if !r.loaded {
		if err := r.Load(); err != nil {
			return nil, err
		}
	}

	var cfg config.Config
	if err := r.engine.Syntax().Decode(r.doc, &cfg); err != nil {
		return nil, eris.Wrapf(err, "failed to decode config file: %s", r.path)
	}
	return &cfg, nil
}

// Lock takes the <path>.lock file. The returned func releases it.
func (r *ConfigRepository) Lock() (func() error, error) {
	lockPath := r.path + ".lock"

	err := r.fileRepository.CreateExclusive(lockPath, []byte(fmt.Sprintf("%d\n", os.Getpid())))
	if err != nil {
		if os.IsExist(err) {
			return nil, eris.Wrapf(config.ErrLocked, "remove %s if no other process is running", lockPath)
		}
		return nil, eris.Wrapf(err, "failed to create lock file: %s", lockPath)
	}

	r.logger.Debug("Acquired lock", slog.String("path", lockPath))
	return func() error {
		return r.fileRepository.Delete(lockPath)
	}, nil
}
