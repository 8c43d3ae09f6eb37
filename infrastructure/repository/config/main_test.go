package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/jobconf/domain/model/patch"
	domainConfig "github.com/t-kuni/jobconf/domain/repository/config"
	"github.com/t-kuni/jobconf/infrastructure/repository/file"
	"github.com/t-kuni/jobconf/infrastructure/system/ksuid"
	"github.com/t-kuni/jobconf/testUtil"
)

const document = `{
  "exampleDirectory": "./examples",
  "builder": { "hostname": "localhost", "port": 8080 },
  "mqtt": { "hostname": "localhost", "port": 1883 },
  "logLevel": "info"
}
`

func newRepository(t *testing.T, path string) *ConfigRepository {
	t.Helper()

	repo, err := NewConfigRepository(path, file.NewFileRepository(), ksuid.NewGenerator(), nil)
	assert.NoError(t, err)
	return repo
}

func TestConfigRepository(t *testing.T) {
	t.Run("patch and save rewrites only the field", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("config.json", []byte(document))
		assert.NoError(t, os.Chmod("config.json", 0600))

		repo := newRepository(t, "config.json")
		assert.NoError(t, repo.Load())

		result, err := repo.PatchField(repo.Syntax().Rule("mqtt", "hostname", patch.KindString), "broker.local")
		assert.NoError(t, err)
		assert.Equal(t, patch.StatusPatched, result.Status)
		assert.Equal(t, `"localhost"`, result.Before)
		assert.Equal(t, `"broker.local"`, result.After)

		assert.NoError(t, repo.Save())

		space.AssertFile("config.json", func(actual []byte) {
			expect := `{
  "exampleDirectory": "./examples",
  "builder": { "hostname": "localhost", "port": 8080 },
  "mqtt": { "hostname": "broker.local", "port": 1883 },
  "logLevel": "info"
}
`
			assert.Equal(t, expect, string(actual))
		})

		info, err := os.Stat("config.json")
		assert.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

		leftovers, err := filepath.Glob("config.json.*.tmp")
		assert.NoError(t, err)
		assert.Empty(t, leftovers)
	})

	t.Run("patch loads the document on demand", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("config.json", []byte(document))

		repo := newRepository(t, "config.json")

		_, err := repo.PatchField(repo.Syntax().Rule("builder", "port", patch.KindPort), "8000")
		assert.NoError(t, err)
		assert.Contains(t, repo.Document(), `"builder": { "hostname": "localhost", "port": 8000 }`)

		// nothing is written before Save
		assert.Equal(t, document, space.ReadFile("config.json"))
	})

	t.Run("field not found keeps the document", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("config.json", []byte(document))

		repo := newRepository(t, "config.json")
		assert.NoError(t, repo.Load())

		_, err := repo.PatchField(repo.Syntax().Rule("database", "hostname", patch.KindString), "db")
		assert.True(t, eris.Is(err, patch.ErrFieldNotFound))
		assert.Equal(t, document, repo.Document())
	})

	t.Run("missing file cannot be loaded", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		repo := newRepository(t, "config.json")

		err := repo.Load()
		assert.Error(t, err)
		assert.Error(t, repo.Save())
		space.AssertNotExistPath("config.json")
	})

	t.Run("read decodes json", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("config.json", []byte(document))

		cfg, err := newRepository(t, "config.json").Read()

		assert.NoError(t, err)
		assert.Equal(t, "./examples", cfg.ExampleDirectory)
		assert.Equal(t, "localhost", cfg.Builder.Hostname)
		assert.Equal(t, float64(8080), cfg.Builder.Port)
		assert.Equal(t, float64(1883), cfg.MQTT.Port)
	})

	t.Run("read decodes yaml", func(t *testing.T) {
		space := testUtil.BeginTestSpace(t)
		defer space.CleanUp()

		space.WriteFile("config.yml", []byte("exampleDirectory: /tmp/jobs\nbuilder:\n  hostname: 127.0.0.1\n  port: 8000\nmqtt:\n  hostname: broker.local\n"))

		cfg, err := newRepository(t, "config.yml").Read()

		assert.NoError(t, err)
		assert.Equal(t, &domainConfig.Config{
			ExampleDirectory: "/tmp/jobs",
			Builder:          domainConfig.Endpoint{Hostname: "127.0.0.1", Port: 8000},
			MQTT:             domainConfig.Endpoint{Hostname: "broker.local"},
		}, cfg)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := NewConfigRepository("config.toml", file.NewFileRepository(), ksuid.NewGenerator(), nil)

		assert.Error(t, err)
	})
}

func TestConfigRepositoryLock(t *testing.T) {
	space := testUtil.BeginTestSpace(t)
	defer space.CleanUp()

	space.WriteFile("config.json", []byte(document))

	first := newRepository(t, "config.json")
	second := newRepository(t, "config.json")

	unlock, err := first.Lock()
	assert.NoError(t, err)
	space.AssertExistPath("config.json.lock")

	_, err = second.Lock()
	assert.True(t, eris.Is(err, domainConfig.ErrLocked))

	assert.NoError(t, unlock())
	space.AssertNotExistPath("config.json.lock")

	unlock, err = second.Lock()
	assert.NoError(t, err)
	assert.NoError(t, unlock())
}
