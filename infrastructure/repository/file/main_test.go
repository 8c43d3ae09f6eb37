package file

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/t-kuni/jobconf/testUtil"
)

func TestExists(t *testing.T) {
	space := testUtil.BeginTestSpace(t)
	defer space.CleanUp()

	space.Mkdir("jobs")
	space.WriteFile("notes.txt", []byte("x"))

	repo := NewFileRepository()

	assert.True(t, repo.Exists("jobs"))
	assert.True(t, repo.Exists("notes.txt"))
	assert.False(t, repo.Exists("missing"))
	// stat fails with ENOTDIR, which is not a "not exist" error
	assert.False(t, repo.Exists("notes.txt/jobs"))
}

func TestCreateExclusive(t *testing.T) {
	space := testUtil.BeginTestSpace(t)
	defer space.CleanUp()

	repo := NewFileRepository()

	assert.NoError(t, repo.CreateExclusive("a.lock", []byte("1\n")))
	assert.Error(t, repo.CreateExclusive("a.lock", []byte("2\n")))
	assert.Equal(t, "1\n", space.ReadFile("a.lock"))
}
