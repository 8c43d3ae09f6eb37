package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "C:/jobs/in", Normalize(`C:\jobs\in`))
	assert.Equal(t, "./a/b/", Normalize(`./a\b/`))
	assert.Equal(t, "/tmp/jobs", Normalize("/tmp/jobs"))
}
