package globalFlags

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigPathDefault(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")
	assert.Equal(t, DefaultConfigPath, ConfigPathDefault())

	t.Setenv(ConfigPathEnv, "deploy/client.yml")
	assert.Equal(t, "deploy/client.yml", ConfigPathDefault())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	(&GlobalFlags{}).Logger(&buf).Debug("hidden")
	assert.Empty(t, buf.String())

	(&GlobalFlags{Verbose: true}).Logger(&buf).Debug("shown", "field", "builder.port")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "field=builder.port")
}
