package versionCommand

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCommand(t *testing.T) {
	Version = "1.2.0"
	Revision = "abc123"
	defer func() {
		Version = ""
		Revision = ""
	}()

	cmd := NewVersionCommand().CobraCommand
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "jobconf version 1.2.0 (rev: abc123)\n", out.String())
}
