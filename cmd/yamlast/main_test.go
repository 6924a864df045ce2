package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "doc.yaml")
	if !assert.NoError(t, os.WriteFile(filename, []byte("a: 1\n"), 0o644)) {
		return
	}

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"parse", filename})

	assert.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), `"type": "Program"`)
	assert.Contains(t, out.String(), `"tokens"`)
}

func TestParseCommandTokensOnly(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader("a: 1\n"))
	cmd.SetArgs([]string{"parse", "--tokens"})

	assert.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), `"Punctuator"`)
	assert.NotContains(t, out.String(), `"body"`)
}

func TestParseCommandMissingFile(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"parse", filepath.Join(t.TempDir(), "missing.yaml")})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
