package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devnet.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"network":"devnet","studioDappId":1}`), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--file", path, "--studio-dapp-id", "1234"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.True(t, strings.HasPrefix(stdout.String(), "Updated "))
	assert.True(t, strings.HasSuffix(stdout.String(), " with studioDappId=1234\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"network\": \"devnet\",\n  \"studioDappId\": 1234\n}\n", string(data))
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "--studio-dapp-id <uint>")
}
