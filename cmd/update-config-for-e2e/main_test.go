package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "e2e.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ipfsHeliaGateways":["https://a","https://b"],"chainId":31337}`), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--file", path, "--studio-dapp-id", "7", "--ipfs-helia-gateway", "http://127.0.0.1:8080"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "studioDappId=7 and ipfsHeliaGateway=http://127.0.0.1:8080")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "{\n" +
		"  \"ipfsHeliaGateways\": [\n" +
		"    \"http://127.0.0.1:8080\"\n" +
		"  ],\n" +
		"  \"chainId\": 31337,\n" +
		"  \"studioDappId\": 7\n" +
		"}\n"
	assert.Equal(t, want, string(data))
}

func TestRunBadID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "e2e.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--file", path, "--studio-dapp-id", "-1", "--ipfs-helia-gateway", "x"}, &stdout, &stderr)
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
