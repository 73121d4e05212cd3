package main

import (
	"bytes"
	"testing"

	"github.com/opd-ai/bufcrypt/crypto"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand invokes run against fs and returns exit code and output.
func runCommand(t *testing.T, fs afero.Fs, args ...string) (int, string, string) {
	t.Helper()
	prevOut := logrus.StandardLogger().Out
	prevLevel := logrus.GetLevel()
	prevFormatter := logrus.StandardLogger().Formatter
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
		logrus.SetFormatter(prevFormatter)
	})

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr, fs)
	return code, stdout.String(), stderr.String()
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
	}{
		{name: "text file", content: []byte("The decrypted file should match the original file.\n")},
		{name: "empty file", content: []byte{}},
		{name: "binary file", content: bytes.Repeat([]byte{0x00, 0xff, 0x7f}, 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "plain", tt.content, 0o600))

			code, _, stderr := runCommand(t, fs, "plain", "cipher", "password")
			require.Equal(t, 0, code, stderr)

			cipher, err := afero.ReadFile(fs, "cipher")
			require.NoError(t, err)
			assert.Len(t, cipher, len(tt.content), "ciphertext must be the same length as plaintext")

			want, err := crypto.StreamXOR(tt.content, []byte("password"))
			require.NoError(t, err)
			assert.Equal(t, want, cipher)

			code, _, stderr = runCommand(t, fs, "cipher", "restored", "password")
			require.Equal(t, 0, code, stderr)

			restored, err := afero.ReadFile(fs, "restored")
			require.NoError(t, err)
			assert.Equal(t, tt.content, restored)
		})
	}
}

func TestOTPMode(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "plain", []byte("This is a very secret message"), 0o600))

	code, _, stderr := runCommand(t, fs, "-mode", "otp", "plain", "cipher", "s3cr3t_p4ssw0rd")
	require.Equal(t, 0, code, stderr)

	got, err := afero.ReadFile(fs, "cipher")
	require.NoError(t, err)
	want, err := crypto.XOR([]byte("This is a very secret message"), []byte("s3cr3t_p4ssw0rd"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEscapedKey(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "plain", []byte("abc"), 0o600))

	code, _, stderr := runCommand(t, fs, "-escaped", "-mode", "otp", "plain", "cipher", `\01\02\03`)
	require.Equal(t, 0, code, stderr)

	got, err := afero.ReadFile(fs, "cipher")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a' ^ 1, 'b' ^ 2, 'c' ^ 3}, got)
}

func TestUsageErrors(t *testing.T) {
	fs := afero.NewMemMapFs()

	code, _, stderr := runCommand(t, fs, "only-one-arg")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Usage: streamcrypt [options] <input_file> <output_file> <key>")

	code, _, stderr = runCommand(t, fs, "-no-such-flag", "a", "b", "c")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error:")

	code, stdout, _ := runCommand(t, fs, "-help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Usage:")

	code, stdout, _ = runCommand(t, fs, "-h")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Usage:")
}

func TestRuntimeErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "plain", []byte("data"), 0o600))

	code, _, stderr := runCommand(t, fs, "missing", "out", "password")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to read file")
	assert.Contains(t, stderr, "file not found")

	code, _, stderr = runCommand(t, fs, "plain", "out", "")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "empty key")

	code, _, stderr = runCommand(t, fs, "-mode", "rot13", "plain", "out", "password")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid mode")

	code, _, stderr = runCommand(t, afero.NewReadOnlyFs(fs), "plain", "out", "password")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to write file")

	exists, err := afero.Exists(fs, "out")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDebugDumpsBuffers(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "plain", []byte("hello"), 0o600))

	code, _, stderr := runCommand(t, fs, "-debug", "plain", "cipher", "password")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "key: 0x64726f7773736170")
	assert.Contains(t, stderr, "output: 0xf328489ae8")
	assert.Contains(t, stderr, "File transformed")
}
