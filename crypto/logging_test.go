package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

// captureLogs routes logrus output into a buffer at debug level for the
// duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut := logrus.StandardLogger().Out
	prevLevel := logrus.GetLevel()
	logrus.SetOutput(&buf)
	logrus.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
	})
	return &buf
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger("XORCrypt")

	if logger.function != "XORCrypt" {
		t.Errorf("NewLogger() function = %v, want XORCrypt", logger.function)
	}
	if logger.fields["function"] != "XORCrypt" {
		t.Errorf("fields[function] = %v, want XORCrypt", logger.fields["function"])
	}
	if logger.fields["package"] != "crypto" {
		t.Errorf("fields[package] = %v, want crypto", logger.fields["package"])
	}
}

func TestLoggerHelper_WithFieldsAndError(t *testing.T) {
	logger := NewLogger("Test").
		WithField("key_size", 3).
		WithFields(logrus.Fields{"a": 1, "b": "two"}).
		WithError(errors.New("boom"), "validate_key")

	want := map[string]interface{}{
		"key_size":  3,
		"a":         1,
		"b":         "two",
		"error":     "boom",
		"operation": "validate_key",
	}
	for k, v := range want {
		if logger.fields[k] != v {
			t.Errorf("fields[%s] = %v, want %v", k, logger.fields[k], v)
		}
	}
}

func TestBufferFields(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		wantPreview string
		wantSize    int
	}{
		{name: "nil", data: nil, wantPreview: "nil", wantSize: 0},
		{name: "short", data: []byte{0xde, 0xad}, wantPreview: "dead", wantSize: 2},
		{name: "exactly eight", data: []byte("12345678"), wantPreview: "3132333435363738", wantSize: 8},
		{name: "truncated", data: []byte("123456789"), wantPreview: "3132333435363738...", wantSize: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := BufferFields(tt.data, "buf")
			if fields["buf_preview"] != tt.wantPreview {
				t.Errorf("buf_preview = %v, want %v", fields["buf_preview"], tt.wantPreview)
			}
			if fields["buf_size"] != tt.wantSize {
				t.Errorf("buf_size = %v, want %v", fields["buf_size"], tt.wantSize)
			}
		})
	}
}

func TestPrimitivesLogAtDebug(t *testing.T) {
	out := captureLogs(t)

	if err := XORCrypt([]byte("secret data here"), []byte("k")); err != nil {
		t.Fatalf("XORCrypt() error: %v", err)
	}
	_ = StreamCrypt([]byte("x"), nil)

	logs := out.String()
	for _, want := range []string{"function=XORCrypt", "data_size=16", "function=NewStream", "error=\"empty key\""} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs missing %q:\n%s", want, logs)
		}
	}
	if strings.Contains(logs, "secret data here") {
		t.Error("plaintext leaked into logs")
	}
}
