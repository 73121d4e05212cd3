package crypto

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// previewLen is the number of leading bytes shown when a buffer is logged.
const previewLen = 8

// LoggerHelper stamps every record from the crypto package with the calling
// primitive and the package name.
type LoggerHelper struct {
	function string
	fields   logrus.Fields
}

// NewLogger creates a new logger helper for the named primitive
func NewLogger(function string) *LoggerHelper {
	return &LoggerHelper{
		function: function,
		fields: logrus.Fields{
			"function": function,
			"package":  "crypto",
		},
	}
}

// WithField adds a custom field to the logger
func (l *LoggerHelper) WithField(key string, value interface{}) *LoggerHelper {
	l.fields[key] = value
	return l
}

// WithFields adds multiple custom fields to the logger
func (l *LoggerHelper) WithFields(fields logrus.Fields) *LoggerHelper {
	for k, v := range fields {
		l.fields[k] = v
	}
	return l
}

// WithError adds error information to the logger
func (l *LoggerHelper) WithError(err error, operation string) *LoggerHelper {
	l.fields["error"] = err.Error()
	l.fields["operation"] = operation
	return l
}

// Debug logs a debug message
func (l *LoggerHelper) Debug(message string) {
	logrus.WithFields(l.fields).Debug(message)
}

// Warn logs a warning message
func (l *LoggerHelper) Warn(message string) {
	logrus.WithFields(l.fields).Warn(message)
}

// BufferFields describes a buffer for logging without revealing it: the size
// and a hex preview of at most the first 8 bytes.
func BufferFields(data []byte, name string) logrus.Fields {
	preview := "nil"
	if len(data) > 0 {
		n := len(data)
		if n > previewLen {
			n = previewLen
		}
		preview = fmt.Sprintf("%x", data[:n])
		if len(data) > n {
			preview += "..."
		}
	}

	return logrus.Fields{
		name + "_preview": preview,
		name + "_size":    len(data),
	}
}

// debugEnabled avoids building fields for every call when debug logging is off.
func debugEnabled() bool {
	return logrus.IsLevelEnabled(logrus.DebugLevel)
}
