package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldCommand is the structured log field key for the CLI subcommand.
	FieldCommand = "command"
	// FieldRunID is the structured log field key for the per-invocation run ID.
	FieldRunID = "run_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the provided fields to the logger, defaulting to a
// no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// WithCommand tags every entry with the subcommand name and run ID.
func WithCommand(logger *zap.Logger, command, runID string) *zap.Logger {
	return WithFields(logger, StringFields(
		StringField{Key: FieldCommand, Value: command},
		StringField{Key: FieldRunID, Value: runID},
	)...)
}
