package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	FieldCandidateID = "candidate_id"
	FieldArea        = "area"
	FieldLabel       = "classification"
	FieldScore       = "score"
)

// StringField is a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts key/value pairs into zap fields, dropping entries
// whose key or value is blank after trimming.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		value := strings.TrimSpace(field.Value)
		if key == "" || value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to logger. A nil logger becomes a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CandidateFields describes a registered candidate in log entries.
func CandidateFields(id, area, label string, score int) []zap.Field {
	fields := StringFields(
		StringField{Key: FieldCandidateID, Value: id},
		StringField{Key: FieldArea, Value: area},
		StringField{Key: FieldLabel, Value: label},
	)
	return append(fields, zap.Int(FieldScore, score))
}
