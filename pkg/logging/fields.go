package logging

import "github.com/sirupsen/logrus"

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface {
	addTo(fs logrus.Fields)
}

// Field creates a single key value pair based logging detail.
// It will enrich the log entry with a value in the key you gave.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(fs logrus.Fields) {
	fs[f.Key] = f.Value
}

// Fields is a collection of field that you can add to your loggig record.
// It will enrich the log entry with a value in the key you gave.
type Fields map[string]any

func (fields Fields) addTo(fs logrus.Fields) {
	for k, v := range fields {
		fs[k] = v
	}
}

// ErrField will add the error to the log entry under the conventional logrus error key.
func ErrField(err error) Detail {
	if err == nil {
		return nil
	}
	return field{Key: logrus.ErrorKey, Value: err.Error()}
}
