// Package logging provides a small structured logger that prints JSON
// lines. The server and CLI commands share it; library packages return
// errors instead of logging.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Field is a key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// F builds a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger writes JSON log lines to a writer. The zero value is not
// usable; construct with New.
type Logger struct {
	component string
	out       io.Writer
}

// New creates a Logger writing to stdout. component is optional and is
// included on every entry when set.
func New(component string) *Logger {
	return &Logger{component: component, out: os.Stdout}
}

// NewWithWriter creates a Logger writing to w, for tests.
func NewWithWriter(component string, w io.Writer) *Logger {
	return &Logger{component: component, out: w}
}

// With returns a child logger with a different component name.
func (l *Logger) With(component string) *Logger {
	return &Logger{component: component, out: l.out}
}

func (l *Logger) log(level, msg string, fields []Field) {
	entry := struct {
		Level     string         `json:"level"`
		Msg       string         `json:"msg"`
		Component string         `json:"component,omitempty"`
		Time      string         `json:"time"`
		Fields    map[string]any `json:"fields,omitempty"`
	}{
		Level:     level,
		Msg:       msg,
		Component: l.component,
		Time:      time.Now().UTC().Format(time.RFC3339),
	}
	if len(fields) > 0 {
		entry.Fields = make(map[string]any, len(fields))
		for _, f := range fields {
			entry.Fields[f.Key] = f.Value
		}
	}

	enc, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(l.out, "%s %s\n", level, msg)
		return
	}
	fmt.Fprintln(l.out, string(enc))
}

func (l *Logger) Debug(msg string, fields ...Field) { l.log("debug", msg, fields) }
func (l *Logger) Info(msg string, fields ...Field)  { l.log("info", msg, fields) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.log("warn", msg, fields) }
func (l *Logger) Error(msg string, fields ...Field) { l.log("error", msg, fields) }
