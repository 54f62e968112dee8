//go:build unit

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"vivo-app/internal/config"
)

func TestLogger(t *testing.T) {
	t.Run("console format", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := config.LogConfig{Level: "info", Format: "console"}
		log := New(cfg, &buf)

		log.Info("hello world")

		output := buf.String()
		if !strings.Contains(output, "hello world") {
			t.Errorf("expected log output to contain 'hello world', but got '%s'", output)
		}
		if strings.Contains(output, "{") {
			t.Errorf("expected console format, but got json-like output: %s", output)
		}
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := config.LogConfig{Level: "error", Format: "json"}
		log := New(cfg, &buf)

		testErr := errors.New("test error")
		log.Error(testErr, "an error occurred")

		output := buf.String()
		var logEntry map[string]interface{}
		if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
			t.Fatalf("failed to unmarshal log output as json: %v\noutput: %s", err, output)
		}

		if logEntry["level"] != "error" {
			t.Errorf("expected log level 'error', got '%v'", logEntry["level"])
		}
		if logEntry["message"] != "an error occurred" {
			t.Errorf("expected message 'an error occurred', got '%v'", logEntry["message"])
		}
		if logEntry["error"] != "test error" {
			t.Errorf("expected error 'test error', got '%v'", logEntry["error"])
		}
	})

	t.Run("log level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := config.LogConfig{Level: "warn", Format: "console"}
		log := New(cfg, &buf)

		log.Info("this should be ignored")
		log.Warn("this should appear")

		output := buf.String()
		if strings.Contains(output, "this should be ignored") {
			t.Error("info level log should have been ignored")
		}
		if !strings.Contains(output, "this should appear") {
			t.Error("warn level log should have appeared")
		}
	})

	t.Run("with fields", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := config.LogConfig{Level: "debug", Format: "json"}
		log := New(cfg, &buf).With(map[string]interface{}{"component": "seed"})

		log.Debug("catalog current")

		var logEntry map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
			t.Fatalf("failed to unmarshal log output as json: %v\noutput: %s", err, buf.String())
		}
		if logEntry["component"] != "seed" {
			t.Errorf("expected component 'seed', got '%v'", logEntry["component"])
		}
		if logEntry["level"] != "debug" {
			t.Errorf("expected level 'debug', got '%v'", logEntry["level"])
		}
	})

	t.Run("file sink", func(t *testing.T) {
		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "vivo.log")
		cfg := config.LogConfig{Level: "info", Format: "json", File: path, MaxSizeMB: 1}
		log := New(cfg, &buf)

		log.Info("written twice")

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		if !strings.Contains(string(content), "written twice") {
			t.Errorf("expected log file to contain the message, got '%s'", content)
		}
		if !strings.Contains(buf.String(), "written twice") {
			t.Errorf("expected primary output to contain the message, got '%s'", buf.String())
		}
	})
}
