package logger

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{OFF, "OFF"},
		{Level(999), "UNKNOWN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.level.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		loggerLevel  Level
		messageLevel Level
		shouldLog    bool
	}{
		{DEBUG, DEBUG, true},
		{DEBUG, ERROR, true},
		{INFO, DEBUG, false},
		{INFO, INFO, true},
		{WARN, INFO, false},
		{WARN, WARN, true},
		{ERROR, WARN, false},
		{ERROR, ERROR, true},
		{OFF, ERROR, false},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		log := NewLogger(tt.loggerLevel, &buf)
		switch tt.messageLevel {
		case DEBUG:
			log.Debug("m")
		case INFO:
			log.Info("m")
		case WARN:
			log.Warn("m")
		case ERROR:
			log.Error("m")
		}
		assert.Equal(t, tt.shouldLog, buf.Len() > 0,
			"logger %s message %s", tt.loggerLevel, tt.messageLevel)
	}
}

func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(INFO, &buf)
	log.Info("analyzing %d queries", 3)
	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "analyzing 3 queries")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(DEBUG, &buf)
	log.SetLevel(ERROR)
	log.Debug("d")
	log.Warn("w")
	assert.Zero(t, buf.Len())
	log.Error("e")
	assert.Contains(t, buf.String(), "[ERROR]")
}

func TestDiscardLogger(t *testing.T) {
	log := NewDiscardLogger()
	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")
	log.SetLevel(DEBUG)
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	var buf bytes.Buffer
	SetDefault(NewLogger(DEBUG, &buf))
	Debug("global debug")
	Info("global info")
	Warn("global warn")
	Error("global error")

	out := buf.String()
	for _, msg := range []string{"global debug", "global info", "global warn", "global error"} {
		assert.Contains(t, out, msg)
	}
}

func TestConcurrentLogging(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(INFO, &buf)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			log.Info("message %d", id)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 10, bytes.Count(buf.Bytes(), []byte("message")))
}
