//go:build unit
// +build unit

package logger

import (
	"testing"

	"github.com/dannykhan02/Ticketing-system/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Console(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	log, err := newLogger(settings)
	require.NoError(t, err)
	assert.IsType(t, &ConsoleLogger{}, log)
}

func TestNewLogger_File(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel:   config.LogLevelDebug,
		LogType:    config.LogTypeFile,
		FilePath:   t.TempDir() + "/rest.log",
		MaxSize:    5,
		MaxBackups: 2,
		MaxAge:     7,
	}

	log, err := newLogger(settings)
	require.NoError(t, err)
	assert.IsType(t, &FileLogger{}, log)
}

func TestNewLogger_InvalidSettings(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel: "chatty",
		LogType:  config.LogTypeConsole,
	}

	_, err := newLogger(settings)
	assert.Error(t, err)
}

func TestGetLogger_BeforeInit(t *testing.T) {
	// The singleton may have been initialized by another test; only assert
	// the error path when it is still unset.
	if loggerInstance != nil {
		t.Skip("logger already initialized in this process")
	}

	_, err := GetLogger()
	assert.Error(t, err)
}
