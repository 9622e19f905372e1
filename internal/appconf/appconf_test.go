package appconf

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	tests := []struct {
		flag string
		want Environment
	}{
		{"test", Test},
		{"production", Production},
		{"PROD", Production},
		{"development", Development},
		{"staging", Development},
		{"", Development},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, EnvFlagToEnvironment(tt.flag))
		})
	}

	assert.Equal(t, "test", Test.String())
	assert.Equal(t, "production", Production.String())
	assert.Equal(t, "development", Development.String())
}

func TestConfigLocation(t *testing.T) {
	assert.Equal(t, time.Local, Config{}.Location())
	assert.Equal(t, time.Local, Config{TimeZone: "Not/AZone"}.Location())
	assert.Equal(t, "UTC", Config{TimeZone: "UTC"}.Location().String())
}

func TestConfigSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Config{LogLevel: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "WARN"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "verbose"}.SlogLevel())
}

func TestParseAPIKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseAPIKeys(" a, ,b ,"))
	assert.Nil(t, ParseAPIKeys(""))
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TASACION_TEST_STRING", "value")
	t.Setenv("TASACION_TEST_INT", "42")
	t.Setenv("TASACION_TEST_BAD_INT", "forty-two")

	assert.Equal(t, "value", EnvString("TASACION_TEST_STRING", "default"))
	assert.Equal(t, "default", EnvString("TASACION_TEST_UNSET", "default"))
	assert.Equal(t, 42, EnvInt("TASACION_TEST_INT", 7))
	assert.Equal(t, 7, EnvInt("TASACION_TEST_BAD_INT", 7))
}
