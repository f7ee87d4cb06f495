package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AWS_REGION", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, MirrorNone, cfg.ActivityMirror)
	assert.Equal(t, "ActivityEvents", cfg.ActivityTable)
	assert.Equal(t, "Users", cfg.UsersTable)
	assert.Equal(t, 1000, cfg.ActivityRetention)
	assert.Equal(t, 2*time.Second, cfg.MirrorTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.AWSEnabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("ACTIVITY_MIRROR", "dynamo")
	t.Setenv("MIRROR_TIMEOUT", "500ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://vibin.app,https://admin.vibin.app")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, MirrorDynamo, cfg.ActivityMirror)
	assert.Equal(t, 500*time.Millisecond, cfg.MirrorTimeout)
	assert.Equal(t, []string{"https://vibin.app", "https://admin.vibin.app"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.AWSEnabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unknown mirror", map[string]string{"ACTIVITY_MIRROR": "redis"}, "ACTIVITY_MIRROR"},
		{"dynamo without region", map[string]string{"ACTIVITY_MIRROR": "dynamo"}, "AWS_REGION"},
		{"sql without url", map[string]string{"ACTIVITY_MIRROR": "sql"}, "DATABASE_URL"},
		{"sql unknown driver", map[string]string{"ACTIVITY_MIRROR": "sql", "DATABASE_URL": "x", "DATABASE_DRIVER": "oracle"}, "DATABASE_DRIVER"},
		{"zero retention", map[string]string{"ACTIVITY_RETENTION": "0"}, "ACTIVITY_RETENTION"},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"unparsable timeout", map[string]string{"MIRROR_TIMEOUT": "soon"}, "parse env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AWS_REGION", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
