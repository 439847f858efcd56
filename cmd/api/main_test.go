package main

import (
	"errors"
	"flag"
	"testing"

	"github.com/BunnyTheLifeguard/hcomp/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		want    config
		wantErr bool
	}{
		{
			name: "defaults",
			want: config{port: 8080, version: "dev-local"},
		},
		{
			name: "environment",
			env:  map[string]string{"PORT": "9090", "VERSION": "1.2.3"},
			want: config{port: 9090, version: "1.2.3"},
		},
		{
			name: "empty variables fall back to defaults",
			env:  map[string]string{"PORT": "", "VERSION": ""},
			want: config{port: 8080, version: "dev-local"},
		},
		{
			name: "flags override environment",
			args: []string{"-port", "3000", "-version", "2.0.0"},
			env:  map[string]string{"PORT": "9090", "VERSION": "1.2.3"},
			want: config{port: 3000, version: "2.0.0"},
		},
		{
			name:    "non-numeric port",
			env:     map[string]string{"PORT": "http"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-env", "production"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseConfig(tt.args, fakeEnv(tt.env))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestParseConfigHelp(t *testing.T) {
	_, err := parseConfig([]string{"-h"}, fakeEnv(nil))
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestValidateConfig(t *testing.T) {
	v := validator.New()
	validateConfig(v, config{port: 8080, version: "dev-local"})
	assert.True(t, v.Valid())

	v = validator.New()
	validateConfig(v, config{port: 70000, version: "1.0.0"})
	assert.Equal(t, map[string]string{"port": "must be between 0 and 65535"}, v.Errors)

	v = validator.New()
	validateConfig(v, config{port: -1, version: "1.0.0"})
	assert.Contains(t, v.Errors, "port")
}

func TestConfigAcceptsEphemeralPortAndOpaqueVersion(t *testing.T) {
	cfg, err := parseConfig(nil, fakeEnv(map[string]string{"PORT": "0", "VERSION": "  "}))
	require.NoError(t, err)
	assert.Equal(t, config{port: 0, version: "  "}, cfg)

	v := validator.New()
	validateConfig(v, cfg)
	assert.True(t, v.Valid(), "errors: %v", v.Errors)

	cfg, err = parseConfig([]string{"-version", " "}, fakeEnv(nil))
	require.NoError(t, err)

	v = validator.New()
	validateConfig(v, cfg)
	assert.True(t, v.Valid())
}
