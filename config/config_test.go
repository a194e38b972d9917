package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, filepath.Join(os.TempDir(), "index.html"), cfg.OutputPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Minify)
	assert.False(t, cfg.Build)
	assert.False(t, cfg.EnableTLS)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Flags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "page.html")
	cfg, err := Load([]string{"-listen", "127.0.0.1:9000", "-output", out, "-log-level", "DEBUG", "-minify", "-build"})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, out, cfg.OutputPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Minify)
	assert.True(t, cfg.Build)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("HAPPYVIBE_LISTEN", ":7000")
	t.Setenv("HAPPYVIBE_LOG_LEVEL", "warn")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Listen)
	assert.Equal(t, "warn", cfg.LogLevel)

	// Flags win over the environment.
	cfg, err = Load([]string{"-listen", ":7001"})
	require.NoError(t, err)
	assert.Equal(t, ":7001", cfg.Listen)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "site", "index.html")
	file := filepath.Join(dir, "config.json")
	body := `{"listen": "unix:` + filepath.Join(dir, "vibe.sock") + `", "output": "` + out + `", "minify": true}`
	require.NoError(t, os.WriteFile(file, []byte(body), 0o644))

	cfg, err := Load([]string{"-config", file})
	require.NoError(t, err)
	assert.Equal(t, "unix:"+filepath.Join(dir, "vibe.sock"), cfg.Listen)
	assert.Equal(t, out, cfg.OutputPath)
	assert.True(t, cfg.Minify)
}

func TestLoad_ConfigFileDashedKeys(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	body := `{"log-level": "debug", "tls": true, "tls-cert": "cert.pem", "tls-key": "key.pem"}`
	require.NoError(t, os.WriteFile(file, []byte(body), 0o644))

	cfg, err := Load([]string{"-config", file})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.EnableTLS)
	assert.Equal(t, "cert.pem", cfg.TLSCert)
	assert.Equal(t, "key.pem", cfg.TLSKey)
}

func TestLoad_ConfigFileFromStruct(t *testing.T) {
	dir := t.TempDir()
	want := &Config{
		Listen:     "127.0.0.1:9090",
		OutputPath: filepath.Join(dir, "out", "index.html"),
		LogLevel:   "warn",
		Minify:     true,
		EnableTLS:  true,
		TLSCert:    "cert.pem",
		TLSKey:     "key.pem",
	}
	raw, err := json.Marshal(want)
	require.NoError(t, err)
	file := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(file, raw, 0o644))

	got, err := Load([]string{"-config", file})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load([]string{"-config", filepath.Join(t.TempDir(), "absent.json")})
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][]string{
		"tls without cert":  {"-tls"},
		"tls without key":   {"-tls", "-tls-cert", "cert.pem"},
		"directory output":  {"-output", "/tmp/site/"},
		"unknown log level": {"-log-level", "verbose"},
		"unknown flag":      {"-port", "80"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(args)
			assert.Error(t, err)
		})
	}
}

func TestLoad_TLS(t *testing.T) {
	cfg, err := Load([]string{"-tls", "-tls-cert", " cert.pem ", "-tls-key", "key.pem"})
	require.NoError(t, err)
	assert.True(t, cfg.EnableTLS)
	assert.Equal(t, "cert.pem", cfg.TLSCert)
	assert.Equal(t, "key.pem", cfg.TLSKey)
}
