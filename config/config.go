package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/ff/v3"
)

// EnvPrefix prefixes the environment variables mirroring each flag, e.g. HAPPYVIBE_LISTEN.
const EnvPrefix = "HAPPYVIBE"

const defaultOutputName = "index.html"

// Config encapsulates runtime options. JSON keys match flag names so that a
// config file written from a Config round-trips through ff.JSONParser.
type Config struct {
	Listen     string `json:"listen"`
	OutputPath string `json:"output"`
	LogLevel   string `json:"log-level"`
	Minify     bool   `json:"minify"`
	Build      bool   `json:"build"`
	EnableTLS  bool   `json:"tls"`
	TLSCert    string `json:"tls-cert"`
	TLSKey     string `json:"tls-key"`
}

// Load builds a Config from command line arguments, HAPPYVIBE_* environment
// variables and an optional JSON file named by -config, in that order of precedence.
func Load(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("happy-vibe", flag.ContinueOnError)
	fs.StringVar(&cfg.Listen, "listen", "", "listen address, host:port or unix:/path/to.sock")
	fs.StringVar(&cfg.OutputPath, "output", "", "file the rendered page is written to")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "debug, info, warn or error")
	fs.BoolVar(&cfg.Minify, "minify", false, "minify the page before serving and writing it")
	fs.BoolVar(&cfg.Build, "build", false, "write the page and exit without serving")
	fs.BoolVar(&cfg.EnableTLS, "tls", false, "serve HTTPS")
	fs.StringVar(&cfg.TLSCert, "tls-cert", "", "TLS certificate file")
	fs.StringVar(&cfg.TLSKey, "tls-key", "", "TLS private key file")
	_ = fs.String("config", "", "optional JSON config file")

	if err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix(EnvPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
	); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a Config with every field at its default value.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	c.Listen = strings.TrimSpace(c.Listen)
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	c.OutputPath = strings.TrimSpace(c.OutputPath)
	if c.OutputPath == "" {
		c.OutputPath = filepath.Join(os.TempDir(), defaultOutputName)
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.TLSCert = strings.TrimSpace(c.TLSCert)
	c.TLSKey = strings.TrimSpace(c.TLSKey)
}

func (c *Config) validate() error {
	if strings.HasSuffix(c.OutputPath, "/") || strings.HasSuffix(c.OutputPath, string(filepath.Separator)) {
		return fmt.Errorf("output path %q must name a file", c.OutputPath)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	if c.EnableTLS {
		if c.TLSCert == "" || c.TLSKey == "" {
			return fmt.Errorf("tls enabled but certificates missing")
		}
	}
	return nil
}
