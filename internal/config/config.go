package config

import (
	"crypto/tls"
	"fmt"
	"os"
	"strings"

	"github.com/innoalumni/portalkit/internal/common"
	"github.com/innoalumni/portalkit/internal/httpc"
	"github.com/innoalumni/portalkit/internal/notify"
	"github.com/innoalumni/portalkit/internal/request"
	"gopkg.in/yaml.v3"
)

type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // error, warn, info, debug
	Format string `mapstructure:"format" yaml:"format"` // text, json, color
}

type ClientConfig struct {
	// Explicit options only
	Insecure      bool   `mapstructure:"insecure" yaml:"insecure"`
	MinTLSVersion string `mapstructure:"min_tls_version" yaml:"min_tls_version"`
	MaxTLSVersion string `mapstructure:"max_tls_version" yaml:"max_tls_version"`
}

type NotifyConfig struct {
	// Notifier type key (e.g., "log", "webhook")
	Type string `mapstructure:"type" yaml:"type"`
	// Notifier-specific configuration
	Config map[string]interface{} `mapstructure:"config" yaml:"config"`
}

type HistoryConfig struct {
	Disabled bool   `mapstructure:"disabled" yaml:"disabled"`
	Path     string `mapstructure:"path" yaml:"path"`
}

// ConfigDoc is the on-disk configuration for portalctl.
type ConfigDoc struct {
	BackendURL string        `mapstructure:"backend_url" yaml:"backend_url"`
	Port       string        `mapstructure:"port" yaml:"port"`
	Client     ClientConfig  `mapstructure:"client" yaml:"client"`
	Logging    LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Notify     NotifyConfig  `mapstructure:"notify" yaml:"notify"`
	History    HistoryConfig `mapstructure:"history" yaml:"history"`
}

// Load reads and parses the YAML config at path. A missing file is not an
// error: every field has an environment or built-in fallback.
func Load(path string) (*ConfigDoc, error) {
	var doc ConfigDoc
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &doc, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &doc, nil
}

// BaseURL resolves the backend address: explicit config first, then the
// BACKEND_URL / PORT environment contract.
func (c *ConfigDoc) BaseURL() string {
	if u := strings.TrimSpace(c.BackendURL); u != "" {
		return u
	}
	if u := os.Getenv("BACKEND_URL"); u != "" {
		return u
	}
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = request.DefaultPort
	}
	return "http://0.0.0.0:" + port
}

// TLSConfig translates the client block into a tls.Config, nil when the
// block is empty.
func (c *ConfigDoc) TLSConfig() *tls.Config {
	minV := httpc.ParseTLSVersion(strings.ToLower(strings.TrimSpace(c.Client.MinTLSVersion)))
	maxV := httpc.ParseTLSVersion(strings.ToLower(strings.TrimSpace(c.Client.MaxTLSVersion)))
	if minV == 0 && maxV == 0 && !c.Client.Insecure {
		return nil
	}
	// #nosec G402 -- InsecureSkipVerify is operator-requested for local stubs
	return &tls.Config{MinVersion: minV, MaxVersion: maxV, InsecureSkipVerify: c.Client.Insecure}
}

// NewLogger builds the logger described by the logging block.
func (c *ConfigDoc) NewLogger() *common.Logger {
	level := common.ParseLogLevel(strings.ToLower(strings.TrimSpace(c.Logging.Level)))
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "json":
		return common.NewJSONLogger(level)
	case "color":
		return common.NewColorLogger(level)
	default:
		return common.NewLogger(level)
	}
}

// Notifier builds the configured notifier, defaulting to the log notifier.
func (c *ConfigDoc) Notifier() (notify.Notifier, error) {
	return notify.New(c.Notify.Type, c.Notify.Config)
}

// Sender assembles a request sender from the document.
func (c *ConfigDoc) Sender() (*request.Sender, error) {
	n, err := c.Notifier()
	if err != nil {
		return nil, err
	}
	return request.New(request.Config{
		BaseURL:  c.BaseURL(),
		TLS:      c.TLSConfig(),
		Notifier: n,
	}), nil
}
