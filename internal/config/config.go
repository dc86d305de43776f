package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Describe backends.
const (
	BackendExec  = "exec"
	BackendGoGit = "go-git"
)

type Config struct {
	// RepoDir is the checkout to describe. Empty means the directory the
	// binary was built from.
	RepoDir         string        `mapstructure:"repo_dir"`
	GitBinary       string        `mapstructure:"git_binary"`
	DescribeTimeout time.Duration `mapstructure:"describe_timeout"`
	Backend         string        `mapstructure:"backend"`
	LogLevel        string        `mapstructure:"log_level"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		RepoDir:         "",
		GitBinary:       "git",
		DescribeTimeout: 5 * time.Second,
		Backend:         BackendExec,
		LogLevel:        "warn",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.GitBinary == "" {
		return fmt.Errorf("git_binary cannot be empty")
	}
	if strings.ContainsAny(c.GitBinary, " \t\n;|&") {
		return fmt.Errorf("git_binary contains invalid characters: %q", c.GitBinary)
	}
	if c.DescribeTimeout <= 0 {
		return fmt.Errorf("describe_timeout must be positive, got %v", c.DescribeTimeout)
	}
	switch c.Backend {
	case BackendExec, BackendGoGit:
	default:
		return fmt.Errorf("invalid backend %q: expected %s or %s", c.Backend, BackendExec, BackendGoGit)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log_level: %w", err)
	}
	return lvl, nil
}

// LoadConfig reads .versioninfo.yaml from dir (if present) and VERSIONINFO_*
// environment variables.
func LoadConfig(fs afero.Fs, dir string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName(".versioninfo")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	// Configure environment variables
	v.SetEnvPrefix("VERSIONINFO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("git_binary", "VERSIONINFO_GIT_BINARY", "GIT_BINARY"); err != nil {
		return nil, fmt.Errorf("failed to bind git_binary env: %w", err)
	}
	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("repo_dir", defaults.RepoDir)
	v.SetDefault("git_binary", defaults.GitBinary)
	v.SetDefault("describe_timeout", defaults.DescribeTimeout)
	v.SetDefault("backend", defaults.Backend)
	v.SetDefault("log_level", defaults.LogLevel)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
