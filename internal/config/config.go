package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ec2inventory/internal/credentials"
)

// Keys shared by flags, environment variables and the config file.
const (
	KeyConfig      = "config"
	KeyRegion      = "region"
	KeyOutputDir   = "output-dir"
	KeyCredentials = "credentials"
	KeyAccessKey   = "access-key"
	KeySecretKey   = "secret-key"
	KeySecretID    = "secret-id"
	KeyTimeout     = "timeout"
	KeyRetries     = "retries"
	KeyLogLevel    = "log-level"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. EC2INVENTORY_REGION.
	EnvPrefix = "EC2INVENTORY"

	defaultDirName  = "IDI"
	defaultLogLevel = "info"
	configDirName   = "ec2inventory"
	configFileName  = "config.hcl"
)

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

// Config holds the resolved settings for one run.
type Config struct {
	Region           string
	OutputDir        string
	CredentialSource credentials.Kind
	AccessKey        string
	SecretKey        string
	SecretID         string
	Timeout          time.Duration
	Retries          int
	LogLevel         string
	// File is the config file that was read, empty when none was.
	File string
}

// String implements fmt.Stringer without the key pair.
func (c Config) String() string {
	return fmt.Sprintf("Config{Region: %q, OutputDir: %q, CredentialSource: %s, AccessKey: %s, SecretID: %q, Timeout: %s, Retries: %d, LogLevel: %s}",
		c.Region, c.OutputDir, c.CredentialSource, credentials.MaskKey(c.AccessKey), c.SecretID, c.Timeout, c.Retries, c.LogLevel)
}

// DefaultOutputDir returns $HOME/IDI, or ./IDI when the home directory is unknown.
func DefaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return defaultDirName
	}
	return filepath.Join(home, defaultDirName)
}

// DefaultConfigPath returns the config file read when --config is not given.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configDirName, configFileName)
}

// RegisterFlags adds every configuration flag to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "Path to an HCL config file (default "+DefaultConfigPath()+")")
	fs.StringP(KeyRegion, "r", "", "AWS region to inventory (prompted when empty)")
	fs.StringP(KeyOutputDir, "o", "", "Directory the report is written to (default "+DefaultOutputDir()+")")
	fs.String(KeyCredentials, "", "Credential source: prompt, env, static or secretsmanager")
	fs.String(KeyAccessKey, "", "AWS access key id (static source)")
	fs.String(KeySecretKey, "", "AWS secret access key (static source)")
	fs.String(KeySecretID, "", "Secrets Manager secret holding the key pair")
	fs.Duration(KeyTimeout, 0, "Timeout for the listing query, 0 for none")
	fs.Int(KeyRetries, 0, "Extra attempts after a retryable listing failure")
	fs.String(KeyLogLevel, defaultLogLevel, "Log level: debug, info, warn or error")
}

// Load resolves the configuration with flag > environment > file > default
// precedence. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyOutputDir, DefaultOutputDir())
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyTimeout, time.Duration(0))
	v.SetDefault(KeyRetries, 0)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	path, explicit := v.GetString(KeyConfig), true
	if path == "" {
		path, explicit = DefaultConfigPath(), false
	}

	file := ""
	if path != "" {
		values, err := readFile(path, explicit)
		if err != nil {
			return nil, err
		}
		if values != nil {
			if err := v.MergeConfigMap(values); err != nil {
				return nil, fmt.Errorf("failed to merge config file %s: %w", path, err)
			}
			file = path
		}
	}

	cfg := &Config{
		Region:           strings.TrimSpace(v.GetString(KeyRegion)),
		OutputDir:        v.GetString(KeyOutputDir),
		CredentialSource: credentials.Kind(strings.ToLower(strings.TrimSpace(v.GetString(KeyCredentials)))),
		AccessKey:        v.GetString(KeyAccessKey),
		SecretKey:        v.GetString(KeySecretKey),
		SecretID:         v.GetString(KeySecretID),
		Timeout:          v.GetDuration(KeyTimeout),
		Retries:          v.GetInt(KeyRetries),
		LogLevel:         strings.ToLower(v.GetString(KeyLogLevel)),
		File:             file,
	}

	if cfg.CredentialSource == "" {
		cfg.CredentialSource = inferSource(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readFile returns nil values when an implicit config file does not exist.
func readFile(path string, explicit bool) (map[string]interface{}, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return ParseFile(path)
}

// inferSource picks static when a key was supplied, the prompt otherwise.
func inferSource(cfg *Config) credentials.Kind {
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		return credentials.KindStatic
	}
	if cfg.SecretID != "" {
		return credentials.KindSecretsManager
	}
	return credentials.KindPrompt
}

// Validate checks the resolved settings for consistency.
func (c *Config) Validate() error {
	if _, err := credentials.ParseKind(string(c.CredentialSource)); err != nil {
		return err
	}

	switch c.CredentialSource {
	case credentials.KindStatic:
		if c.AccessKey == "" || c.SecretKey == "" {
			return fmt.Errorf("static credentials need both --%s and --%s: %w", KeyAccessKey, KeySecretKey, credentials.ErrMissingCredentials)
		}
	case credentials.KindSecretsManager:
		if c.SecretID == "" {
			return fmt.Errorf("secretsmanager credentials need --%s", KeySecretID)
		}
	}

	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output directory cannot be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative: %s", c.Timeout)
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries cannot be negative: %d", c.Retries)
	}

	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
