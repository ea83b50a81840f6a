package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ErrKeyPairInFile is returned when a config file carries access_key or secret_key.
var ErrKeyPairInFile = errors.New("key pairs cannot be stored in the config file, use flags, environment or a secret")

// ParseFile parses an HCL configuration file into the flat key/value map
// merged into viper. Only attributes present in the file appear in the map.
func ParseFile(path string) (map[string]interface{}, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", path, diags.Error())
	}

	if file == nil || file.Body == nil {
		return nil, fmt.Errorf("parsed HCL file is empty or invalid: %s", path)
	}

	var cfg FileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL body %s: %s", path, diags.Error())
	}

	values := make(map[string]interface{})
	setString(values, KeyRegion, cfg.Region)
	setString(values, KeyOutputDir, cfg.OutputDir)
	setString(values, KeyLogLevel, cfg.LogLevel)

	if cfg.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q in %s: %w", cfg.Timeout, path, err)
		}
		values[KeyTimeout] = timeout
	}

	if cfg.Retries != nil {
		values[KeyRetries] = *cfg.Retries
	}

	if cfg.Credentials != nil {
		if cfg.Credentials.AccessKey != nil || cfg.Credentials.SecretKey != nil {
			return nil, fmt.Errorf("%w: %s", ErrKeyPairInFile, path)
		}
		setString(values, KeyCredentials, cfg.Credentials.Source)
		setString(values, KeySecretID, cfg.Credentials.SecretID)
	}

	return values, nil
}

func setString(values map[string]interface{}, key, value string) {
	if value != "" {
		values[key] = value
	}
}
