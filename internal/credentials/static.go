package credentials

import (
	"context"
	"fmt"
	"os"
)

// Environment variables read by EnvSource.
const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvSessionToken    = "AWS_SESSION_TOKEN"
)

// StaticSource returns a fixed key pair, typically taken from flags.
type StaticSource struct {
	creds Credentials
}

// NewStaticSource creates a source for the given key pair.
func NewStaticSource(accessKey, secretKey string) *StaticSource {
	return &StaticSource{
		creds: Credentials{AccessKeyID: accessKey, SecretAccessKey: secretKey},
	}
}

// Name implements Source.
func (s *StaticSource) Name() string {
	return string(KindStatic)
}

// Retrieve implements Source.
func (s *StaticSource) Retrieve(_ context.Context) (Credentials, error) {
	if s.creds.AccessKeyID == "" || s.creds.SecretAccessKey == "" {
		return Credentials{}, fmt.Errorf("%w: both access key and secret key must be set", ErrMissingCredentials)
	}
	return s.creds, nil
}

// EnvSource reads the key pair from the standard AWS environment variables.
type EnvSource struct {
	lookup func(string) (string, bool)
}

// NewEnvSource creates a source reading the process environment.
func NewEnvSource() *EnvSource {
	return &EnvSource{lookup: os.LookupEnv}
}

// Name implements Source.
func (s *EnvSource) Name() string {
	return string(KindEnv)
}

// Retrieve implements Source.
func (s *EnvSource) Retrieve(_ context.Context) (Credentials, error) {
	accessKey, _ := s.lookup(EnvAccessKeyID)
	secretKey, _ := s.lookup(EnvSecretAccessKey)
	token, _ := s.lookup(EnvSessionToken)

	if accessKey == "" || secretKey == "" {
		return Credentials{}, fmt.Errorf("%w: %s and %s must be set", ErrMissingCredentials, EnvAccessKeyID, EnvSecretAccessKey)
	}

	return Credentials{
		AccessKeyID:     accessKey,
		SecretAccessKey: secretKey,
		SessionToken:    token,
	}, nil
}
