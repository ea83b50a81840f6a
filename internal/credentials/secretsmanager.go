package credentials

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsManagerAPI is the subset of the Secrets Manager client in use.
//
//go:generate mockery --name=SecretsManagerAPI --output=./mocks
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// secretPayload is the JSON document stored in the secret.
type secretPayload struct {
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key"`
	SessionToken    string `json:"session_token,omitempty"`
}

// SecretsManagerSource reads the key pair from an AWS Secrets Manager secret.
// The secret itself is fetched with the default AWS credential chain.
type SecretsManagerSource struct {
	secretID string
	region   string
	client   SecretsManagerAPI
}

// NewSecretsManagerSource creates a source for the given secret.
func NewSecretsManagerSource(secretID, region string) *SecretsManagerSource {
	return &SecretsManagerSource{
		secretID: secretID,
		region:   region,
	}
}

// NewSecretsManagerSourceWithClient creates a source using a provided client.
func NewSecretsManagerSourceWithClient(secretID string, client SecretsManagerAPI) *SecretsManagerSource {
	return &SecretsManagerSource{
		secretID: secretID,
		client:   client,
	}
}

// Name implements Source.
func (s *SecretsManagerSource) Name() string {
	return string(KindSecretsManager)
}

// Retrieve implements Source.
func (s *SecretsManagerSource) Retrieve(ctx context.Context) (Credentials, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return Credentials{}, err
	}

	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretID),
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read secret %s: %w", s.secretID, err)
	}

	if out.SecretString == nil {
		return Credentials{}, fmt.Errorf("%w: secret %s has no string value", ErrMissingCredentials, s.secretID)
	}

	var payload secretPayload
	if err := json.Unmarshal([]byte(aws.ToString(out.SecretString)), &payload); err != nil {
		return Credentials{}, fmt.Errorf("secret %s is not a valid credentials document: %w", s.secretID, err)
	}

	if payload.AccessKeyID == "" || payload.SecretAccessKey == "" {
		return Credentials{}, fmt.Errorf("%w: secret %s lacks access_key_id or secret_access_key", ErrMissingCredentials, s.secretID)
	}

	return Credentials{
		AccessKeyID:     payload.AccessKeyID,
		SecretAccessKey: payload.SecretAccessKey,
		SessionToken:    payload.SessionToken,
	}, nil
}

func (s *SecretsManagerSource) getClient(ctx context.Context) (SecretsManagerAPI, error) {
	if s.client != nil {
		return s.client, nil
	}

	var configOpts []func(*config.LoadOptions) error
	if s.region != "" {
		configOpts = append(configOpts, config.WithRegion(s.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	s.client = secretsmanager.NewFromConfig(cfg)
	return s.client, nil
}
