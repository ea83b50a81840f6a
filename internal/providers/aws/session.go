package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"ec2inventory/internal/credentials"
)

// LoadConfig builds an AWS SDK configuration scoped to one region and key pair.
// The shared config files and environment are ignored for credentials so the
// supplied key pair is the only one ever used.
func LoadConfig(ctx context.Context, region string, creds credentials.Credentials) (aws.Config, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(awscreds.NewStaticCredentialsProvider(
			creds.AccessKeyID,
			creds.SecretAccessKey,
			creds.SessionToken,
		)),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return cfg, nil
}

// NewEC2Client creates an EC2 client for the region and key pair.
func NewEC2Client(ctx context.Context, region string, creds credentials.Credentials) (EC2ClientAPI, error) {
	cfg, err := LoadConfig(ctx, region, creds)
	if err != nil {
		return nil, err
	}
	return ec2.NewFromConfig(cfg), nil
}

// NewSTSClient creates an STS client for the region and key pair.
func NewSTSClient(ctx context.Context, region string, creds credentials.Credentials) (STSClientAPI, error) {
	cfg, err := LoadConfig(ctx, region, creds)
	if err != nil {
		return nil, err
	}
	return sts.NewFromConfig(cfg), nil
}
