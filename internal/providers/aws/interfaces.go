package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"ec2inventory/internal/credentials"
	"ec2inventory/internal/models"
)

// EC2ClientAPI defines the interface for EC2 operations we need to mock
//
//go:generate mockery --name=EC2ClientAPI --output=./mocks
type EC2ClientAPI interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// STSClientAPI defines the interface for STS operations we need to mock
//
//go:generate mockery --name=STSClientAPI --output=./mocks
type STSClientAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// InstanceLister defines the interface for listing inventory instances
//
//go:generate mockery --name=InstanceLister --output=./mocks
type InstanceLister interface {
	ListInstances(ctx context.Context, region string, creds credentials.Credentials) models.ListResult
}
