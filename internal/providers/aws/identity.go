package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// CallerIdentity represents AWS caller identity information
type CallerIdentity struct {
	Account string
	Arn     string
	UserID  string
}

// IdentityService resolves who a key pair belongs to
type IdentityService struct {
	client STSClientAPI
	region string
}

// NewIdentityServiceWithClient creates a new IdentityService with a provided client
func NewIdentityServiceWithClient(client STSClientAPI, region string) *IdentityService {
	return &IdentityService{
		client: client,
		region: region,
	}
}

// GetCallerIdentity returns the identity behind the configured credentials
func (s *IdentityService) GetCallerIdentity(ctx context.Context) (*CallerIdentity, error) {
	output, err := s.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, ClassifyAWSError(err, STSResourceType, s.region)
	}

	return &CallerIdentity{
		Account: aws.ToString(output.Account),
		Arn:     aws.ToString(output.Arn),
		UserID:  aws.ToString(output.UserId),
	}, nil
}
