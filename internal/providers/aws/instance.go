package aws

import (
	"context"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"ec2inventory/internal/credentials"
	"ec2inventory/internal/models"
	"ec2inventory/pkg/logging"
)

const (
	nameTagKey        = "Name"
	stateFilterName   = "instance-state-name"
	defaultRetryDelay = 2 * time.Second
)

// ClientFactory creates an EC2 client scoped to a region and key pair.
type ClientFactory func(ctx context.Context, region string, creds credentials.Credentials) (EC2ClientAPI, error)

// InstanceService handles interactions with AWS EC2 instances
type InstanceService struct {
	newClient  ClientFactory
	logger     logging.Logger
	timeout    time.Duration
	attempts   uint
	retryDelay time.Duration
}

// ServiceOption allows customizing the InstanceService
type ServiceOption func(*InstanceService)

// WithClientFactory overrides how EC2 clients are created
func WithClientFactory(factory ClientFactory) ServiceOption {
	return func(s *InstanceService) {
		s.newClient = factory
	}
}

// WithClient makes the service use a fixed client regardless of region and credentials
func WithClient(client EC2ClientAPI) ServiceOption {
	return WithClientFactory(func(context.Context, string, credentials.Credentials) (EC2ClientAPI, error) {
		return client, nil
	})
}

// WithLogger sets the logger
func WithLogger(logger logging.Logger) ServiceOption {
	return func(s *InstanceService) {
		s.logger = logger
	}
}

// WithTimeout bounds the listing query. Zero disables the bound.
func WithTimeout(timeout time.Duration) ServiceOption {
	return func(s *InstanceService) {
		s.timeout = timeout
	}
}

// WithRetries sets how many extra attempts are made after a retryable failure.
func WithRetries(retries int, delay time.Duration) ServiceOption {
	return func(s *InstanceService) {
		if retries < 0 {
			retries = 0
		}
		s.attempts = uint(retries) + 1
		s.retryDelay = delay
	}
}

// NewInstanceService creates a new InstanceService with the given options
func NewInstanceService(opts ...ServiceOption) *InstanceService {
	s := &InstanceService{
		newClient:  NewEC2Client,
		logger:     logging.NewDefaultLogger(),
		attempts:   1,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewInstanceServiceWithClient creates a new InstanceService with a provided client
func NewInstanceServiceWithClient(client EC2ClientAPI, opts ...ServiceOption) *InstanceService {
	return NewInstanceService(append([]ServiceOption{WithClient(client)}, opts...)...)
}

// ListInstances returns every running or stopped instance in the region.
// Failures never escape as errors: they are logged and reported through
// ListResult.Err with an empty record set.
func (s *InstanceService) ListInstances(ctx context.Context, region string, creds credentials.Credentials) models.ListResult {
	region = strings.TrimSpace(region)
	if region == "" {
		return s.fail(region, NewAWSError(ErrInvalidInput, EC2ResourceType, "", "region is required", nil))
	}

	client, err := s.newClient(ctx, region, creds)
	if err != nil {
		return s.fail(region, ClassifyAWSError(err, EC2ResourceType, region))
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String(stateFilterName),
				Values: models.InstanceStates,
			},
		},
	}

	var resp *ec2.DescribeInstancesOutput
	err = retry.Do(
		func() error {
			out, err := client.DescribeInstances(ctx, input)
			if err != nil {
				return ClassifyAWSError(err, EC2ResourceType, region)
			}
			resp = out
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(s.retryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsRetryable),
		retry.OnRetry(func(n uint, err error) {
			s.logger.Warn("Attempt %d to list EC2 instances in %s failed: %v", n+1, region, err)
		}),
	)
	if err != nil {
		return s.fail(region, ClassifyAWSError(err, EC2ResourceType, region))
	}

	records := s.toRecords(resp)
	s.logger.Info("Found %d EC2 instances in %s", len(records), region)

	return models.ListResult{Records: records}
}

// fail logs the failure and builds the empty result carrying it.
func (s *InstanceService) fail(region string, err *Error) models.ListResult {
	s.logger.Error("An error occurred while listing EC2 instances in %q: %v", region, err)
	return models.ListResult{
		Records: []models.InstanceRecord{},
		Err:     err,
	}
}

// toRecords flattens the reservations in provider order.
func (s *InstanceService) toRecords(resp *ec2.DescribeInstancesOutput) []models.InstanceRecord {
	records := make([]models.InstanceRecord, 0)
	if resp == nil {
		return records
	}

	for _, reservation := range resp.Reservations {
		for _, instance := range reservation.Instances {
			record, ok := toRecord(instance)
			if !ok {
				s.logger.Warn("Skipping EC2 instance without an instance ID")
				continue
			}
			records = append(records, record)
		}
	}
	return records
}

// toRecord converts an EC2 instance to an inventory record
func toRecord(instance types.Instance) (models.InstanceRecord, bool) {
	instanceID := aws.ToString(instance.InstanceId)
	if instanceID == "" {
		return models.InstanceRecord{}, false
	}

	record := models.InstanceRecord{
		Name:         nameFromTags(instance.Tags),
		InstanceID:   instanceID,
		InstanceType: string(instance.InstanceType),
		PublicIP:     aws.ToString(instance.PublicIpAddress),
		PrivateIP:    aws.ToString(instance.PrivateIpAddress),
		KeyName:      aws.ToString(instance.KeyName),
		Platform:     string(instance.Platform),
		Architecture: string(instance.Architecture),
	}

	if instance.State != nil {
		record.State = string(instance.State.Name)
	}

	return record, true
}

// nameFromTags returns the value of the first "Name" tag, or UnknownName
func nameFromTags(tags []types.Tag) string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == nameTagKey {
			return aws.ToString(tag.Value)
		}
	}
	return models.UnknownName
}
