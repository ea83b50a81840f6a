package aws

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestClassifyAWSError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCategory
	}{
		{"Auth failure code", &smithy.GenericAPIError{Code: "AuthFailure"}, ErrPermissionDenied},
		{"Unauthorized operation", errors.New("api error UnauthorizedOperation: You are not authorized"), ErrPermissionDenied},
		{"Invalid token", errors.New("InvalidClientTokenId: The security token included in the request is invalid"), ErrPermissionDenied},
		{"Bad signature", &smithy.GenericAPIError{Code: "SignatureDoesNotMatch"}, ErrPermissionDenied},
		{"Throttled", &smithy.GenericAPIError{Code: "RequestLimitExceeded"}, ErrThrottling},
		{"Invalid parameter", errors.New("InvalidParameterValue: bad filter"), ErrInvalidInput},
		{"DNS failure", errors.New("dial tcp: lookup ec2.nowhere-1.amazonaws.com: no such host"), ErrNetworkError},
		{"Deadline", fmt.Errorf("operation error EC2: DescribeInstances, %w", context.DeadlineExceeded), ErrNetworkError},
		{"Cancelled", fmt.Errorf("operation error EC2: DescribeInstances, %w", context.Canceled), ErrCanceled},
		{"Missing region", errors.New("could not find region configuration"), ErrConfigurationError},
		{"Unknown", errors.New("something odd"), ErrInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyAWSError(tt.err, EC2ResourceType, "us-east-1")
			assert.Equal(t, tt.expected, classified.Category)
			assert.Equal(t, tt.err, classified.Unwrap())
		})
	}
}

func TestClassifyAWSError_Nil(t *testing.T) {
	assert.Nil(t, ClassifyAWSError(nil, EC2ResourceType, ""))
}

func TestClassifyAWSError_KeepsClassifiedError(t *testing.T) {
	original := NewAWSError(ErrThrottling, EC2ResourceType, "us-east-1", "Request throttled", nil)
	wrapped := fmt.Errorf("attempt failed: %w", original)

	assert.Same(t, original, ClassifyAWSError(wrapped, STSResourceType, "eu-west-1"))
}

func TestError_Error(t *testing.T) {
	withID := NewAWSError(ErrPermissionDenied, EC2ResourceType, "us-east-1", "Access denied", errors.New("AuthFailure"))
	assert.Equal(t, "permission_denied: Access denied: AuthFailure [resource: EC2/us-east-1]", withID.Error())

	withType := NewAWSError(ErrInvalidInput, EC2ResourceType, "", "region is required", nil)
	assert.Equal(t, "invalid_input: region is required [resource type: EC2]", withType.Error())

	bare := NewAWSError(ErrInternalError, "", "", "boom", nil)
	assert.Equal(t, "internal_error: boom", bare.Error())
}

func TestIsErrorCategory(t *testing.T) {
	err := NewAWSError(ErrNetworkError, EC2ResourceType, "", "down", nil)

	assert.True(t, IsErrorCategory(err, ErrNetworkError))
	assert.True(t, IsErrorCategory(fmt.Errorf("outer: %w", err), ErrNetworkError))
	assert.False(t, IsErrorCategory(err, ErrThrottling))
	assert.False(t, IsErrorCategory(nil, ErrNetworkError))
	assert.False(t, IsErrorCategory(errors.New("plain"), ErrNetworkError))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewAWSError(ErrThrottling, "", "", "", nil)))
	assert.True(t, IsRetryable(NewAWSError(ErrNetworkError, "", "", "", nil)))
	assert.False(t, IsRetryable(NewAWSError(ErrPermissionDenied, "", "", "", nil)))
	assert.False(t, IsRetryable(NewAWSError(ErrInvalidInput, "", "", "", nil)))
	assert.False(t, IsRetryable(NewAWSError(ErrCanceled, "", "", "", nil)))
	assert.False(t, IsRetryable(errors.New("plain")))
}
