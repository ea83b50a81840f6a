package aws

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
)

type ErrorCategory string

// Error categories for better error classification and handling
const (
	// ErrPermissionDenied is returned when credentials are rejected or lack permissions
	ErrPermissionDenied ErrorCategory = "permission_denied"

	// ErrThrottling is returned when AWS API throttles the request
	ErrThrottling ErrorCategory = "request_throttled"

	// ErrConfigurationError is returned when there's an issue with AWS configuration
	ErrConfigurationError ErrorCategory = "configuration_error"

	// ErrNetworkError is returned for network-related errors accessing AWS API
	ErrNetworkError ErrorCategory = "network_error"

	// ErrInvalidInput is returned when invalid input is provided
	ErrInvalidInput ErrorCategory = "invalid_input"

	// ErrCanceled is returned when the caller cancelled the request
	ErrCanceled ErrorCategory = "request_canceled"

	// ErrInternalError is returned for unexpected internal errors
	ErrInternalError ErrorCategory = "internal_error"
)

// Resource types reported in errors.
const (
	EC2ResourceType         = "EC2"
	STSResourceType         = "STS"
	CredentialsResourceType = "credentials"
)

// Error represents an error that occurred during AWS operations with
// additional context about what went wrong.
type Error struct {
	// Category for programmatic error handling
	Category ErrorCategory

	// ResourceType identifies the AWS resource type (e.g., EC2, STS)
	ResourceType string

	// ResourceID identifies the region or resource the call was scoped to
	ResourceID string

	// Message provides human-readable details
	Message string

	// Underlying is the wrapped cause of this error
	Underlying error
}

// Error returns a formatted error message
func (e *Error) Error() string {
	msg := e.Message
	if e.Underlying != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	if e.ResourceID != "" {
		return fmt.Sprintf("%s: %s [resource: %s/%s]", e.Category, msg, e.ResourceType, e.ResourceID)
	}
	if e.ResourceType != "" {
		return fmt.Sprintf("%s: %s [resource type: %s]", e.Category, msg, e.ResourceType)
	}
	return fmt.Sprintf("%s: %s", e.Category, msg)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Underlying
}

// NewAWSError creates a new AWS error with the specified details
func NewAWSError(category ErrorCategory, resourceType, resourceID, message string, underlying error) *Error {
	return &Error{
		Category:     category,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Message:      message,
		Underlying:   underlying,
	}
}

// IsErrorCategory checks if an error belongs to a specific error category
func IsErrorCategory(err error, category ErrorCategory) bool {
	if err == nil {
		return false
	}

	var awsErr *Error
	if errors.As(err, &awsErr) {
		return awsErr.Category == category
	}

	return false
}

// IsRetryable reports whether retrying the call may succeed.
func IsRetryable(err error) bool {
	return IsErrorCategory(err, ErrThrottling) ||
		IsErrorCategory(err, ErrNetworkError) ||
		IsErrorCategory(err, ErrInternalError)
}

// ClassifyAWSError classifies an AWS error based on its API error code and message
func ClassifyAWSError(err error, resourceType, resourceID string) *Error {
	if err == nil {
		return nil
	}

	var awsErr *Error
	if errors.As(err, &awsErr) {
		return awsErr
	}

	// Prefer the structured error code when the SDK provides one
	errMsg := err.Error()
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		errMsg = apiErr.ErrorCode() + " " + errMsg
	}

	switch {
	case errors.Is(err, context.Canceled):
		return NewAWSError(ErrCanceled, resourceType, resourceID,
			"Request cancelled", err)

	case errors.Is(err, context.DeadlineExceeded):
		return NewAWSError(ErrNetworkError, resourceType, resourceID,
			"Timed out while accessing AWS API", err)

	// Reference: https://docs.aws.amazon.com/AWSEC2/latest/APIReference/errors-overview.html
	case contains(errMsg, "UnauthorizedOperation", "AuthFailure", "InvalidClientTokenId",
		"SignatureDoesNotMatch", "AccessDenied", "OptInRequired"):
		return NewAWSError(ErrPermissionDenied, resourceType, resourceID,
			"Access denied", err)

	case contains(errMsg, "RequestLimitExceeded", "Throttling"):
		return NewAWSError(ErrThrottling, resourceType, resourceID,
			"Request throttled", err)

	case contains(errMsg, "InvalidParameter", "ValidationError", "MalformedQueryString"):
		return NewAWSError(ErrInvalidInput, resourceType, resourceID,
			"Invalid input", err)

	// Fall back to string-based analysis for non-standard errors
	case contains(errMsg, "no such host", "connection refused", "timeout"):
		return NewAWSError(ErrNetworkError, resourceType, resourceID,
			"Network error while accessing AWS API", err)

	case contains(errMsg, "could not find region", "failed to retrieve credentials",
		"missing AWS credentials", "static credentials are empty"):
		return NewAWSError(ErrConfigurationError, resourceType, resourceID,
			"AWS SDK configuration error", err)

	default:
		return NewAWSError(ErrInternalError, resourceType, resourceID,
			"Internal error occurred", err)
	}
}

// contains checks if the error message contains any of the provided substrings
func contains(s string, substrings ...string) bool {
	for _, substr := range substrings {
		if strings.Contains(strings.ToLower(s), strings.ToLower(substr)) {
			return true
		}
	}
	return false
}
