package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ec2inventory/internal/credentials"
	"ec2inventory/internal/models"
	aws "ec2inventory/internal/providers/aws"
	"ec2inventory/internal/report"
	"ec2inventory/pkg/logging"
)

// Service orchestrates the inventory process: credentials, listing, export.
type Service struct {
	config     Config
	credSource credentials.Source
	lister     aws.InstanceLister
	exporter   report.IExporter
	logger     logging.Logger
	now        func() time.Time
}

// NewService creates a new orchestrator service with the given configuration.
func NewService(
	config Config,
	credSource credentials.Source,
	lister aws.InstanceLister,
	exporter report.IExporter,
	logger logging.Logger,
) *Service {
	return &Service{
		config:     config,
		credSource: credSource,
		lister:     lister,
		exporter:   exporter,
		logger:     logger,
		now:        time.Now,
	}
}

// NewDefaultService creates a new service with default implementations of dependencies
func NewDefaultService(config Config, credSource credentials.Source, logger logging.Logger) (*Service, error) {
	if credSource == nil {
		return nil, errors.New("a credential source is required")
	}

	lister := aws.NewInstanceService(
		aws.WithLogger(logger),
		aws.WithTimeout(config.Timeout),
		aws.WithRetries(config.Retries, 2*time.Second),
	)
	exporter := report.NewXLSXExporter(config.OutputDir, logger)

	return NewService(config, credSource, lister, exporter, logger), nil
}

// Run executes the inventory workflow. A failed listing still produces a
// header-only report and is reported through RunResult.ListErr; only
// configuration, filesystem and cancellation problems are returned as errors.
// A cancelled run never writes a report, so an existing one is left intact.
func (s *Service) Run(ctx context.Context) (*RunResult, error) {
	if err := s.validateConfig(); err != nil {
		return nil, err
	}

	result := s.list(ctx)

	if err := ctx.Err(); err != nil {
		s.logger.Warn("Inventory run interrupted, report not written: %v", err)
		return nil, fmt.Errorf("inventory run interrupted: %w", err)
	}

	path, err := s.exporter.Export(result.Records, s.now())
	if err != nil {
		s.logger.Error("Failed to write inventory report: %v", err)
		return nil, fmt.Errorf("error exporting inventory: %w", err)
	}

	return &RunResult{
		Path:    path,
		Count:   len(result.Records),
		ListErr: result.Err,
	}, nil
}

// list resolves the key pair and queries the instances. A credential failure
// is treated like a rejected query.
func (s *Service) list(ctx context.Context) models.ListResult {
	s.logger.Debug("Retrieving credentials from %s source", s.credSource.Name())

	creds, err := s.credSource.Retrieve(ctx)
	if err != nil {
		awsErr := aws.ClassifyAWSError(err, aws.CredentialsResourceType, s.credSource.Name())
		s.logger.Error("An error occurred while listing EC2 instances in %q: %v", s.config.Region, awsErr)
		return models.ListResult{
			Records: []models.InstanceRecord{},
			Err:     awsErr,
		}
	}

	s.logger.Info("Listing EC2 instances in %s", s.config.Region)
	result := s.lister.ListInstances(ctx, s.config.Region, creds)
	if result.Records == nil {
		result.Records = []models.InstanceRecord{}
	}
	return result
}

// validateConfig checks if the required configuration is provided.
func (s *Service) validateConfig() error {
	if strings.TrimSpace(s.config.Region) == "" {
		return fmt.Errorf("region is required")
	}
	if strings.TrimSpace(s.config.OutputDir) == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}
