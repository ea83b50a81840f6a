package report

import (
	"time"

	"ec2inventory/internal/models"
)

// IExporter is the interface for persisting an inventory
//
//go:generate mockery --name=IExporter --output=./mocks
type IExporter interface {
	Export(records []models.InstanceRecord, now time.Time) (string, error)
}
