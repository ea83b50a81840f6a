package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"ec2inventory/internal/models"
	"ec2inventory/internal/ui"
)

// OutputFormatType defines the format types for printing an inventory.
type OutputFormatType string

const (
	// OutputFormatTypeJSON represents JSON output format
	OutputFormatTypeJSON OutputFormatType = "JSON"
	// OutputFormatTypeTABLE represents table output format
	OutputFormatTypeTABLE OutputFormatType = "TABLE"
)

// InventoryReport is the JSON shape of a printed inventory.
type InventoryReport struct {
	Source    string                  `json:"source,omitempty"`
	Count     int                     `json:"count"`
	Instances []models.InstanceRecord `json:"instances"`
}

// ParseOutputFormat converts a user supplied format, defaulting to table.
func ParseOutputFormat(format string) OutputFormatType {
	switch strings.ToUpper(strings.TrimSpace(format)) {
	case "JSON":
		return OutputFormatTypeJSON
	default:
		return OutputFormatTypeTABLE
	}
}

// PrintRecords prints the inventory using the specified output format.
// Supported formats: "json" (machine-readable) and "table" (human-friendly).
func PrintRecords(w io.Writer, source string, records []models.InstanceRecord, outputFormat OutputFormatType) error {
	report := InventoryReport{
		Source:    source,
		Count:     len(records),
		Instances: records,
	}

	switch outputFormat {
	case OutputFormatTypeJSON:
		return printJSONReport(w, report)
	case OutputFormatTypeTABLE:
		return printTableReport(w, report)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

// printJSONReport prints the report in JSON format
func printJSONReport(w io.Writer, report InventoryReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling report to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printTableReport prints the report as a styled terminal table
func printTableReport(w io.Writer, report InventoryReport) error {
	if report.Count == 0 {
		_, err := fmt.Fprintln(w, ui.MutedStyle.Render("No EC2 instances in report"))
		return err
	}

	if _, err := fmt.Fprintln(w, ui.RenderInstanceTable(report.Instances)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nTotal: %d instances\n", report.Count)
	return err
}
