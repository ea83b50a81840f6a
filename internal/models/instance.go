package models

import "fmt"

// UnknownName is used when an instance carries no "Name" tag.
const UnknownName = "Unknown"

// InstanceStates are the lifecycle states included in the inventory.
var InstanceStates = []string{"running", "stopped"}

// Headers are the column labels of the inventory sheet, in field order.
var Headers = []string{
	"Name",
	"Instance ID",
	"Instance Type",
	"State",
	"Public IP",
	"Private IP",
	"Key Name",
	"Platform",
	"Architecture",
}

// InstanceRecord is the flattened, export-ready view of one EC2 instance.
// Optional attributes are empty strings when the instance does not have them.
type InstanceRecord struct {
	Name         string `json:"name"`
	InstanceID   string `json:"instance_id"`
	InstanceType string `json:"instance_type"`
	State        string `json:"state"`
	PublicIP     string `json:"public_ip,omitempty"`
	PrivateIP    string `json:"private_ip,omitempty"`
	KeyName      string `json:"key_name,omitempty"`
	Platform     string `json:"platform,omitempty"`
	Architecture string `json:"architecture"`
}

// Values returns the record's cells in header order.
func (r InstanceRecord) Values() []string {
	return []string{
		r.Name,
		r.InstanceID,
		r.InstanceType,
		r.State,
		r.PublicIP,
		r.PrivateIP,
		r.KeyName,
		r.Platform,
		r.Architecture,
	}
}

// RecordFromValues builds a record from a row of cells in header order.
// Rows shorter than the header are padded with empty cells, since spreadsheet
// readers drop trailing empty columns.
func RecordFromValues(values []string) (InstanceRecord, error) {
	if len(values) > len(Headers) {
		return InstanceRecord{}, fmt.Errorf("row has %d cells, expected at most %d", len(values), len(Headers))
	}

	cells := make([]string, len(Headers))
	copy(cells, values)

	return InstanceRecord{
		Name:         cells[0],
		InstanceID:   cells[1],
		InstanceType: cells[2],
		State:        cells[3],
		PublicIP:     cells[4],
		PrivateIP:    cells[5],
		KeyName:      cells[6],
		Platform:     cells[7],
		Architecture: cells[8],
	}, nil
}

// ListResult is the outcome of one listing pass. Err is set when the query
// failed, in which case Records is empty.
type ListResult struct {
	Records []InstanceRecord
	Err     error
}

// Failed reports whether the listing query failed.
func (r ListResult) Failed() bool {
	return r.Err != nil
}
