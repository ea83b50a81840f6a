package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValues_FieldOrder(t *testing.T) {
	record := InstanceRecord{
		Name:         "web-1",
		InstanceID:   "i-0abc",
		InstanceType: "t3.micro",
		State:        "running",
		PublicIP:     "54.1.2.3",
		PrivateIP:    "10.0.0.4",
		KeyName:      "ops",
		Platform:     "windows",
		Architecture: "x86_64",
	}

	values := record.Values()

	assert.Len(t, values, len(Headers))
	assert.Equal(t, []string{"web-1", "i-0abc", "t3.micro", "running", "54.1.2.3", "10.0.0.4", "ops", "windows", "x86_64"}, values)
}

func TestRecordFromValues(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected InstanceRecord
		wantErr  bool
	}{
		{
			name:   "Full row",
			values: []string{"web-1", "i-1", "t3.micro", "running", "1.1.1.1", "10.0.0.1", "key", "windows", "x86_64"},
			expected: InstanceRecord{
				Name: "web-1", InstanceID: "i-1", InstanceType: "t3.micro", State: "running",
				PublicIP: "1.1.1.1", PrivateIP: "10.0.0.1", KeyName: "key", Platform: "windows", Architecture: "x86_64",
			},
		},
		{
			name:   "Trailing empty cells trimmed",
			values: []string{"Unknown", "i-2", "m5.large", "stopped"},
			expected: InstanceRecord{
				Name: "Unknown", InstanceID: "i-2", InstanceType: "m5.large", State: "stopped",
			},
		},
		{
			name:    "Too many cells",
			values:  make([]string, 10),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := RecordFromValues(tt.values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, record)
		})
	}
}
