package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"ec2inventory/internal/models"
)

const (
	nameColumn  = 0
	idColumn    = 1
	stateColumn = 3
	emptyCell   = "-"
)

// RenderInstanceTable renders the records as a bordered table with the
// inventory headers.
func RenderInstanceTable(records []models.InstanceRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		values := r.Values()
		for i, v := range values {
			if v == "" {
				values[i] = emptyCell
			}
		}
		rows = append(rows, values)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers(models.Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			switch col {
			case nameColumn:
				return NameStyle
			case idColumn:
				return IDStyle
			case stateColumn:
				if row >= 0 && row < len(records) {
					return StateStyle(records[row].State)
				}
			}
			return CellStyle
		})

	return t.String()
}
