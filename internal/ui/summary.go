package ui

import (
	"fmt"
	"strings"
)

// RenderExportSummary describes the outcome of one inventory run.
func RenderExportSummary(path string, count int, listErr error) string {
	var b strings.Builder

	if listErr != nil {
		b.WriteString(ErrorStyle.Render("Listing failed"))
		b.WriteString(" ")
		b.WriteString(MutedStyle.Render(listErr.Error()))
		b.WriteString("\n")
		b.WriteString(WarnStyle.Render("Report written without instance rows"))
	} else {
		b.WriteString(SuccessStyle.Render(fmt.Sprintf("Exported %d EC2 instances", count)))
	}

	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("File:"))
	b.WriteString(path)
	return b.String()
}

// RenderIdentity describes the AWS principal behind a key pair.
func RenderIdentity(account, arn, userID string) string {
	lines := []string{
		LabelStyle.Render("Account:") + account,
		LabelStyle.Render("ARN:") + arn,
		LabelStyle.Render("UserID:") + userID,
	}
	return strings.Join(lines, "\n")
}
