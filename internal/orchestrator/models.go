package orchestrator

import "time"

// Config contains all the parameters needed for one inventory run.
type Config struct {
	Region    string        // AWS region to inventory
	OutputDir string        // Directory the report is written to
	Timeout   time.Duration // Bound on the listing query (0 = none)
	Retries   int           // Extra attempts after a retryable listing failure
}

// RunResult describes the outcome of one inventory run.
type RunResult struct {
	Path    string // Report file that was written
	Count   int    // Number of instance rows in the report
	ListErr error  // Set when listing failed and the report has no instance rows
}

// ListingFailed reports whether the report was written without instance data
// because the listing query failed.
func (r RunResult) ListingFailed() bool {
	return r.ListErr != nil
}
