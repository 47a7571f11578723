package domain

// JobStatus represents the lifecycle of an extraction job.
type JobStatus string

const (
	// JobStatusNotStarted is never stored; it is reported when no job row
	// exists for a document.
	JobStatusNotStarted JobStatus = "not_started"
	JobStatusRunning    JobStatus = "running"
	JobStatusSucceeded  JobStatus = "succeeded"
	JobStatusFailed     JobStatus = "failed"
)

// Terminal reports whether the status is a final state. A terminal job never
// regresses; only a new start-or-attach call can supersede a failed one.
func (s JobStatus) Terminal() bool {
	return s == JobStatusSucceeded || s == JobStatusFailed
}
