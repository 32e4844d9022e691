package constants

// JobStatus is the canonical status for rows in processing_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued    JobStatus = "QUEUED"    // submitted, waiting for a worker
	JobStatusRunning   JobStatus = "RUNNING"   // in progress
	JobStatusCompleted JobStatus = "COMPLETED" // terminal success
	JobStatusFailed    JobStatus = "FAILED"    // terminal failure
)

// Terminal reports whether a status can no longer change.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// JobType distinguishes the asynchronous units of work run against a dataset.
type JobType string

const (
	JobTypeInference  JobType = "INFERENCE"  // initial streaming ingestion + type inference
	JobTypeConversion JobType = "CONVERSION" // user-requested column retype
	JobTypeExport     JobType = "EXPORT"     // dataset export to CSV/XLSX
)

// JobTypes holds the allowed values for the processing_job job_type field.
var JobTypes = []string{string(JobTypeInference), string(JobTypeConversion), string(JobTypeExport)}

// DatasetStatus is the lifecycle status of an uploaded dataset.
type DatasetStatus string

const (
	DatasetStatusPending    DatasetStatus = "PENDING"
	DatasetStatusProcessing DatasetStatus = "PROCESSING"
	DatasetStatusCompleted  DatasetStatus = "COMPLETED"
	DatasetStatusFailed     DatasetStatus = "FAILED"
)

// DatasetStatuses holds the allowed values for the dataset status field.
var DatasetStatuses = []string{
	string(DatasetStatusPending),
	string(DatasetStatusProcessing),
	string(DatasetStatusCompleted),
	string(DatasetStatusFailed),
}
