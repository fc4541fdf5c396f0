package jobqueue

import (
	"encoding/json"
	"time"
)

// JobType defines the type of job
type JobType string

const (
	JobTypeMatchScan JobType = "match_scan"
	JobTypeThumbnail JobType = "thumbnail"
	JobTypeS3Backup  JobType = "s3_backup"
)

// JobStatus defines the status of a job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusRetrying   JobStatus = "retrying"
)

// Job represents a background job
type Job struct {
	ID          string                 `json:"id"`
	Type        JobType                `json:"type"`
	Status      JobStatus              `json:"status"`
	Payload     map[string]interface{} `json:"payload"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
	ProcessedAt *time.Time             `json:"processed_at,omitempty"`
	CompletedAt *time.Time             `json:"completed_at,omitempty"`
	ErrorMsg    string                 `json:"error_msg,omitempty"`
	RetryCount  int                    `json:"retry_count"`
	MaxRetries  int                    `json:"max_retries"`
}

// MarkAsProcessing flags the job as picked up by a worker.
func (j *Job) MarkAsProcessing() {
	now := time.Now()
	j.Status = JobStatusProcessing
	j.ProcessedAt = &now
	j.UpdatedAt = now
}

// MarkAsCompleted flags the job as finished.
func (j *Job) MarkAsCompleted() {
	now := time.Now()
	j.Status = JobStatusCompleted
	j.CompletedAt = &now
	j.UpdatedAt = now
}

// MarkAsFailed records a failure message.
func (j *Job) MarkAsFailed(msg string) {
	j.Status = JobStatusFailed
	j.ErrorMsg = msg
	j.UpdatedAt = time.Now()
}

// MarkAsRetrying bumps the retry counter.
func (j *Job) MarkAsRetrying() {
	j.RetryCount++
	j.Status = JobStatusRetrying
	j.UpdatedAt = time.Now()
}

// IsRetryable reports whether the job has retries left.
func (j *Job) IsRetryable() bool {
	return j.RetryCount < j.MaxRetries
}

// MatchScanJobPayload contains the payload for lost/found match scans
type MatchScanJobPayload struct {
	PostID uint `json:"post_id"`
}

// ToMap converts the payload to a map for storage
func (p MatchScanJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"post_id": p.PostID,
	}
}

// MatchScanJobPayloadFromMap creates a payload from a map
func MatchScanJobPayloadFromMap(data map[string]interface{}) (*MatchScanJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload MatchScanJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}

// ThumbnailJobPayload contains the payload for thumbnail jobs
type ThumbnailJobPayload struct {
	PostID   uint   `json:"post_id"`
	FilePath string `json:"file_path"`
}

// ToMap converts the payload to a map for storage
func (p ThumbnailJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"post_id":   p.PostID,
		"file_path": p.FilePath,
	}
}

// ThumbnailJobPayloadFromMap creates a payload from a map
func ThumbnailJobPayloadFromMap(data map[string]interface{}) (*ThumbnailJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload ThumbnailJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}

// S3BackupJobPayload contains the payload for S3 backup jobs
type S3BackupJobPayload struct {
	PostID   uint   `json:"post_id"`
	FilePath string `json:"file_path"`
	FileName string `json:"file_name"`
}

// ToMap converts the payload to a map for storage
func (p S3BackupJobPayload) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"post_id":   p.PostID,
		"file_path": p.FilePath,
		"file_name": p.FileName,
	}
}

// S3BackupJobPayloadFromMap creates a payload from a map
func S3BackupJobPayloadFromMap(data map[string]interface{}) (*S3BackupJobPayload, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var payload S3BackupJobPayload
	err = json.Unmarshal(jsonData, &payload)
	return &payload, err
}
