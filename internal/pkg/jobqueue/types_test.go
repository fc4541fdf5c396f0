package jobqueue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobLifecycle(t *testing.T) {
	t.Parallel()

	job := &Job{Status: JobStatusPending, MaxRetries: DefaultMaxRetries}

	job.MarkAsProcessing()
	assert.Equal(t, JobStatusProcessing, job.Status)
	assert.NotNil(t, job.ProcessedAt)

	job.MarkAsFailed("boom")
	assert.Equal(t, JobStatusFailed, job.Status)
	assert.Equal(t, "boom", job.ErrorMsg)
	assert.True(t, job.IsRetryable())

	for i := 0; i < DefaultMaxRetries; i++ {
		job.MarkAsRetrying()
	}
	assert.False(t, job.IsRetryable(), "retries exhausted after MaxRetries attempts")

	job.MarkAsCompleted()
	assert.Equal(t, JobStatusCompleted, job.Status)
	assert.NotNil(t, job.CompletedAt)
}

func TestMatchScanPayloadRoundTrip(t *testing.T) {
	t.Parallel()

	payload := MatchScanJobPayload{PostID: 42}
	restored, err := MatchScanJobPayloadFromMap(payload.ToMap())
	require.NoError(t, err)
	assert.Equal(t, payload.PostID, restored.PostID)
}

func TestS3BackupPayloadRoundTrip(t *testing.T) {
	t.Parallel()

	payload := S3BackupJobPayload{PostID: 7, FilePath: "/uploads/a.jpg", FileName: "a.jpg"}
	restored, err := S3BackupJobPayloadFromMap(payload.ToMap())
	require.NoError(t, err)
	assert.Equal(t, payload, *restored)
}
