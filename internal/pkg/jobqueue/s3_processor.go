package jobqueue

import (
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/CampusFound/CampusFound/internal/pkg/s3backup"
)

var (
	s3ClientOnce sync.Once
	s3Client     *s3backup.Client
	s3Config     *s3backup.Config
	s3InitErr    error
)

func getS3Client() (*s3backup.Client, *s3backup.Config, error) {
	s3ClientOnce.Do(func() {
		s3Config, s3InitErr = s3backup.LoadConfig()
		if s3InitErr != nil {
			return
		}
		if !s3Config.IsEnabled() {
			s3InitErr = fmt.Errorf("S3 backup is disabled")
			return
		}
		s3Client, s3InitErr = s3backup.NewClient(s3Config)
	})
	return s3Client, s3Config, s3InitErr
}

// processS3BackupJob uploads the original item photo to the configured
// S3-compatible bucket. Jobs of this type are only enqueued when backup is
// enabled, but the config is re-checked here since workers may outlive a
// config change.
func (q *Queue) processS3BackupJob(job *Job) error {
	payload, err := S3BackupJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid s3 backup payload: %w", err)
	}

	client, cfg, err := getS3Client()
	if err != nil {
		return fmt.Errorf("s3 backup unavailable: %w", err)
	}

	now := time.Now()
	objectKey := cfg.GetObjectKey(payload.FileName, now.Year(), int(now.Month()))
	if err := client.UploadFile(payload.FilePath, objectKey); err != nil {
		return err
	}

	log.Infof("[JobQueue] Backed up photo for post %d as %s", payload.PostID, objectKey)
	return nil
}
