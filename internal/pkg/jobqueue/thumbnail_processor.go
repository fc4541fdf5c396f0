package jobqueue

import (
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"github.com/CampusFound/CampusFound/app/repository"
	"github.com/CampusFound/CampusFound/internal/pkg/imageprocessor"
	"github.com/CampusFound/CampusFound/internal/pkg/upload"
)

// processThumbnailJob generates the thumbnail variant for an uploaded item
// photo and, when the report has no date, fills it from the photo's EXIF
// capture date.
func (q *Queue) processThumbnailJob(job *Job) error {
	payload, err := ThumbnailJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid thumbnail payload: %w", err)
	}

	thumbPath, err := imageprocessor.GenerateThumbnail(payload.FilePath)
	if err != nil {
		return err
	}

	repos := repository.GetGlobalFactory()
	post, err := repos.GetPostRepository().GetByID(payload.PostID)
	if err != nil {
		return fmt.Errorf("post %d not found for thumbnail: %w", payload.PostID, err)
	}

	// GenerateThumbnail returns the filesystem path next to the source
	// image; clients only ever see the /uploads URL form.
	post.ThumbnailPath = upload.WebPath(thumbPath)
	if post.Date == "" {
		if captured, ok := imageprocessor.ExtractCaptureDate(payload.FilePath); ok {
			post.Date = captured.Format("2006-01-02")
			log.Infof("[JobQueue] Filled date for post %d from EXIF: %s", post.ID, post.Date)
		}
	}

	return repos.GetPostRepository().Update(post)
}
