package jobqueue

import (
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"github.com/CampusFound/CampusFound/app/repository"
	"github.com/CampusFound/CampusFound/internal/pkg/database"
	"github.com/CampusFound/CampusFound/internal/pkg/matching"
	"github.com/CampusFound/CampusFound/internal/pkg/notify"
)

// processMatchScanJob scores a freshly created post against all posts of
// the opposite report type and notifies both owners about the best match.
func (q *Queue) processMatchScanJob(job *Job) error {
	payload, err := MatchScanJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid match scan payload: %w", err)
	}

	repos := repository.GetGlobalFactory()
	post, err := repos.GetPostRepository().GetByID(payload.PostID)
	if err != nil {
		return fmt.Errorf("post %d not found for match scan: %w", payload.PostID, err)
	}

	candidates, err := repos.GetPostRepository().GetByReportType(matching.OppositeType(post.ReportType))
	if err != nil {
		return fmt.Errorf("failed to load match candidates: %w", err)
	}

	matches := matching.FindMatches(post, candidates, matching.DefaultThreshold)
	if len(matches) == 0 {
		log.Infof("[JobQueue] No matches above threshold for post %d", post.ID)
		return nil
	}

	// Only the top match generates notifications; a scan that pings every
	// vaguely similar report trains users to ignore the bell.
	top := matches[0]
	db := database.GetDB()
	notify.Send(db, notify.PossibleMatch(post.UserID, post.ItemName, top.Post.ID, top.Similarity))
	notify.Send(db, notify.PossibleMatch(top.Post.UserID, top.Post.ItemName, post.ID, top.Similarity))

	log.Infof("[JobQueue] Post %d matched post %d (similarity %.2f)", post.ID, top.Post.ID, top.Similarity)
	return nil
}
