package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/CampusFound/CampusFound/app/models"
	"github.com/CampusFound/CampusFound/app/repository"
	"github.com/CampusFound/CampusFound/internal/pkg/apperr"
	"github.com/CampusFound/CampusFound/internal/pkg/env"
	"github.com/CampusFound/CampusFound/internal/pkg/jobqueue"
	"github.com/CampusFound/CampusFound/internal/pkg/matching"
	"github.com/CampusFound/CampusFound/internal/pkg/metrics/counter"
	"github.com/CampusFound/CampusFound/internal/pkg/s3backup"
	"github.com/CampusFound/CampusFound/internal/pkg/shortener"
	"github.com/CampusFound/CampusFound/internal/pkg/upload"
	"github.com/CampusFound/CampusFound/internal/pkg/usercontext"
)

const shareLinkLength = 8

// postJSON serializes a post for API responses. Verification answers are
// only included for the post owner; everyone else gets the questions with
// the answers stripped.
func postJSON(post *models.Post, callerID uint) fiber.Map {
	var questions interface{}
	if callerID != 0 && callerID == post.UserID {
		questions = post.VerificationQuestions
	} else {
		questions = post.QuestionsOnly()
	}

	m := fiber.Map{
		"id":                     post.ID,
		"report_type":            post.ReportType,
		"user_id":                post.UserID,
		"item_name":              post.ItemName,
		"description":            post.Description,
		"location":               post.Location,
		"contact_details":        post.ContactDetails,
		"date":                   post.Date,
		"time":                   post.Time,
		"image_path":             post.ImagePath,
		"thumbnail_path":         post.ThumbnailPath,
		"share_link":             post.ShareLink,
		"view_count":             post.ViewCount,
		"verification_questions": questions,
		"created_at":             post.CreatedAt,
		"updated_at":             post.UpdatedAt,
	}
	if post.User != nil {
		m["user"] = fiber.Map{
			"id":   post.User.ID,
			"name": post.User.Name,
		}
	}
	return m
}

func postListJSON(posts []models.Post, callerID uint) []fiber.Map {
	out := make([]fiber.Map, 0, len(posts))
	for i := range posts {
		out = append(out, postJSON(&posts[i], callerID))
	}
	return out
}

// HandleCreatePost creates a lost/found report from a multipart form. The
// optional photo is sniff-validated, stored locally and processed in the
// background (thumbnail, optional S3 backup). Every new post triggers a
// match scan against reports of the opposite type.
func HandleCreatePost(c *fiber.Ctx) error {
	userID := usercontext.GetUserID(c)

	reportType := models.NormalizeReportType(c.FormValue("report_type"))
	if reportType != models.ReportTypeLost && reportType != models.ReportTypeFound {
		return apperr.Respond(c, apperr.Validation(`report_type must be either "lost" or "found"`))
	}

	itemName := strings.TrimSpace(c.FormValue("item_name"))
	if itemName == "" {
		return apperr.Respond(c, apperr.Validation("item_name is required"))
	}

	var questions models.QuestionList
	if raw := c.FormValue("verification_questions"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &questions); err != nil {
			return apperr.Respond(c, apperr.Validation("verification_questions must be a JSON array of {question, answer}"))
		}
	}

	shareLink, err := shortener.GenerateSecureSlug(shareLinkLength)
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to create post", err))
	}

	post := &models.Post{
		ReportType:            reportType,
		UserID:                userID,
		ItemName:              itemName,
		Description:           c.FormValue("description"),
		Location:              c.FormValue("location"),
		ContactDetails:        c.FormValue("contact_details"),
		Date:                  c.FormValue("date"),
		Time:                  c.FormValue("time"),
		ShareLink:             shareLink,
		VerificationQuestions: questions,
	}

	var imageAbsPath, imageFileName string
	if fileHeader, ferr := c.FormFile("image"); ferr == nil && fileHeader != nil {
		src, oerr := fileHeader.Open()
		if oerr != nil {
			return apperr.Respond(c, apperr.Validation("Failed to read uploaded image"))
		}
		head := make([]byte, 512)
		n, _ := io.ReadFull(src, head)
		src.Close()

		if _, verr := upload.ValidateImageBySniff(fileHeader.Filename, head[:n]); verr != nil {
			return apperr.Respond(c, apperr.Validation(verr.Error()))
		}

		uploadDir := env.GetEnv("UPLOAD_DIR", "./uploads")
		if merr := os.MkdirAll(uploadDir, 0o755); merr != nil {
			return apperr.Respond(c, apperr.Unexpected("Failed to store image", merr))
		}

		imageFileName = uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
		imageAbsPath = filepath.Join(uploadDir, imageFileName)
		if serr := c.SaveFile(fileHeader, imageAbsPath); serr != nil {
			return apperr.Respond(c, apperr.Unexpected("Failed to store image", serr))
		}
		post.ImagePath = upload.WebPath(imageAbsPath)
	}

	repos := repository.GetGlobalFactory()
	if err := repos.GetPostRepository().Create(post); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to create post", err))
	}

	matching.CacheVector(post)

	manager := jobqueue.GetManager()
	manager.EnqueueMatchScan(post.ID)
	if imageAbsPath != "" {
		manager.EnqueueThumbnail(post.ID, imageAbsPath)
		if cfg, cerr := s3backup.LoadConfig(); cerr == nil && cfg.IsEnabled() {
			manager.EnqueueS3Backup(post.ID, imageAbsPath, imageFileName)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      post.ID,
		"message": "Post created successfully",
		"post":    postJSON(post, userID),
	})
}

// HandleListPosts returns the public listing, newest first.
func HandleListPosts(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)

	posts, err := repository.GetGlobalFactory().GetPostRepository().List(offset, limit)
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to get posts", err))
	}

	return c.Status(fiber.StatusOK).JSON(postListJSON(posts, usercontext.GetUserID(c)))
}

// HandleSearchPosts performs a free-text search over item name, description
// and location.
func HandleSearchPosts(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return apperr.Respond(c, apperr.Validation("Query parameter q is required"))
	}

	posts, err := repository.GetGlobalFactory().GetPostRepository().Search(query)
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to search posts", err))
	}

	return c.Status(fiber.StatusOK).JSON(postListJSON(posts, usercontext.GetUserID(c)))
}

// normalizeFilterDate expands a date filter value into the spellings the
// column may hold. The frontend sends MM/DD/YYYY, older clients YYYY-MM-DD.
func normalizeFilterDate(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range []string{"01/02/2006", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return []string{t.Format("01/02/2006"), t.Format("2006-01-02")}
		}
	}
	return []string{value}
}

// HandleFilterPosts applies combinable keyword/location/type/date filters.
func HandleFilterPosts(c *fiber.Ctx) error {
	posts, err := repository.GetGlobalFactory().GetPostRepository().Filter(
		c.Query("keyword"),
		c.Query("location"),
		c.Query("type"),
		normalizeFilterDate(c.Query("date")),
	)
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to filter posts", err))
	}

	return c.Status(fiber.StatusOK).JSON(postListJSON(posts, usercontext.GetUserID(c)))
}

// HandleGetPost returns a single post and counts the view.
func HandleGetPost(c *fiber.Ctx) error {
	postID := parseUintParam(c, "id")
	if postID == 0 {
		return apperr.Respond(c, apperr.NotFound("Post not found"))
	}

	post, err := repository.GetGlobalFactory().GetPostRepository().GetByID(postID)
	if err != nil || post == nil {
		return apperr.Respond(c, apperr.NotFound("Post not found"))
	}

	if err := counter.AddPostView(post.ID); err != nil {
		log.Warnf("[Posts] Failed to count view for post %d: %v", post.ID, err)
	}

	return c.Status(fiber.StatusOK).JSON(postJSON(post, usercontext.GetUserID(c)))
}

// HandleGetPostByShareLink resolves a share slug (QR target) to the post.
func HandleGetPostByShareLink(c *fiber.Ctx) error {
	slug := c.Params("shareLink")
	if slug == "" {
		return apperr.Respond(c, apperr.NotFound("Post not found"))
	}

	post, err := repository.GetGlobalFactory().GetPostRepository().GetByShareLink(slug)
	if err != nil || post == nil {
		return apperr.Respond(c, apperr.NotFound("Post not found"))
	}

	if err := counter.AddPostView(post.ID); err != nil {
		log.Warnf("[Posts] Failed to count view for post %d: %v", post.ID, err)
	}

	return c.Status(fiber.StatusOK).JSON(postJSON(post, usercontext.GetUserID(c)))
}

// HandleGetUserPosts lists a user's own reports.
func HandleGetUserPosts(c *fiber.Ctx) error {
	userID := parseUintParam(c, "userId")
	if userID == 0 {
		return apperr.Respond(c, apperr.Validation("Invalid user id"))
	}

	posts, err := repository.GetGlobalFactory().GetPostRepository().GetByUserID(userID)
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to get posts", err))
	}

	return c.Status(fiber.StatusOK).JSON(postListJSON(posts, usercontext.GetUserID(c)))
}

// HandleDeletePost removes a report. Owners delete their own posts; admins
// may delete anything.
func HandleDeletePost(c *fiber.Ctx) error {
	postID := parseUintParam(c, "id")
	if postID == 0 {
		return apperr.Respond(c, apperr.NotFound("Post not found"))
	}

	repos := repository.GetGlobalFactory()
	post, err := repos.GetPostRepository().GetByID(postID)
	if err != nil || post == nil {
		return apperr.Respond(c, apperr.NotFound("Post not found"))
	}

	userCtx := usercontext.GetUserContext(c)
	if post.UserID != userCtx.UserID && !userCtx.IsAdmin {
		return apperr.Respond(c, apperr.Authorization("Only the post owner can delete a post"))
	}

	if err := repos.GetPostRepository().Delete(postID); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to delete post", err))
	}

	matching.DropVector(postID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("Post %d deleted successfully", postID),
	})
}
