package controllers

import (
	"fmt"
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/CampusFound/CampusFound/app/models"
	"github.com/CampusFound/CampusFound/app/repository"
	"github.com/CampusFound/CampusFound/internal/pkg/apperr"
	"github.com/CampusFound/CampusFound/internal/pkg/database"
	"github.com/CampusFound/CampusFound/internal/pkg/notify"
	"github.com/CampusFound/CampusFound/internal/pkg/usercontext"
	"github.com/CampusFound/CampusFound/internal/pkg/verification"
)

// CreateClaimRequest is the body of POST /claims.
type CreateClaimRequest struct {
	PostID      uint              `json:"post_id"`
	UserID      uint              `json:"user_id"`
	ContactInfo string            `json:"contact_info"`
	Answers     models.AnswerList `json:"answers"`
}

// UpdateClaimRequest is the body of PUT /claims/:claimId.
type UpdateClaimRequest struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HandleCreateClaim creates a claim against a found-item post.
func HandleCreateClaim(c *fiber.Ctx) error {
	var req CreateClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	if req.PostID == 0 || req.UserID == 0 || req.ContactInfo == "" {
		return apperr.Respond(c, apperr.Validation(
			"Missing required fields: post_id, user_id, and contact_info are required"))
	}

	// The body carries user_id for frontend compatibility but it must be
	// the authenticated caller; nobody claims on someone else's behalf.
	if req.UserID != usercontext.GetUserID(c) {
		return apperr.Respond(c, apperr.Authorization("You can only submit claims as yourself"))
	}

	repos := repository.GetGlobalFactory()
	post, err := repos.GetPostRepository().GetByID(req.PostID)
	if err != nil || post == nil {
		return apperr.Respond(c, apperr.NotFound("Post not found"))
	}

	if !post.IsFound() {
		return apperr.Respond(c, apperr.InvalidState("Claims can only be made on found items"))
	}

	if post.UserID == req.UserID {
		return apperr.Respond(c, apperr.InvalidState("You cannot claim your own post"))
	}

	answers := req.Answers
	if answers == nil {
		answers = models.AnswerList{}
	}

	claim := &models.Claim{
		PostID:      req.PostID,
		UserID:      req.UserID,
		PostOwnerID: post.UserID,
		ContactInfo: req.ContactInfo,
		Answers:     answers,
		Status:      models.ClaimStatusPending,
	}

	if err := repos.GetClaimRepository().Create(claim); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to create claim", err))
	}

	notify.Send(database.GetDB(), notify.NewClaim(post.UserID, post.ItemName, claim.ID))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      claim.ID,
		"message": "Claim submitted successfully",
	})
}

type claimWithRole struct {
	models.Claim
	Role string `json:"role"`
}

// HandleGetUserClaims lists every claim where the user is claimant or post
// owner, tagged with the user's role, newest first.
func HandleGetUserClaims(c *fiber.Ctx) error {
	userID := parseUintParam(c, "userId")
	if userID == 0 {
		return apperr.Respond(c, apperr.Validation("Invalid user id"))
	}

	repos := repository.GetGlobalFactory()

	asClaimant, err := repos.GetClaimRepository().GetByClaimant(userID)
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to get claims", err))
	}
	asOwner, err := repos.GetClaimRepository().GetByPostOwner(userID)
	if err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to get claims", err))
	}

	claims := make([]claimWithRole, 0, len(asClaimant)+len(asOwner))
	for _, cl := range asClaimant {
		claims = append(claims, claimWithRole{Claim: cl, Role: models.ClaimRoleClaimant})
	}
	for _, cl := range asOwner {
		claims = append(claims, claimWithRole{Claim: cl, Role: models.ClaimRoleOwner})
	}

	sort.SliceStable(claims, func(i, j int) bool {
		return claims[i].CreatedAt.After(claims[j].CreatedAt)
	})

	return c.Status(fiber.StatusOK).JSON(claims)
}

// HandleGetClaim returns a claim joined with its post's current fields.
// Verification answers travel only to the post owner.
func HandleGetClaim(c *fiber.Ctx) error {
	claimID := parseUintParam(c, "claimId")
	if claimID == 0 {
		return apperr.Respond(c, apperr.NotFound("Claim not found"))
	}

	repos := repository.GetGlobalFactory()
	claim, err := repos.GetClaimRepository().GetByID(claimID)
	if err != nil || claim == nil {
		return apperr.Respond(c, apperr.NotFound("Claim not found"))
	}

	post, err := repos.GetPostRepository().GetByID(claim.PostID)
	if err != nil || post == nil {
		return apperr.Respond(c, apperr.NotFound("Post not found"))
	}

	questions := post.QuestionsOnly()
	if usercontext.GetUserID(c) == post.UserID {
		questions = post.VerificationQuestions
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"id":               claim.ID,
		"post_id":          claim.PostID,
		"user_id":          claim.UserID,
		"post_owner_id":    claim.PostOwnerID,
		"contact_info":     claim.ContactInfo,
		"answers":          claim.Answers,
		"status":           claim.Status,
		"response_message": claim.ResponseMessage,
		"created_at":       claim.CreatedAt,
		"updated_at":       claim.UpdatedAt,
		"post": fiber.Map{
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
			"verification_questions": questions,
			"created_at":             post.CreatedAt,
		},
	})
}

// HandleUpdateClaim transitions a claim to approved or rejected. Only the
// post owner may decide; a repeated decision overwrites the previous one.
func HandleUpdateClaim(c *fiber.Ctx) error {
	claimID := parseUintParam(c, "claimId")
	if claimID == 0 {
		return apperr.Respond(c, apperr.NotFound("Claim not found"))
	}

	var req UpdateClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Respond(c, apperr.Validation("Invalid request body"))
	}

	if !models.IsValidDecision(req.Status) {
		return apperr.Respond(c, apperr.Validation(`Status must be either "approved" or "rejected"`))
	}

	repos := repository.GetGlobalFactory()
	claim, err := repos.GetClaimRepository().GetByID(claimID)
	if err != nil || claim == nil {
		return apperr.Respond(c, apperr.NotFound("Claim not found"))
	}

	if !claim.CanBeDecidedBy(usercontext.GetUserID(c)) {
		return apperr.Respond(c, apperr.Authorization("Only the post owner can update a claim"))
	}

	if err := repos.GetClaimRepository().UpdateDecision(claimID, req.Status, req.Message); err != nil {
		return apperr.Respond(c, apperr.Unexpected("Failed to update claim", err))
	}

	notify.Send(database.GetDB(), notify.ClaimDecision(claim.UserID, claim.ID, req.Status, req.Message))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": fmt.Sprintf("Claim %s successfully", req.Status),
	})
}

// HandleReviewClaim returns the advisory answer comparison matrix for the
// post owner. It never changes the claim's status.
func HandleReviewClaim(c *fiber.Ctx) error {
	claimID := parseUintParam(c, "claimId")
	if claimID == 0 {
		return apperr.Respond(c, apperr.NotFound("Claim not found"))
	}

	repos := repository.GetGlobalFactory()
	claim, err := repos.GetClaimRepository().GetByID(claimID)
	if err != nil || claim == nil {
		return apperr.Respond(c, apperr.NotFound("Claim not found"))
	}

	if !claim.CanBeDecidedBy(usercontext.GetUserID(c)) {
		return apperr.Respond(c, apperr.Authorization("Only the post owner can review a claim"))
	}

	post, err := repos.GetPostRepository().GetByID(claim.PostID)
	if err != nil || post == nil {
		return apperr.Respond(c, apperr.NotFound("Post not found"))
	}

	checks := verification.Compare(post.VerificationQuestions, claim.Answers)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"claim_id":  claim.ID,
		"post_id":   post.ID,
		"status":    claim.Status,
		"checks":    checks,
		"all_match": verification.AllMatch(checks),
	})
}
