package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CampusFound/CampusFound/app/models"
	"github.com/CampusFound/CampusFound/app/repository"
	"github.com/CampusFound/CampusFound/internal/pkg/usercontext"
)

// In-memory repositories backing the handler tests. Installed via
// repository.SetGlobalRepositories, so these tests must not run in parallel
// with each other.

type stubPostRepo struct {
	posts []*models.Post
}

func (r *stubPostRepo) Create(post *models.Post) error {
	post.ID = uint(len(r.posts) + 1)
	r.posts = append(r.posts, post)
	return nil
}

func (r *stubPostRepo) GetByID(id uint) (*models.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *stubPostRepo) GetByShareLink(string) (*models.Post, error)     { return nil, nil }
func (r *stubPostRepo) GetByUserID(uint) ([]models.Post, error)         { return nil, nil }
func (r *stubPostRepo) GetByReportType(string) ([]models.Post, error)   { return nil, nil }
func (r *stubPostRepo) List(offset, limit int) ([]models.Post, error)   { return nil, nil }
func (r *stubPostRepo) Search(string) ([]models.Post, error)            { return nil, nil }
func (r *stubPostRepo) Update(*models.Post) error                       { return nil }
func (r *stubPostRepo) Delete(uint) error                               { return nil }
func (r *stubPostRepo) Count() (int64, error)                           { return int64(len(r.posts)), nil }

func (r *stubPostRepo) Filter(keyword, location, reportType string, dates []string) ([]models.Post, error) {
	return nil, nil
}

type stubClaimRepo struct {
	claims []*models.Claim
}

func (r *stubClaimRepo) Create(claim *models.Claim) error {
	claim.ID = uint(len(r.claims) + 1)
	if claim.CreatedAt.IsZero() {
		claim.CreatedAt = time.Now()
	}
	r.claims = append(r.claims, claim)
	return nil
}

func (r *stubClaimRepo) GetByID(id uint) (*models.Claim, error) {
	for _, cl := range r.claims {
		if cl.ID == id {
			return cl, nil
		}
	}
	return nil, nil
}

func (r *stubClaimRepo) GetByClaimant(userID uint) ([]models.Claim, error) {
	var out []models.Claim
	for _, cl := range r.claims {
		if cl.UserID == userID {
			out = append(out, *cl)
		}
	}
	return out, nil
}

func (r *stubClaimRepo) GetByPostOwner(userID uint) ([]models.Claim, error) {
	var out []models.Claim
	for _, cl := range r.claims {
		if cl.PostOwnerID == userID {
			out = append(out, *cl)
		}
	}
	return out, nil
}

func (r *stubClaimRepo) List(offset, limit int) ([]models.Claim, error) {
	out := make([]models.Claim, 0, len(r.claims))
	for _, cl := range r.claims {
		out = append(out, *cl)
	}
	return out, nil
}

func (r *stubClaimRepo) UpdateDecision(id uint, status, responseMessage string) error {
	for _, cl := range r.claims {
		if cl.ID == id {
			cl.Status = status
			cl.ResponseMessage = responseMessage
			cl.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (r *stubClaimRepo) Count() (int64, error) { return int64(len(r.claims)), nil }

// newClaimApp installs the stub repositories globally and mounts the claim
// routes behind a middleware impersonating the given user.
func newClaimApp(userID uint, posts *stubPostRepo, claims *stubClaimRepo) *fiber.App {
	repository.SetGlobalRepositories(&repository.Repositories{Post: posts, Claim: claims})

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{UserID: userID, IsLoggedIn: true})
		return c.Next()
	})
	app.Post("/claims", HandleCreateClaim)
	app.Get("/claims/user/:userId", HandleGetUserClaims)
	app.Get("/claims/:claimId/review", HandleReviewClaim)
	app.Get("/claims/:claimId", HandleGetClaim)
	app.Put("/claims/:claimId", HandleUpdateClaim)
	return app
}

func performJSON(t *testing.T, app *fiber.App, method, target string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func foundPost(id, ownerID uint) *models.Post {
	return &models.Post{
		ID:         id,
		ReportType: models.ReportTypeFound,
		UserID:     ownerID,
		ItemName:   "Blue Backpack",
		VerificationQuestions: models.QuestionList{
			{Question: "What brand is it?", Answer: "JanSport"},
		},
	}
}

func TestCreateClaim(t *testing.T) {
	posts := &stubPostRepo{posts: []*models.Post{foundPost(1, 1)}}
	claims := &stubClaimRepo{}
	app := newClaimApp(2, posts, claims)

	var body map[string]interface{}
	resp := performJSON(t, app, fiber.MethodPost, "/claims", fiber.Map{
		"post_id":      1,
		"user_id":      2,
		"contact_info": "claimant@umbc.edu",
		"answers":      []fiber.Map{{"question": "What brand is it?", "answer": "jansport"}},
	}, &body)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Claim submitted successfully", body["message"])
	assert.Equal(t, float64(1), body["id"])

	require.Len(t, claims.claims, 1)
	created := claims.claims[0]
	assert.Equal(t, uint(1), created.PostID)
	assert.Equal(t, uint(2), created.UserID)
	assert.Equal(t, uint(1), created.PostOwnerID, "owner must be captured at creation time")
	assert.Equal(t, models.ClaimStatusPending, created.Status)
}

func TestCreateClaimValidation(t *testing.T) {
	seed := []*models.Post{
		foundPost(1, 1),
		{ID: 2, ReportType: models.ReportTypeLost, UserID: 1, ItemName: "Umbrella"},
		{ID: 3, ReportType: models.ReportTypeLost, UserID: 3, ItemName: "Scarf"},
	}

	tests := []struct {
		name       string
		caller     uint
		body       fiber.Map
		wantStatus int
		wantDetail string
	}{
		{
			"missing contact_info", 2,
			fiber.Map{"post_id": 1, "user_id": 2},
			fiber.StatusBadRequest,
			"Missing required fields: post_id, user_id, and contact_info are required",
		},
		{
			// Field presence is checked before the post is even looked up.
			"missing fields beat post lookup", 2,
			fiber.Map{"post_id": 99, "user_id": 2},
			fiber.StatusBadRequest,
			"Missing required fields: post_id, user_id, and contact_info are required",
		},
		{
			"claiming as someone else", 2,
			fiber.Map{"post_id": 1, "user_id": 3, "contact_info": "x"},
			fiber.StatusForbidden,
			"You can only submit claims as yourself",
		},
		{
			"unknown post", 2,
			fiber.Map{"post_id": 99, "user_id": 2, "contact_info": "x"},
			fiber.StatusNotFound,
			"Post not found",
		},
		{
			"lost post cannot be claimed", 2,
			fiber.Map{"post_id": 2, "user_id": 2, "contact_info": "x"},
			fiber.StatusBadRequest,
			"Claims can only be made on found items",
		},
		{
			"own post cannot be claimed", 1,
			fiber.Map{"post_id": 1, "user_id": 1, "contact_info": "x"},
			fiber.StatusBadRequest,
			"You cannot claim your own post",
		},
		{
			// Report type is checked before self-claim on an own lost post.
			"report type beats self-claim", 3,
			fiber.Map{"post_id": 3, "user_id": 3, "contact_info": "x"},
			fiber.StatusBadRequest,
			"Claims can only be made on found items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &stubClaimRepo{}
			app := newClaimApp(tt.caller, &stubPostRepo{posts: seed}, claims)

			var body map[string]interface{}
			resp := performJSON(t, app, fiber.MethodPost, "/claims", tt.body, &body)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantDetail, body["detail"])
			assert.Empty(t, claims.claims, "rejected requests must not persist a claim")
		})
	}
}

func TestUpdateClaimDecision(t *testing.T) {
	posts := &stubPostRepo{posts: []*models.Post{foundPost(1, 1)}}
	claims := &stubClaimRepo{claims: []*models.Claim{
		{ID: 1, PostID: 1, UserID: 2, PostOwnerID: 1, Status: models.ClaimStatusPending},
	}}

	t.Run("claimant cannot decide", func(t *testing.T) {
		app := newClaimApp(2, posts, claims)

		var body map[string]interface{}
		resp := performJSON(t, app, fiber.MethodPut, "/claims/1",
			fiber.Map{"status": "approved"}, &body)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Only the post owner can update a claim", body["detail"])
		assert.Equal(t, models.ClaimStatusPending, claims.claims[0].Status)
	})

	t.Run("invalid status checked before lookup", func(t *testing.T) {
		app := newClaimApp(1, posts, claims)

		var body map[string]interface{}
		resp := performJSON(t, app, fiber.MethodPut, "/claims/99",
			fiber.Map{"status": "maybe"}, &body)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, `Status must be either "approved" or "rejected"`, body["detail"])
	})

	t.Run("unknown claim", func(t *testing.T) {
		app := newClaimApp(1, posts, claims)

		var body map[string]interface{}
		resp := performJSON(t, app, fiber.MethodPut, "/claims/99",
			fiber.Map{"status": "approved"}, &body)

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Claim not found", body["detail"])
	})

	t.Run("owner approves with message", func(t *testing.T) {
		app := newClaimApp(1, posts, claims)

		var body map[string]interface{}
		resp := performJSON(t, app, fiber.MethodPut, "/claims/1",
			fiber.Map{"status": "approved", "message": "Pick it up at the front desk"}, &body)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "Claim approved successfully", body["message"])
		assert.Equal(t, models.ClaimStatusApproved, claims.claims[0].Status)
		assert.Equal(t, "Pick it up at the front desk", claims.claims[0].ResponseMessage)
	})
}

func TestGetUserClaimsRolesAndOrder(t *testing.T) {
	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	posts := &stubPostRepo{posts: []*models.Post{foundPost(1, 1), foundPost(2, 2)}}
	claims := &stubClaimRepo{claims: []*models.Claim{
		{ID: 1, PostID: 1, UserID: 2, PostOwnerID: 1, Status: models.ClaimStatusPending, CreatedAt: base},
		{ID: 2, PostID: 2, UserID: 3, PostOwnerID: 2, Status: models.ClaimStatusPending, CreatedAt: base.Add(time.Hour)},
	}}
	app := newClaimApp(2, posts, claims)

	var body []struct {
		ID   uint   `json:"id"`
		Role string `json:"role"`
	}
	resp := performJSON(t, app, fiber.MethodGet, "/claims/user/2", nil, &body)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, body, 2)
	assert.Equal(t, uint(2), body[0].ID, "newest claim first")
	assert.Equal(t, models.ClaimRoleOwner, body[0].Role)
	assert.Equal(t, uint(1), body[1].ID)
	assert.Equal(t, models.ClaimRoleClaimant, body[1].Role)
}

func TestGetClaimRedactsAnswersForClaimant(t *testing.T) {
	posts := &stubPostRepo{posts: []*models.Post{foundPost(1, 1)}}
	claims := &stubClaimRepo{claims: []*models.Claim{
		{ID: 1, PostID: 1, UserID: 2, PostOwnerID: 1, Status: models.ClaimStatusPending,
			Answers: models.AnswerList{{Question: "What brand is it?", Answer: "jansport"}}},
	}}

	questionAnswer := func(body map[string]interface{}) string {
		post := body["post"].(map[string]interface{})
		questions := post["verification_questions"].([]interface{})
		return questions[0].(map[string]interface{})["answer"].(string)
	}

	var ownerBody map[string]interface{}
	resp := performJSON(t, newClaimApp(1, posts, claims), fiber.MethodGet, "/claims/1", nil, &ownerBody)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "JanSport", questionAnswer(ownerBody))

	var claimantBody map[string]interface{}
	resp = performJSON(t, newClaimApp(2, posts, claims), fiber.MethodGet, "/claims/1", nil, &claimantBody)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, questionAnswer(claimantBody), "ground-truth answers must not reach the claimant")
}

func TestReviewClaim(t *testing.T) {
	posts := &stubPostRepo{posts: []*models.Post{foundPost(1, 1)}}
	claims := &stubClaimRepo{claims: []*models.Claim{
		{ID: 1, PostID: 1, UserID: 2, PostOwnerID: 1, Status: models.ClaimStatusPending,
			Answers: models.AnswerList{{Question: "What brand is it?", Answer: "jansport"}}},
	}}

	t.Run("claimant cannot review", func(t *testing.T) {
		var body map[string]interface{}
		resp := performJSON(t, newClaimApp(2, posts, claims), fiber.MethodGet, "/claims/1/review", nil, &body)

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Only the post owner can review a claim", body["detail"])
	})

	t.Run("owner sees the comparison matrix", func(t *testing.T) {
		var body map[string]interface{}
		resp := performJSON(t, newClaimApp(1, posts, claims), fiber.MethodGet, "/claims/1/review", nil, &body)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["all_match"])
		require.Len(t, body["checks"].([]interface{}), 1)

		// Reviewing is read-only.
		assert.Equal(t, models.ClaimStatusPending, claims.claims[0].Status)
	})
}
