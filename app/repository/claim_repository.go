package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/CampusFound/CampusFound/app/models"
)

// claimRepository implements the ClaimRepository interface
type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository instance
func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

// Create creates a new claim in the database
func (r *claimRepository) Create(claim *models.Claim) error {
	return r.db.Create(claim).Error
}

// GetByID retrieves a claim by its ID
func (r *claimRepository) GetByID(id uint) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.First(&claim, id).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// GetByClaimant retrieves all claims submitted by a user, newest first
func (r *claimRepository) GetByClaimant(userID uint) ([]models.Claim, error) {
	var claims []models.Claim
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&claims).Error
	return claims, err
}

// GetByPostOwner retrieves all claims against a user's posts, newest first.
// Uses the denormalized post_owner_id so no join with posts is needed.
func (r *claimRepository) GetByPostOwner(userID uint) ([]models.Claim, error) {
	var claims []models.Claim
	err := r.db.Where("post_owner_id = ?", userID).Order("created_at DESC").Find(&claims).Error
	return claims, err
}

// List retrieves claims with pagination, newest first
func (r *claimRepository) List(offset, limit int) ([]models.Claim, error) {
	var claims []models.Claim
	q := r.db.Order("created_at DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	err := q.Find(&claims).Error
	return claims, err
}

// UpdateDecision sets the claim's status and response message and refreshes
// updated_at. Only these fields are mutable after creation.
func (r *claimRepository) UpdateDecision(id uint, status, responseMessage string) error {
	return r.db.Model(&models.Claim{}).Where("id = ?", id).Updates(map[string]any{
		"status":           status,
		"response_message": responseMessage,
		"updated_at":       time.Now(),
	}).Error
}

// Count returns the total number of claims
func (r *claimRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Claim{}).Count(&count).Error
	return count, err
}
