package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/CampusFound/CampusFound/app/models"
)

// postRepository implements the PostRepository interface
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository instance
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post in the database
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a post with its owner preloaded
func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByShareLink retrieves a post by its share slug
func (r *postRepository) GetByShareLink(shareLink string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("User").Where("share_link = ?", shareLink).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByUserID retrieves all posts owned by a user, newest first
func (r *postRepository) GetByUserID(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("User").Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// GetByReportType retrieves all posts of a given type (lost/found)
func (r *postRepository) GetByReportType(reportType string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("report_type = ?", models.NormalizeReportType(reportType)).Find(&posts).Error
	return posts, err
}

// List retrieves posts with pagination, newest first
func (r *postRepository) List(offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.Preload("User").Order("created_at DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	err := q.Find(&posts).Error
	return posts, err
}

// Search performs a case-insensitive LIKE search over item name,
// description and location.
func (r *postRepository) Search(query string) ([]models.Post, error) {
	var posts []models.Post
	like := "%" + strings.ToLower(query) + "%"
	err := r.db.Preload("User").
		Where("LOWER(item_name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?", like, like, like).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// Filter applies the combinable listing filters. dates carries the accepted
// spellings of the same calendar day (the column stores free-form strings).
func (r *postRepository) Filter(keyword, location, reportType string, dates []string) ([]models.Post, error) {
	q := r.db.Preload("User")
	if reportType != "" {
		q = q.Where("report_type = ?", models.NormalizeReportType(reportType))
	}
	if keyword != "" {
		like := "%" + strings.ToLower(keyword) + "%"
		q = q.Where("LOWER(item_name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	if len(dates) > 0 {
		q = q.Where("date IN ?", dates)
	}

	var posts []models.Post
	err := q.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// Update updates an existing post
func (r *postRepository) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete soft-deletes a post by ID
func (r *postRepository) Delete(id uint) error {
	return r.db.Delete(&models.Post{}, id).Error
}

// Count returns the total number of posts
func (r *postRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}
