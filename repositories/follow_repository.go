package repositories

import (
	"context"
	"fmt"

	"foodgram-api/models"

	"gorm.io/gorm"
)

type FollowRepository interface {
	Add(ctx context.Context, userID, authorID uint) error
	Remove(ctx context.Context, userID, authorID uint) (bool, error)
	Exists(ctx context.Context, userID, authorID uint) (bool, error)
	ListAuthors(ctx context.Context, userID uint, page, limit int) ([]models.User, int64, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Add(ctx context.Context, userID, authorID uint) error {
	return wrapErrorWithDetails(
		r.db.WithContext(ctx).Omit("User", "Author").Create(&models.Follow{UserID: userID, AuthorID: authorID}).Error,
		"create follow",
		fmt.Sprintf("user_id=%d, author_id=%d", userID, authorID),
	)
}

func (r *followRepository) Remove(ctx context.Context, userID, authorID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, wrapErrorWithDetails(res.Error, "delete follow", fmt.Sprintf("user_id=%d, author_id=%d", userID, authorID))
	}
	return res.RowsAffected > 0, nil
}

func (r *followRepository) Exists(ctx context.Context, userID, authorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, wrapErrorWithDetails(err, "check follow", fmt.Sprintf("user_id=%d, author_id=%d", userID, authorID))
	}
	return count > 0, nil
}

// ListAuthors returns the users followed by userID, oldest subscription first.
func (r *followRepository) ListAuthors(ctx context.Context, userID uint, page, limit int) ([]models.User, int64, error) {
	var authors []models.User
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapErrorWithDetails(err, "count followed authors", fmt.Sprintf("user_id=%d", userID))
	}

	err := query.Order("follows.id asc").Offset(offsetFor(page, limit)).Limit(limit).Find(&authors).Error
	if err != nil {
		return nil, 0, wrapErrorWithDetails(err, "list followed authors", fmt.Sprintf("user_id=%d", userID))
	}
	return authors, total, nil
}
