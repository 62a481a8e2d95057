package repositories

import (
	"context"
	"fmt"

	"foodgram-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context, page, limit int) ([]models.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return wrapErrorWithDetails(
		r.db.WithContext(ctx).Create(user).Error,
		"create user",
		fmt.Sprintf("username=%q, email=%q", user.Username, user.Email),
	)
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, wrapErrorWithDetails(err, "get user", fmt.Sprintf("id=%d", id))
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := r.db.WithContext(ctx).Model(&models.User{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapErrorWithDetails(err, "count users", "")
	}

	err := query.Order("id asc").Offset(offsetFor(page, limit)).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, 0, wrapErrorWithDetails(err, "list users", fmt.Sprintf("page=%d, limit=%d", page, limit))
	}
	return users, total, nil
}
