package repositories

import (
	"context"
	"fmt"

	"foodgram-api/models"

	"gorm.io/gorm"
)

// RelationRepository stores a user to recipe toggle relation (favorites, shopping cart).
type RelationRepository interface {
	Add(ctx context.Context, userID, recipeID uint) error
	Remove(ctx context.Context, userID, recipeID uint) (bool, error)
	Exists(ctx context.Context, userID, recipeID uint) (bool, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type relationRepository[T models.RecipeRelation] struct {
	db     *gorm.DB
	name   string
	newRow func(userID, recipeID uint) *T
}

func NewFavoriteRepository(db *gorm.DB) RelationRepository {
	return &relationRepository[models.Favorite]{
		db:   db,
		name: "favorite",
		newRow: func(userID, recipeID uint) *models.Favorite {
			return &models.Favorite{UserID: userID, RecipeID: recipeID}
		},
	}
}

func NewBasketRepository(db *gorm.DB) RelationRepository {
	return &relationRepository[models.Basket]{
		db:   db,
		name: "basket",
		newRow: func(userID, recipeID uint) *models.Basket {
			return &models.Basket{UserID: userID, RecipeID: recipeID}
		},
	}
}

// Add inserts the pair. The unique index decides concurrent inserts, the loser gets ErrorConflict.
func (r *relationRepository[T]) Add(ctx context.Context, userID, recipeID uint) error {
	return wrapErrorWithDetails(
		r.db.WithContext(ctx).Omit("User", "Recipe").Create(r.newRow(userID, recipeID)).Error,
		"create "+r.name,
		fmt.Sprintf("user_id=%d, recipe_id=%d", userID, recipeID),
	)
}

func (r *relationRepository[T]) Remove(ctx context.Context, userID, recipeID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(new(T))
	if res.Error != nil {
		return false, wrapErrorWithDetails(res.Error, "delete "+r.name, fmt.Sprintf("user_id=%d, recipe_id=%d", userID, recipeID))
	}
	return res.RowsAffected > 0, nil
}

func (r *relationRepository[T]) Exists(ctx context.Context, userID, recipeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, wrapErrorWithDetails(err, "check "+r.name, fmt.Sprintf("user_id=%d, recipe_id=%d", userID, recipeID))
	}
	return count > 0, nil
}

func (r *relationRepository[T]) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("user_id = ?", userID).Count(&count).Error
	return count, wrapErrorWithDetails(err, "count "+r.name, fmt.Sprintf("user_id=%d", userID))
}
