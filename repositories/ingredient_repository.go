package repositories

import (
	"context"
	"fmt"
	"strings"

	"foodgram-api/models"

	"gorm.io/gorm"
)

type IngredientRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Ingredient, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error)
	SearchByPrefix(ctx context.Context, prefix string) ([]models.Ingredient, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := r.db.WithContext(ctx).First(&ingredient, id).Error
	if err != nil {
		return nil, wrapErrorWithDetails(err, "get ingredient", fmt.Sprintf("id=%d", id))
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, wrapErrorWithDetails(err, "get ingredients", fmt.Sprintf("ids=%v", ids))
}

func (r *ingredientRepository) SearchByPrefix(ctx context.Context, prefix string) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient

	query := r.db.WithContext(ctx).Model(&models.Ingredient{})
	if prefix != "" {
		query = query.Where("LOWER(name) LIKE ?", escapeLike(strings.ToLower(prefix))+"%")
	}

	err := query.Order("name asc").Find(&ingredients).Error
	return ingredients, wrapErrorWithDetails(err, "search ingredients", fmt.Sprintf("prefix=%q", prefix))
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
