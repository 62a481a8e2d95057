package repositories

import (
	"context"
	"fmt"

	"foodgram-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeFilter narrows a recipe listing. Zero fields are ignored.
type RecipeFilter struct {
	AuthorID    uint
	TagSlugs    []string
	FavoritedBy uint
	InCartOf    uint
	Page        int
	Limit       int
}

type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe, tags []models.Tag, lines []models.IngredientLine) error
	Update(ctx context.Context, recipe *models.Recipe, tags []models.Tag, lines []models.IngredientLine) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*models.Recipe, error)
	List(ctx context.Context, filter RecipeFilter) ([]models.Recipe, int64, error)
	ListByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Recipe, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create writes the recipe row and its tag and ingredient associations in one transaction.
func (r *recipeRepository) Create(
	ctx context.Context,
	recipe *models.Recipe,
	tags []models.Tag,
	lines []models.IngredientLine,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return wrapErrorWithDetails(err, "create recipe", fmt.Sprintf("author_id=%d, name=%q", recipe.AuthorID, recipe.Name))
		}
		return replaceAssociations(tx, recipe, tags, lines)
	})
}

// Update saves the scalar fields and replaces both association sets in one transaction,
// so readers never see a recipe with its associations cleared.
func (r *recipeRepository) Update(
	ctx context.Context,
	recipe *models.Recipe,
	tags []models.Tag,
	lines []models.IngredientLine,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(recipe).
			Select("name", "text", "image", "cooking_time", "updated_at").
			Updates(recipe).Error
		if err != nil {
			return wrapErrorWithDetails(err, "update recipe", fmt.Sprintf("id=%d", recipe.ID))
		}
		return replaceAssociations(tx, recipe, tags, lines)
	})
}

func replaceAssociations(tx *gorm.DB, recipe *models.Recipe, tags []models.Tag, lines []models.IngredientLine) error {
	details := fmt.Sprintf("recipe_id=%d", recipe.ID)

	amounts, err := resolveAmounts(tx, lines)
	if err != nil {
		return err
	}

	if err := replaceOrClear(tx.Model(recipe).Association("Tags"), tags, len(tags)); err != nil {
		return wrapErrorWithDetails(err, "replace recipe tags", details)
	}
	if err := replaceOrClear(tx.Model(recipe).Association("Ingredients"), amounts, len(amounts)); err != nil {
		return wrapErrorWithDetails(err, "replace recipe ingredients", details)
	}

	recipe.Tags = tags
	recipe.Ingredients = amounts
	return nil
}

// replaceOrClear makes the association hold exactly values, diffing against the current rows.
func replaceOrClear(association *gorm.Association, values interface{}, n int) error {
	if n == 0 {
		return association.Clear()
	}
	return association.Replace(values)
}

// resolveAmounts returns the ingredient amount rows for the lines, inserting the
// (ingredient, amount) pairs that do not exist yet.
func resolveAmounts(tx *gorm.DB, lines []models.IngredientLine) ([]models.IngredientAmount, error) {
	amounts := make([]models.IngredientAmount, 0, len(lines))
	for _, line := range lines {
		row := models.IngredientAmount{IngredientID: line.ID, Amount: line.Amount}
		details := fmt.Sprintf("ingredient_id=%d, amount=%d", line.ID, line.Amount)

		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ingredient_id"}, {Name: "amount"}},
			DoNothing: true,
		}).Omit("Ingredient").Create(&row).Error
		if err != nil {
			return nil, wrapErrorWithDetails(err, "create ingredient amount", details)
		}

		if row.ID == 0 {
			err = tx.Where("ingredient_id = ? AND amount = ?", line.ID, line.Amount).First(&row).Error
			if err != nil {
				return nil, wrapErrorWithDetails(err, "get ingredient amount", details)
			}
		}
		amounts = append(amounts, row)
	}
	return amounts, nil
}

// Delete removes the recipe together with its association, favorite and basket rows.
func (r *recipeRepository) Delete(ctx context.Context, id uint) error {
	details := fmt.Sprintf("id=%d", id)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return wrapErrorWithDetails(err, "delete recipe favorites", details)
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Basket{}).Error; err != nil {
			return wrapErrorWithDetails(err, "delete recipe baskets", details)
		}

		recipe := &models.Recipe{ID: id}
		if err := tx.Model(recipe).Association("Tags").Clear(); err != nil {
			return wrapErrorWithDetails(err, "clear recipe tags", details)
		}
		if err := tx.Model(recipe).Association("Ingredients").Clear(); err != nil {
			return wrapErrorWithDetails(err, "clear recipe ingredients", details)
		}

		res := tx.Delete(&models.Recipe{}, id)
		if res.Error != nil {
			return wrapErrorWithDetails(res.Error, "delete recipe", details)
		}
		if res.RowsAffected == 0 {
			return &models.ErrorNotFound{Entity: "recipe", ID: id}
		}
		return nil
	})
}

func (r *recipeRepository) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.preloaded(ctx).First(&recipe, id).Error
	if err != nil {
		return nil, wrapErrorWithDetails(err, "get recipe", fmt.Sprintf("id=%d", id))
	}
	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context, filter RecipeFilter) ([]models.Recipe, int64, error) {
	var recipes []models.Recipe
	var total int64

	db := r.db.WithContext(ctx)
	query := db.Model(&models.Recipe{})

	if filter.AuthorID > 0 {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}

	if len(filter.TagSlugs) > 0 {
		tagged := db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
		query = query.Where("recipes.id IN (?)", tagged)
	}

	if filter.FavoritedBy > 0 {
		favorited := db.Model(&models.Favorite{}).Select("recipe_id").Where("user_id = ?", filter.FavoritedBy)
		query = query.Where("recipes.id IN (?)", favorited)
	}

	if filter.InCartOf > 0 {
		inCart := db.Model(&models.Basket{}).Select("recipe_id").Where("user_id = ?", filter.InCartOf)
		query = query.Where("recipes.id IN (?)", inCart)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapErrorWithDetails(err, "count recipes", fmt.Sprintf("%+v", filter))
	}

	err := query.
		Preload("Author").
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Order("recipes.id desc").
		Offset(offsetFor(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, wrapErrorWithDetails(err, "list recipes", fmt.Sprintf("%+v", filter))
	}

	return recipes, total, nil
}

func (r *recipeRepository) ListByAuthor(ctx context.Context, authorID uint, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe

	query := r.db.WithContext(ctx).Where("author_id = ?", authorID).Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&recipes).Error
	return recipes, wrapErrorWithDetails(err, "list author recipes", fmt.Sprintf("author_id=%d", authorID))
}

func (r *recipeRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, wrapErrorWithDetails(err, "count author recipes", fmt.Sprintf("author_id=%d", authorID))
}

func (r *recipeRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id desc") }).
		Preload("Ingredients.Ingredient")
}
