package repositories

import (
	"context"
	"fmt"

	"foodgram-api/models"

	"gorm.io/gorm"
)

type ShoppingListRepository interface {
	Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error)
}

type shoppingListRepository struct {
	db *gorm.DB
}

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

// Aggregate sums the amounts of every ingredient over the recipes in the user's basket.
// Rows are grouped on the ingredient itself, not on the amount row.
func (r *shoppingListRepository) Aggregate(ctx context.Context, userID uint) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem

	query := `
		SELECT
			i.name AS name,
			i.measurement_unit AS measurement_unit,
			SUM(ia.amount) AS total_amount
		FROM baskets b
		JOIN recipe_ingredients ri ON ri.recipe_id = b.recipe_id
		JOIN ingredient_amounts ia ON ia.id = ri.ingredient_amount_id
		JOIN ingredients i ON i.id = ia.ingredient_id
		WHERE b.user_id = ?
		GROUP BY i.id, i.name, i.measurement_unit
		ORDER BY i.name ASC, i.measurement_unit ASC
	`

	err := r.db.WithContext(ctx).Raw(query, userID).Scan(&items).Error
	if err != nil {
		return nil, wrapErrorWithDetails(err, "aggregate shopping list", fmt.Sprintf("user_id=%d", userID))
	}
	return items, nil
}
