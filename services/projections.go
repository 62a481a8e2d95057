package services

import (
	"context"

	"foodgram-api/models"
	"foodgram-api/repositories"
	"foodgram-api/storage"
)

// projector builds the response views of recipes and users for a given viewer.
// Relation flags are always false for an anonymous viewer and no lookup is made.
type projector struct {
	favorites repositories.RelationRepository
	baskets   repositories.RelationRepository
	follows   repositories.FollowRepository
	store     storage.Store
}

func (p *projector) imageURL(key string) string {
	if key == "" || p.store == nil {
		return ""
	}
	return p.store.URL(key)
}

func (p *projector) isSubscribed(ctx context.Context, viewer models.Actor, authorID uint) (bool, error) {
	if viewer.IsAnonymous() || p.follows == nil {
		return false, nil
	}
	return p.follows.Exists(ctx, viewer.ID, authorID)
}

func (p *projector) userView(ctx context.Context, viewer models.Actor, user models.User) (models.UserView, error) {
	subscribed, err := p.isSubscribed(ctx, viewer, user.ID)
	if err != nil {
		return models.UserView{}, err
	}
	return plainUserView(user, subscribed), nil
}

func plainUserView(user models.User, subscribed bool) models.UserView {
	return models.UserView{
		Email:        user.Email,
		ID:           user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: subscribed,
	}
}

func (p *projector) shortRecipeView(recipe models.Recipe) models.ShortRecipeView {
	return models.ShortRecipeView{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       p.imageURL(recipe.Image),
		CookingTime: recipe.CookingTime,
	}
}

func (p *projector) recipeView(ctx context.Context, viewer models.Actor, recipe models.Recipe) (models.RecipeView, error) {
	view := models.RecipeView{
		ID:          recipe.ID,
		Tags:        recipe.Tags,
		Name:        recipe.Name,
		Image:       p.imageURL(recipe.Image),
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
		Ingredients: make([]models.IngredientAmountView, 0, len(recipe.Ingredients)),
	}
	if view.Tags == nil {
		view.Tags = []models.Tag{}
	}

	for _, amount := range recipe.Ingredients {
		view.Ingredients = append(view.Ingredients, models.IngredientAmountView{
			ID:              amount.IngredientID,
			Name:            amount.Ingredient.Name,
			MeasurementUnit: amount.Ingredient.MeasurementUnit,
			Amount:          amount.Amount,
		})
	}

	author, err := p.userView(ctx, viewer, recipe.Author)
	if err != nil {
		return models.RecipeView{}, err
	}
	view.Author = author

	if viewer.IsAnonymous() {
		return view, nil
	}

	if view.IsFavorited, err = p.favorites.Exists(ctx, viewer.ID, recipe.ID); err != nil {
		return models.RecipeView{}, err
	}
	if view.IsInShoppingCart, err = p.baskets.Exists(ctx, viewer.ID, recipe.ID); err != nil {
		return models.RecipeView{}, err
	}
	return view, nil
}

// maxPageSize caps the limit a client may ask for.
const maxPageSize = 100

// normalizePage applies the default page size, clamps page to 1 and limit to maxPageSize.
func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}
