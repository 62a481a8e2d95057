package models

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	Username  string `json:"username" validate:"required,max=150"`
	FirstName string `json:"first_name" validate:"required,max=150"`
	LastName  string `json:"last_name" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,min=8,max=150"`
}

type IngredientLine struct {
	ID     uint `json:"id" validate:"required"`
	Amount int  `json:"amount"`
}

// RecipeRequest is the body of both recipe create and update.
type RecipeRequest struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Text        string           `json:"text" validate:"required"`
	Image       string           `json:"image"`
	CookingTime int              `json:"cooking_time" validate:"min=1"`
	Tags        []uint           `json:"tags"`
	Ingredients []IngredientLine `json:"ingredients" validate:"dive"`
}

type RecipeListParams struct {
	Page             int      `form:"page,default=1"`
	Limit            int      `form:"limit"`
	Author           uint     `form:"author"`
	Tags             []string `form:"tags"`
	IsFavorited      bool     `form:"is_favorited"`
	IsInShoppingCart bool     `form:"is_in_shopping_cart"`
}

type PageParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit"`
}

type SubscriptionParams struct {
	Page         int `form:"page,default=1"`
	Limit        int `form:"limit"`
	RecipesLimit int `form:"recipes_limit"`
}
