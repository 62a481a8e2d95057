package handlers

import (
	"net/http"

	"foodgram-api/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Recipes     *RecipeHandler
	Tags        *TagHandler
	Ingredients *IngredientHandler
	Users       *UserHandler
}

// Media describes locally served uploads. An empty Root disables the static route.
type Media struct {
	URL  string
	Root string
}

func SetupRouter(h Handlers, media Media) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(), middleware.Metrics(), middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", middleware.MetricsHandler())

	if media.Root != "" && media.URL != "" {
		router.Static(media.URL, media.Root)
	}

	api := router.Group("/api")
	api.Use(middleware.Authenticate())
	auth := middleware.RequireAuthenticated()

	tags := api.Group("/tags")
	{
		tags.GET("", h.Tags.GetTags)
		tags.GET("/:id", h.Tags.GetTag)
	}

	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", h.Ingredients.GetIngredients)
		ingredients.GET("/:id", h.Ingredients.GetIngredient)
	}

	recipes := api.Group("/recipes")
	recipes.Use(middleware.AuthenticatedOrReadOnly())
	{
		recipes.GET("", h.Recipes.GetRecipes)
		recipes.POST("", h.Recipes.CreateRecipe)
		recipes.GET("/download_shopping_cart", auth, h.Recipes.DownloadShoppingCart)
		recipes.GET("/:id", h.Recipes.GetRecipe)
		recipes.PATCH("/:id", h.Recipes.UpdateRecipe)
		recipes.DELETE("/:id", h.Recipes.DeleteRecipe)
		recipes.POST("/:id/favorite", h.Recipes.AddFavorite)
		recipes.DELETE("/:id/favorite", h.Recipes.RemoveFavorite)
		recipes.POST("/:id/shopping_cart", h.Recipes.AddToShoppingCart)
		recipes.DELETE("/:id/shopping_cart", h.Recipes.RemoveFromShoppingCart)
	}

	users := api.Group("/users")
	{
		users.GET("", h.Users.GetUsers)
		users.POST("", h.Users.Register)
		users.GET("/me", auth, h.Users.GetMe)
		users.GET("/subscriptions", auth, h.Users.GetSubscriptions)
		users.GET("/:id", h.Users.GetUser)
		users.POST("/:id/subscribe", auth, h.Users.Subscribe)
		users.DELETE("/:id/subscribe", auth, h.Users.Unsubscribe)
	}

	return router
}
