package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodgram-api/cache"
	"foodgram-api/config"
	"foodgram-api/handlers"
	"foodgram-api/helper"
	"foodgram-api/repositories"
	"foodgram-api/services"
	"foodgram-api/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load environment variables
	envErr := godotenv.Load()

	cfg := config.Load()
	config.InitLogger(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		log.Info().Msg("No .env file found")
	}
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db := config.InitDB(cfg.Database)

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("type", cfg.Storage.Type).Msg("failed to initialize media storage")
	}
	catalogCache := cache.New(context.Background(), cfg.Cache)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	ingredientRepo := repositories.NewIngredientRepository(db)
	recipeRepo := repositories.NewRecipeRepository(db)
	favoriteRepo := repositories.NewFavoriteRepository(db)
	basketRepo := repositories.NewBasketRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	shoppingListRepo := repositories.NewShoppingListRepository(db)

	// Initialize services
	catalogService := services.NewCatalogService(tagRepo, ingredientRepo, catalogCache)
	recipeService := services.NewRecipeService(recipeRepo, tagRepo, ingredientRepo, favoriteRepo, basketRepo, followRepo, store, cfg.PageSize)
	favoriteService := services.NewFavoriteService(favoriteRepo, recipeRepo, store)
	basketService := services.NewBasketService(basketRepo, recipeRepo, store)
	shoppingListService := services.NewShoppingListService(basketRepo, shoppingListRepo)
	userService := services.NewUserService(userRepo, followRepo, cfg.PageSize)
	followService := services.NewFollowService(followRepo, userRepo, recipeRepo, store, cfg.PageSize)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	router := handlers.SetupRouter(handlers.Handlers{
		Recipes:     handlers.NewRecipeHandler(recipeService, favoriteService, basketService, shoppingListService, httpHelper),
		Tags:        handlers.NewTagHandler(catalogService, httpHelper),
		Ingredients: handlers.NewIngredientHandler(catalogService, httpHelper),
		Users:       handlers.NewUserHandler(userService, followService, httpHelper),
	}, mediaRoute(cfg.Storage))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("Server stopped")
}

func mediaRoute(cfg config.StorageConfig) handlers.Media {
	if cfg.Type == "s3" {
		return handlers.Media{}
	}
	return handlers.Media{URL: cfg.MediaURL, Root: cfg.MediaRoot}
}
