package services

import (
	"context"
	"strings"

	"foodgram-api/cache"
	"foodgram-api/models"
	"foodgram-api/repositories"

	"github.com/rs/zerolog/log"
)

const (
	tagsCacheKey             = "tags:all"
	ingredientPrefixCacheKey = "ingredients:prefix:"
)

// CatalogService serves the read-only tag and ingredient reference data.
type CatalogService interface {
	ListTags(ctx context.Context) ([]models.Tag, error)
	GetTag(ctx context.Context, id uint) (*models.Tag, error)
	SearchIngredients(ctx context.Context, prefix string) ([]models.Ingredient, error)
	GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error)
}

type catalogService struct {
	tagRepo        repositories.TagRepository
	ingredientRepo repositories.IngredientRepository
	cache          cache.Cache
}

func NewCatalogService(tagRepo repositories.TagRepository, ingredientRepo repositories.IngredientRepository, c cache.Cache) CatalogService {
	if c == nil {
		c = cache.Noop{}
	}
	return &catalogService{tagRepo: tagRepo, ingredientRepo: ingredientRepo, cache: c}
}

func (s *catalogService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return readThrough(ctx, s.cache, tagsCacheKey, func() ([]models.Tag, error) {
		return s.tagRepo.GetAll(ctx)
	})
}

func (s *catalogService) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	return s.tagRepo.GetByID(ctx, id)
}

func (s *catalogService) SearchIngredients(ctx context.Context, prefix string) ([]models.Ingredient, error) {
	key := ingredientPrefixCacheKey + strings.ToLower(prefix)
	return readThrough(ctx, s.cache, key, func() ([]models.Ingredient, error) {
		return s.ingredientRepo.SearchByPrefix(ctx, prefix)
	})
}

func (s *catalogService) GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error) {
	return s.ingredientRepo.GetByID(ctx, id)
}

// readThrough serves key from the cache or loads and stores it. Cache failures only cost a store read.
func readThrough[T any](ctx context.Context, c cache.Cache, key string, load func() ([]T, error)) ([]T, error) {
	var cached []T
	hit, err := c.Get(ctx, key, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if hit {
		return cached, nil
	}

	items, err := load()
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	if err := c.Set(ctx, key, items); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return items, nil
}
