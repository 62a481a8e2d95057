package services

import (
	"context"
	"fmt"

	"foodgram-api/helper"
	"foodgram-api/models"
	"foodgram-api/policy"
	"foodgram-api/repositories"
	"foodgram-api/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const recipeImagePrefix = "recipes/images/"

type RecipeService interface {
	Create(ctx context.Context, actor models.Actor, req models.RecipeRequest) (*models.RecipeView, error)
	Update(ctx context.Context, actor models.Actor, id uint, req models.RecipeRequest) (*models.RecipeView, error)
	Delete(ctx context.Context, actor models.Actor, id uint) error
	Get(ctx context.Context, viewer models.Actor, id uint) (*models.RecipeView, error)
	List(ctx context.Context, viewer models.Actor, params models.RecipeListParams) (*models.Page[models.RecipeView], error)
}

type recipeService struct {
	recipeRepo     repositories.RecipeRepository
	tagRepo        repositories.TagRepository
	ingredientRepo repositories.IngredientRepository
	store          storage.Store
	views          *projector
	pageSize       int
}

func NewRecipeService(
	recipeRepo repositories.RecipeRepository,
	tagRepo repositories.TagRepository,
	ingredientRepo repositories.IngredientRepository,
	favoriteRepo repositories.RelationRepository,
	basketRepo repositories.RelationRepository,
	followRepo repositories.FollowRepository,
	store storage.Store,
	pageSize int,
) RecipeService {
	return &recipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		store:          store,
		views: &projector{
			favorites: favoriteRepo,
			baskets:   basketRepo,
			follows:   followRepo,
			store:     store,
		},
		pageSize: pageSize,
	}
}

func (s *recipeService) Create(ctx context.Context, actor models.Actor, req models.RecipeRequest) (*models.RecipeView, error) {
	if !policy.AuthenticatedOrAdmin(actor) {
		return nil, &models.ErrorUnauthorized{}
	}

	tags, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}
	if req.Image == "" {
		return nil, models.NewValidationError("image", "this field is required")
	}

	imageKey, err := s.saveImage(ctx, req.Image)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		AuthorID:    actor.ID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       imageKey,
		CookingTime: req.CookingTime,
	}

	if err := s.recipeRepo.Create(ctx, recipe, tags, req.Ingredients); err != nil {
		s.removeImage(ctx, imageKey)
		return nil, err
	}

	log.Debug().Uint("recipe_id", recipe.ID).Uint("author_id", actor.ID).Msg("recipe created")
	return s.Get(ctx, actor, recipe.ID)
}

func (s *recipeService) Update(ctx context.Context, actor models.Actor, id uint, req models.RecipeRequest) (*models.RecipeView, error) {
	if !policy.AuthenticatedOrAdmin(actor) {
		return nil, &models.ErrorUnauthorized{}
	}

	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.OwnerOrReadOnly(actor, false, recipe.AuthorID) {
		return nil, &models.ErrorForbidden{}
	}

	tags, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	oldImage := ""
	if req.Image != "" {
		imageKey, err := s.saveImage(ctx, req.Image)
		if err != nil {
			return nil, err
		}
		oldImage, recipe.Image = recipe.Image, imageKey
	}

	recipe.Name = req.Name
	recipe.Text = req.Text
	recipe.CookingTime = req.CookingTime

	if err := s.recipeRepo.Update(ctx, recipe, tags, req.Ingredients); err != nil {
		if oldImage != "" {
			s.removeImage(ctx, recipe.Image)
		}
		return nil, err
	}

	if oldImage != "" {
		s.removeImage(ctx, oldImage)
	}

	log.Debug().Uint("recipe_id", id).Uint("actor_id", actor.ID).Msg("recipe updated")
	return s.Get(ctx, actor, id)
}

func (s *recipeService) Delete(ctx context.Context, actor models.Actor, id uint) error {
	if !policy.AuthenticatedOrAdmin(actor) {
		return &models.ErrorUnauthorized{}
	}

	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !policy.OwnerOrReadOnly(actor, false, recipe.AuthorID) {
		return &models.ErrorForbidden{}
	}

	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.removeImage(ctx, recipe.Image)

	log.Debug().Uint("recipe_id", id).Uint("actor_id", actor.ID).Msg("recipe deleted")
	return nil
}

func (s *recipeService) Get(ctx context.Context, viewer models.Actor, id uint) (*models.RecipeView, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view, err := s.views.recipeView(ctx, viewer, *recipe)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *recipeService) List(ctx context.Context, viewer models.Actor, params models.RecipeListParams) (*models.Page[models.RecipeView], error) {
	page, limit := normalizePage(params.Page, params.Limit, s.pageSize)
	result := &models.Page[models.RecipeView]{Items: []models.RecipeView{}, Page: page, Limit: limit}

	filter := repositories.RecipeFilter{
		AuthorID: params.Author,
		TagSlugs: params.Tags,
		Page:     page,
		Limit:    limit,
	}

	if params.IsFavorited || params.IsInShoppingCart {
		if viewer.IsAnonymous() {
			return result, nil
		}
		if params.IsFavorited {
			filter.FavoritedBy = viewer.ID
		}
		if params.IsInShoppingCart {
			filter.InCartOf = viewer.ID
		}
	}

	recipes, total, err := s.recipeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result.Total = total
	for _, recipe := range recipes {
		view, err := s.views.recipeView(ctx, viewer, recipe)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, view)
	}
	return result, nil
}

// validate checks the ingredient lines and the tag ids of a request and returns the resolved tags.
func (s *recipeService) validate(ctx context.Context, req models.RecipeRequest) ([]models.Tag, error) {
	if len(req.Ingredients) == 0 {
		return nil, models.NewValidationError("ingredients", "at least one ingredient is required")
	}

	ingredientIDs := make([]uint, 0, len(req.Ingredients))
	queued := make(map[uint]bool, len(req.Ingredients))
	for _, line := range req.Ingredients {
		if !queued[line.ID] {
			queued[line.ID] = true
			ingredientIDs = append(ingredientIDs, line.ID)
		}
	}

	ingredients, err := s.ingredientRepo.GetByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}
	found := make(map[uint]bool, len(ingredients))
	for _, ingredient := range ingredients {
		found[ingredient.ID] = true
	}

	// Lines are checked one at a time: existence, then uniqueness, then amount.
	seen := make(map[uint]bool, len(req.Ingredients))
	for _, line := range req.Ingredients {
		if !found[line.ID] {
			return nil, &models.ErrorNotFound{Entity: "ingredient", ID: line.ID}
		}
		if seen[line.ID] {
			return nil, models.NewValidationError("ingredients", fmt.Sprintf("duplicate ingredient %d", line.ID))
		}
		if line.Amount < 1 {
			return nil, models.NewValidationError("ingredients", fmt.Sprintf("non-positive amount for ingredient %d", line.ID))
		}
		seen[line.ID] = true
	}

	seen = make(map[uint]bool, len(req.Tags))
	for _, id := range req.Tags {
		if seen[id] {
			return nil, models.NewValidationError("tags", fmt.Sprintf("duplicate tag %d", id))
		}
		seen[id] = true
	}

	tags, err := s.tagRepo.GetByIDs(ctx, req.Tags)
	if err != nil {
		return nil, err
	}
	found = make(map[uint]bool, len(tags))
	for _, tag := range tags {
		found[tag.ID] = true
	}
	for _, id := range req.Tags {
		if !found[id] {
			return nil, &models.ErrorNotFound{Entity: "tag", ID: id}
		}
	}

	if req.CookingTime < 1 {
		return nil, models.NewValidationError("cooking_time", "cooking time must be at least 1")
	}

	return tags, nil
}

func (s *recipeService) saveImage(ctx context.Context, dataURI string) (string, error) {
	image, err := helper.DecodeBase64Image(dataURI)
	if err != nil {
		return "", err
	}

	key := recipeImagePrefix + image.Name(uuid.NewString())
	if err := s.store.Save(ctx, key, image.Content); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to store recipe image")
		return "", &models.ErrorInternalServer{Inner: err}
	}
	return key, nil
}

func (s *recipeService) removeImage(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to remove recipe image")
	}
}
