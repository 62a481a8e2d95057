package services

import (
	"context"
	"errors"

	"foodgram-api/models"
	"foodgram-api/policy"
	"foodgram-api/repositories"
	"foodgram-api/storage"

	"github.com/rs/zerolog/log"
)

// RelationService toggles a user to recipe relation: favorites or the shopping cart.
type RelationService interface {
	Add(ctx context.Context, actor models.Actor, recipeID uint) (*models.ShortRecipeView, error)
	Remove(ctx context.Context, actor models.Actor, recipeID uint) error
	Exists(ctx context.Context, actor models.Actor, recipeID uint) (bool, error)
}

type relationMessages struct {
	name      string
	duplicate string
	missing   string
}

type relationService struct {
	relationRepo repositories.RelationRepository
	recipeRepo   repositories.RecipeRepository
	views        *projector
	messages     relationMessages
}

func NewFavoriteService(
	favoriteRepo repositories.RelationRepository,
	recipeRepo repositories.RecipeRepository,
	store storage.Store,
) RelationService {
	return &relationService{
		relationRepo: favoriteRepo,
		recipeRepo:   recipeRepo,
		views:        &projector{store: store},
		messages: relationMessages{
			name:      "favorite",
			duplicate: "recipe is already in favorites",
			missing:   "recipe is not in favorites",
		},
	}
}

func NewBasketService(
	basketRepo repositories.RelationRepository,
	recipeRepo repositories.RecipeRepository,
	store storage.Store,
) RelationService {
	return &relationService{
		relationRepo: basketRepo,
		recipeRepo:   recipeRepo,
		views:        &projector{store: store},
		messages: relationMessages{
			name:      "basket",
			duplicate: "recipe is already in the shopping cart",
			missing:   "recipe is not in the shopping cart",
		},
	}
}

func (s *relationService) Add(ctx context.Context, actor models.Actor, recipeID uint) (*models.ShortRecipeView, error) {
	if !policy.AuthenticatedOrAdmin(actor) {
		return nil, &models.ErrorUnauthorized{}
	}

	recipe, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if err := s.relationRepo.Add(ctx, actor.ID, recipeID); err != nil {
		var conflict *models.ErrorConflict
		if errors.As(err, &conflict) {
			return nil, &models.ErrorConflict{Message: s.messages.duplicate}
		}
		return nil, err
	}

	log.Debug().Str("relation", s.messages.name).Uint("user_id", actor.ID).Uint("recipe_id", recipeID).Msg("relation added")
	view := s.views.shortRecipeView(*recipe)
	return &view, nil
}

func (s *relationService) Remove(ctx context.Context, actor models.Actor, recipeID uint) error {
	if !policy.AuthenticatedOrAdmin(actor) {
		return &models.ErrorUnauthorized{}
	}

	if _, err := s.recipeRepo.GetByID(ctx, recipeID); err != nil {
		return err
	}

	removed, err := s.relationRepo.Remove(ctx, actor.ID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return &models.ErrorNotFound{Entity: s.messages.name, Message: s.messages.missing, Relation: true}
	}

	log.Debug().Str("relation", s.messages.name).Uint("user_id", actor.ID).Uint("recipe_id", recipeID).Msg("relation removed")
	return nil
}

func (s *relationService) Exists(ctx context.Context, actor models.Actor, recipeID uint) (bool, error) {
	if actor.IsAnonymous() {
		return false, nil
	}
	return s.relationRepo.Exists(ctx, actor.ID, recipeID)
}
