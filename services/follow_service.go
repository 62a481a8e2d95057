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

type FollowService interface {
	Subscribe(ctx context.Context, actor models.Actor, authorID uint, recipesLimit int) (*models.FollowView, error)
	Unsubscribe(ctx context.Context, actor models.Actor, authorID uint) error
	Exists(ctx context.Context, actor models.Actor, authorID uint) (bool, error)
	Subscriptions(ctx context.Context, actor models.Actor, params models.SubscriptionParams) (*models.Page[models.FollowView], error)
}

type followService struct {
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
	recipeRepo repositories.RecipeRepository
	views      *projector
	pageSize   int
}

func NewFollowService(
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
	recipeRepo repositories.RecipeRepository,
	store storage.Store,
	pageSize int,
) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		views:      &projector{follows: followRepo, store: store},
		pageSize:   pageSize,
	}
}

func (s *followService) Subscribe(ctx context.Context, actor models.Actor, authorID uint, recipesLimit int) (*models.FollowView, error) {
	if !policy.AuthenticatedOrAdmin(actor) {
		return nil, &models.ErrorUnauthorized{}
	}
	if actor.ID == authorID {
		return nil, models.NewValidationError("errors", "cannot subscribe to yourself")
	}

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	if err := s.followRepo.Add(ctx, actor.ID, authorID); err != nil {
		var conflict *models.ErrorConflict
		if errors.As(err, &conflict) {
			return nil, &models.ErrorConflict{Message: "already subscribed to this author"}
		}
		return nil, err
	}

	log.Debug().Uint("user_id", actor.ID).Uint("author_id", authorID).Msg("subscribed")
	view, err := s.followView(ctx, *author, recipesLimit)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *followService) Unsubscribe(ctx context.Context, actor models.Actor, authorID uint) error {
	if !policy.AuthenticatedOrAdmin(actor) {
		return &models.ErrorUnauthorized{}
	}

	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		return err
	}

	removed, err := s.followRepo.Remove(ctx, actor.ID, authorID)
	if err != nil {
		return err
	}
	if !removed {
		return &models.ErrorNotFound{Entity: "follow", Message: "not subscribed to this author", Relation: true}
	}

	log.Debug().Uint("user_id", actor.ID).Uint("author_id", authorID).Msg("unsubscribed")
	return nil
}

func (s *followService) Exists(ctx context.Context, actor models.Actor, authorID uint) (bool, error) {
	return s.views.isSubscribed(ctx, actor, authorID)
}

func (s *followService) Subscriptions(ctx context.Context, actor models.Actor, params models.SubscriptionParams) (*models.Page[models.FollowView], error) {
	if !policy.AuthenticatedOrAdmin(actor) {
		return nil, &models.ErrorUnauthorized{}
	}

	page, limit := normalizePage(params.Page, params.Limit, s.pageSize)
	authors, total, err := s.followRepo.ListAuthors(ctx, actor.ID, page, limit)
	if err != nil {
		return nil, err
	}

	result := &models.Page[models.FollowView]{
		Items: make([]models.FollowView, 0, len(authors)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for _, author := range authors {
		view, err := s.followView(ctx, author, params.RecipesLimit)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, view)
	}
	return result, nil
}

// followView is an author seen by one of its followers, so is_subscribed is always true.
func (s *followService) followView(ctx context.Context, author models.User, recipesLimit int) (models.FollowView, error) {
	recipes, err := s.recipeRepo.ListByAuthor(ctx, author.ID, recipesLimit)
	if err != nil {
		return models.FollowView{}, err
	}
	count, err := s.recipeRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return models.FollowView{}, err
	}

	view := models.FollowView{
		UserView:     plainUserView(author, true),
		Recipes:      make([]models.ShortRecipeView, 0, len(recipes)),
		RecipesCount: count,
	}
	for _, recipe := range recipes {
		view.Recipes = append(view.Recipes, s.views.shortRecipeView(recipe))
	}
	return view, nil
}
