package handlers

import (
	"context"

	"foodgram-api/models"

	"github.com/stretchr/testify/mock"
)

type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Create(ctx context.Context, actor models.Actor, req models.RecipeRequest) (*models.RecipeView, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeView), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, actor models.Actor, id uint, req models.RecipeRequest) (*models.RecipeView, error) {
	args := m.Called(ctx, actor, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeView), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, actor models.Actor, id uint) error {
	args := m.Called(ctx, actor, id)
	return args.Error(0)
}

func (m *MockRecipeService) Get(ctx context.Context, viewer models.Actor, id uint) (*models.RecipeView, error) {
	args := m.Called(ctx, viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeView), args.Error(1)
}

func (m *MockRecipeService) List(ctx context.Context, viewer models.Actor, params models.RecipeListParams) (*models.Page[models.RecipeView], error) {
	args := m.Called(ctx, viewer, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[models.RecipeView]), args.Error(1)
}

type MockRelationService struct {
	mock.Mock
}

func (m *MockRelationService) Add(ctx context.Context, actor models.Actor, recipeID uint) (*models.ShortRecipeView, error) {
	args := m.Called(ctx, actor, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShortRecipeView), args.Error(1)
}

func (m *MockRelationService) Remove(ctx context.Context, actor models.Actor, recipeID uint) error {
	args := m.Called(ctx, actor, recipeID)
	return args.Error(0)
}

func (m *MockRelationService) Exists(ctx context.Context, actor models.Actor, recipeID uint) (bool, error) {
	args := m.Called(ctx, actor, recipeID)
	return args.Bool(0), args.Error(1)
}

type MockShoppingListService struct {
	mock.Mock
}

func (m *MockShoppingListService) Compute(ctx context.Context, actor models.Actor) ([]models.ShoppingListItem, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShoppingListItem), args.Error(1)
}

func (m *MockShoppingListService) Render(items []models.ShoppingListItem) string {
	args := m.Called(items)
	return args.String(0)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListTags(ctx context.Context) ([]models.Tag, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockCatalogService) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockCatalogService) SearchIngredients(ctx context.Context, prefix string) ([]models.Ingredient, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

func (m *MockCatalogService) GetIngredient(ctx context.Context, id uint) (*models.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req models.RegisterRequest) (*models.UserView, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserView), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, viewer models.Actor, params models.PageParams) (*models.Page[models.UserView], error) {
	args := m.Called(ctx, viewer, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[models.UserView]), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, viewer models.Actor, id uint) (*models.UserView, error) {
	args := m.Called(ctx, viewer, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserView), args.Error(1)
}

func (m *MockUserService) Me(ctx context.Context, actor models.Actor) (*models.UserView, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserView), args.Error(1)
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Subscribe(ctx context.Context, actor models.Actor, authorID uint, recipesLimit int) (*models.FollowView, error) {
	args := m.Called(ctx, actor, authorID, recipesLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FollowView), args.Error(1)
}

func (m *MockFollowService) Unsubscribe(ctx context.Context, actor models.Actor, authorID uint) error {
	args := m.Called(ctx, actor, authorID)
	return args.Error(0)
}

func (m *MockFollowService) Exists(ctx context.Context, actor models.Actor, authorID uint) (bool, error) {
	args := m.Called(ctx, actor, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowService) Subscriptions(ctx context.Context, actor models.Actor, params models.SubscriptionParams) (*models.Page[models.FollowView], error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[models.FollowView]), args.Error(1)
}
