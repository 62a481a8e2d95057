package services

import (
	"context"
	"fmt"
	"strings"

	"foodgram-api/models"
	"foodgram-api/policy"
	"foodgram-api/repositories"
)

type ShoppingListService interface {
	Compute(ctx context.Context, actor models.Actor) ([]models.ShoppingListItem, error)
	Render(items []models.ShoppingListItem) string
}

type shoppingListService struct {
	basketRepo repositories.RelationRepository
	listRepo   repositories.ShoppingListRepository
}

func NewShoppingListService(basketRepo repositories.RelationRepository, listRepo repositories.ShoppingListRepository) ShoppingListService {
	return &shoppingListService{basketRepo: basketRepo, listRepo: listRepo}
}

// Compute totals every ingredient over the recipes in the actor's basket.
func (s *shoppingListService) Compute(ctx context.Context, actor models.Actor) ([]models.ShoppingListItem, error) {
	if !policy.AuthenticatedOrAdmin(actor) {
		return nil, &models.ErrorUnauthorized{}
	}

	count, err := s.basketRepo.CountByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, models.NewValidationError("errors", "basket is empty")
	}

	return s.listRepo.Aggregate(ctx, actor.ID)
}

func (s *shoppingListService) Render(items []models.ShoppingListItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "* %s (%s) -- %d\n\n", item.Name, item.MeasurementUnit, item.TotalAmount)
	}
	return b.String()
}
