package contracts

import (
	"context"

	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
)

type MealUsecase interface {
	CreateMeals(ctx context.Context, uhid string, request *requests.TodaysMeal) (int, error)
	FindMealsByUHID(ctx context.Context, uhid string) ([]responses.MealSummary, error)
}
