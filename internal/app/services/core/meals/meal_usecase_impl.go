package meals

import (
	"context"
	"net/url"
	"sync"

	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/fhir_dto"
	"carebridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	mealUsecaseInstance contracts.MealUsecase
	onceMealUsecase     sync.Once
)

type mealUsecase struct {
	FhirGateway contracts.FhirGateway
	Log         *zap.Logger
}

func NewMealUsecase(fhirGateway contracts.FhirGateway, logger *zap.Logger) contracts.MealUsecase {
	onceMealUsecase.Do(func() {
		mealUsecaseInstance = &mealUsecase{
			FhirGateway: fhirGateway,
			Log:         logger,
		}
	})
	return mealUsecaseInstance
}

func (uc *mealUsecase) CreateMeals(ctx context.Context, uhid string, request *requests.TodaysMeal) (int, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("mealUsecase.CreateMeals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
		zap.Int("meals", len(request.Meals)),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return 0, exceptions.ErrInputValidation(err)
	}

	bundle := MealTransactionBundle(uhid, request)
	if _, err := uc.FhirGateway.PostTransaction(ctx, bundle); err != nil {
		return 0, err
	}
	return len(bundle.Entry), nil
}

func (uc *mealUsecase) FindMealsByUHID(ctx context.Context, uhid string) ([]responses.MealSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("mealUsecase.FindMealsByUHID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	query := url.Values{}
	query.Set("subject", constvars.ResourcePatient+"/"+uhid)

	resources, err := uc.FhirGateway.SearchResources(ctx, constvars.ResourceNutritionOrder, query)
	if err != nil {
		return nil, err
	}

	meals := make([]responses.MealSummary, 0, len(resources))
	for _, raw := range resources {
		var order fhir_dto.NutritionOrder
		if err := json.Unmarshal(raw, &order); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceNutritionOrder)
		}
		if order.ResourceType != constvars.ResourceNutritionOrder || !BelongsToPatient(&order, uhid) {
			continue
		}
		meals = append(meals, SimplifyMeal(&order))
	}
	return meals, nil
}
