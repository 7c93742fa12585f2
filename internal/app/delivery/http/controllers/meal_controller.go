package controllers

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MealController struct {
	Log         *zap.Logger
	MealUsecase contracts.MealUsecase
}

var (
	mealControllerInstance *MealController
	onceMealController     sync.Once
)

func NewMealController(logger *zap.Logger, mealUsecase contracts.MealUsecase) *MealController {
	onceMealController.Do(func() {
		mealControllerInstance = &MealController{
			Log:         logger,
			MealUsecase: mealUsecase,
		}
	})
	return mealControllerInstance
}

func (ctrl *MealController) CreateMeals(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.TodaysMeal)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse meals request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	count, err := ctrl.MealUsecase.CreateMeals(ctx, uhid, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.MealsPostedSuccessfully, count), nil)
}

func (ctrl *MealController) GetMeals(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	meals, err := ctrl.MealUsecase.FindMealsByUHID(ctx, uhid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Success bool                    `json:"success"`
		Meals   []responses.MealSummary `json:"meals"`
	}{Success: true, Meals: meals})
}
