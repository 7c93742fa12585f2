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

type WatchDataController struct {
	Log              *zap.Logger
	WatchDataUsecase contracts.WatchDataUsecase
}

var (
	watchDataControllerInstance *WatchDataController
	onceWatchDataController     sync.Once
)

func NewWatchDataController(logger *zap.Logger, watchDataUsecase contracts.WatchDataUsecase) *WatchDataController {
	onceWatchDataController.Do(func() {
		watchDataControllerInstance = &WatchDataController{
			Log:              logger,
			WatchDataUsecase: watchDataUsecase,
		}
	})
	return watchDataControllerInstance
}

func (ctrl *WatchDataController) CreateObservations(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.WatchData)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse watch data request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	count, err := ctrl.WatchDataUsecase.CreateObservations(ctx, uhid, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.ObservationsPostedSuccessfully, count), nil)
}

func (ctrl *WatchDataController) GetObservations(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	observations, err := ctrl.WatchDataUsecase.FindObservationsByUHID(ctx, uhid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Success      bool                           `json:"success"`
		Observations []responses.ObservationSummary `json:"observations"`
	}{Success: true, Observations: observations})
}
