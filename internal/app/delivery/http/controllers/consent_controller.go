package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"carebridge-service/internal/app/contracts"
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ConsentController struct {
	Log            *zap.Logger
	ConsentUsecase contracts.ConsentUsecase
}

var (
	consentControllerInstance *ConsentController
	onceConsentController     sync.Once
)

func NewConsentController(logger *zap.Logger, consentUsecase contracts.ConsentUsecase) *ConsentController {
	onceConsentController.Do(func() {
		consentControllerInstance = &ConsentController{
			Log:            logger,
			ConsentUsecase: consentUsecase,
		}
	})
	return consentControllerInstance
}

func (ctrl *ConsentController) CreateConsentFormStatus(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.ConsentFormStatus)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse consent form status request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ConsentUsecase.CreateConsentFormStatus(ctx, uhid, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsentStatusPostedSuccessfully, nil)
}

func (ctrl *ConsentController) GetConsentFormStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromPath(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	consent, err := ctrl.ConsentUsecase.FindLatestConsentFormStatus(ctx, uhid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "", consent)
}

func (ctrl *ConsentController) CreateConsentFormData(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.ConsentFormData)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse consent form data request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ConsentUsecase.CreateConsentFormData(ctx, uhid, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsentFormPostedSuccessfully, nil)
}

func (ctrl *ConsentController) GetConsentFormData(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromPath(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	consent, err := ctrl.ConsentUsecase.FindLatestConsentFormData(ctx, uhid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "", consent)
}
