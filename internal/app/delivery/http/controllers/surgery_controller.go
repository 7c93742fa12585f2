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
	"carebridge-service/internal/pkg/fhir_dto"
	"carebridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SurgeryController struct {
	Log            *zap.Logger
	SurgeryUsecase contracts.SurgeryUsecase
}

var (
	surgeryControllerInstance *SurgeryController
	onceSurgeryController     sync.Once
)

func NewSurgeryController(logger *zap.Logger, surgeryUsecase contracts.SurgeryUsecase) *SurgeryController {
	onceSurgeryController.Do(func() {
		surgeryControllerInstance = &SurgeryController{
			Log:            logger,
			SurgeryUsecase: surgeryUsecase,
		}
	})
	return surgeryControllerInstance
}

func (ctrl *SurgeryController) CreateSurgeries(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	var surgeries []requests.SurgeryDetails
	if err := json.NewDecoder(r.Body).Decode(&surgeries); err != nil {
		ctrl.Log.Error("Failed to parse surgery request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := ctrl.SurgeryUsecase.CreateSurgeries(ctx, uhid, surgeries); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SurgeryPostedSuccessfully, nil)
}

func (ctrl *SurgeryController) GetProcedures(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromPath(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bundle, err := ctrl.SurgeryUsecase.FindProceduresByUHID(ctx, uhid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Success    bool             `json:"success"`
		Procedures *fhir_dto.Bundle `json:"procedures"`
	}{Success: true, Procedures: bundle})
}
