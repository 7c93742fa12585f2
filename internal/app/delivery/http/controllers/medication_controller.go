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
	"carebridge-service/internal/pkg/fhir_dto"
	"carebridge-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type MedicationController struct {
	Log               *zap.Logger
	MedicationUsecase contracts.MedicationUsecase
}

var (
	medicationControllerInstance *MedicationController
	onceMedicationController     sync.Once
)

func NewMedicationController(logger *zap.Logger, medicationUsecase contracts.MedicationUsecase) *MedicationController {
	onceMedicationController.Do(func() {
		medicationControllerInstance = &MedicationController{
			Log:               logger,
			MedicationUsecase: medicationUsecase,
		}
	})
	return medicationControllerInstance
}

// ConvertMedications maps the prescription to a Bundle and returns it without
// posting anything upstream.
func (ctrl *MedicationController) ConvertMedications(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.TabletPrescribed)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse medication request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bundle, err := ctrl.MedicationUsecase.ConvertMedications(ctx, uhid, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Success    bool                        `json:"success"`
		FhirBundle *fhir_dto.TransactionBundle `json:"fhir_bundle"`
	}{Success: true, FhirBundle: bundle})
}

func (ctrl *MedicationController) CreateMedications(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.TabletPrescribed)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse medication request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	count, err := ctrl.MedicationUsecase.CreateMedications(ctx, uhid, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.MedicationsPostedSuccessfully, count), nil)
}

func (ctrl *MedicationController) GetMedications(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	medications, err := ctrl.MedicationUsecase.FindMedicationsByUHID(ctx, uhid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Success     bool                         `json:"success"`
		Medications []fhir_dto.MedicationRequest `json:"medications"`
	}{Success: true, Medications: medications})
}

func (ctrl *MedicationController) GetActiveMedications(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromPath(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	active, err := ctrl.MedicationUsecase.FindActiveMedicationsByUHID(ctx, uhid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Success           bool                          `json:"success"`
		Count             int                           `json:"count"`
		ActiveMedications []responses.ActiveMedication `json:"active_medications"`
	}{Success: true, Count: len(active), ActiveMedications: active})
}

func (ctrl *MedicationController) UpdateDose(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromPath(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.UpdateDoseRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse dose update request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	updated, err := ctrl.MedicationUsecase.UpdateDose(ctx, uhid, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.MedicationsUpdatedSuccessfully, updated, request.TabletName), nil)
}

func (ctrl *MedicationController) DeleteActiveMedication(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}
	tabletName := r.URL.Query().Get("tablet_name")
	if tabletName == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingParameter("tablet_name"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	deleted, err := ctrl.MedicationUsecase.DeleteActiveMedication(ctx, uhid, tabletName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.MedicinesDeletedSuccessfully, deleted), nil)
}
