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

type ChecklistController struct {
	Log              *zap.Logger
	ChecklistUsecase contracts.ChecklistUsecase
}

var (
	checklistControllerInstance *ChecklistController
	onceChecklistController     sync.Once
)

func NewChecklistController(logger *zap.Logger, checklistUsecase contracts.ChecklistUsecase) *ChecklistController {
	onceChecklistController.Do(func() {
		checklistControllerInstance = &ChecklistController{
			Log:              logger,
			ChecklistUsecase: checklistUsecase,
		}
	})
	return checklistControllerInstance
}

func (ctrl *ChecklistController) CreateChecklist(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.PreOpChecklist)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse checklist request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := ctrl.ChecklistUsecase.CreateChecklist(ctx, uhid, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChecklistPostedSuccessfully, nil)
}

func (ctrl *ChecklistController) GetChecklist(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	documents, err := ctrl.ChecklistUsecase.FindChecklistByUHID(ctx, uhid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Success   bool                          `json:"success"`
		Documents []responses.ChecklistDocument `json:"documents"`
	}{Success: true, Documents: documents})
}

func (ctrl *ChecklistController) UpdateSingleDocument(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.DocumentEntry)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse document update request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ChecklistUsecase.UpdateSingleDocument(ctx, uhid, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK,
		fmt.Sprintf(constvars.DocumentUpdatedSuccessfully, request.DocumentName), nil)
}

func (ctrl *ChecklistController) DeleteDocuments(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}
	documentName := r.URL.Query().Get("document_name")
	if documentName == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingParameter("document_name"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	deleted, err := ctrl.ChecklistUsecase.DeleteDocuments(ctx, uhid, documentName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Success bool                        `json:"success"`
		Message string                      `json:"message"`
		Deleted []responses.DeletedDocument `json:"deleted"`
	}{
		Success: true,
		Message: fmt.Sprintf(constvars.DocumentsDeletedSuccessfully, len(deleted)),
		Deleted: deleted,
	})
}
