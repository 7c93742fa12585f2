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

type BillingController struct {
	Log            *zap.Logger
	BillingUsecase contracts.BillingUsecase
}

var (
	billingControllerInstance *BillingController
	onceBillingController     sync.Once
)

func NewBillingController(logger *zap.Logger, billingUsecase contracts.BillingUsecase) *BillingController {
	onceBillingController.Do(func() {
		billingControllerInstance = &BillingController{
			Log:            logger,
			BillingUsecase: billingUsecase,
		}
	})
	return billingControllerInstance
}

func (ctrl *BillingController) CreateBillingAccount(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.BillingInfo)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse billing request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.BillingUsecase.CreateBillingAccount(ctx, uhid, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BillingAccountPostedSuccessfully, nil)
}

func (ctrl *BillingController) GetInvoices(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	invoices, err := ctrl.BillingUsecase.FindInvoicesByUHID(ctx, uhid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Invoices []string `json:"invoices"`
	}{Invoices: invoices})
}
