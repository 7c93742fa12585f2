package controllers

import (
	"context"
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

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

var (
	bookingControllerInstance *BookingController
	onceBookingController     sync.Once
)

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	onceBookingController.Do(func() {
		bookingControllerInstance = &BookingController{
			Log:            logger,
			BookingUsecase: bookingUsecase,
		}
	})
	return bookingControllerInstance
}

func (ctrl *BookingController) CreateSlotBooking(w http.ResponseWriter, r *http.Request) {
	requestID, ok := requestIDFromContext(ctrl.Log, w, r)
	if !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	request := new(requests.SlotBooking)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("Failed to parse slot booking request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.BookingUsecase.CreateSlotBooking(ctx, uhid, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentBookedSuccessfully, nil)
}

func (ctrl *BookingController) GetAppointments(w http.ResponseWriter, r *http.Request) {
	if _, ok := requestIDFromContext(ctrl.Log, w, r); !ok {
		return
	}
	uhid, ok := uhidFromQuery(ctrl.Log, w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointments, err := ctrl.BookingUsecase.FindAppointmentsByUHID(ctx, uhid)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildRawResponse(w, constvars.StatusOK, struct {
		Appointments []responses.AppointmentSummary `json:"appointments"`
	}{Appointments: appointments})
}
