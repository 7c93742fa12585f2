package bookings

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
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

type bookingUsecase struct {
	FhirGateway contracts.FhirGateway
	Log         *zap.Logger
}

func NewBookingUsecase(fhirGateway contracts.FhirGateway, logger *zap.Logger) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			FhirGateway: fhirGateway,
			Log:         logger,
		}
	})
	return bookingUsecaseInstance
}

func (uc *bookingUsecase) CreateSlotBooking(ctx context.Context, uhid string, request *requests.SlotBooking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateSlotBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}

	resource := AppointmentResource(uhid, request)
	return uc.FhirGateway.CreateResource(ctx, constvars.ResourceAppointment, resource, nil)
}

func (uc *bookingUsecase) FindAppointmentsByUHID(ctx context.Context, uhid string) ([]responses.AppointmentSummary, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindAppointmentsByUHID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUHIDKey, uhid),
	)

	query := url.Values{}
	query.Set("identifier", constvars.IdentifierSystemUHID+"|"+uhid)

	resources, err := uc.FhirGateway.SearchResources(ctx, constvars.ResourceAppointment, query)
	if err != nil {
		return nil, err
	}

	appointments := make([]responses.AppointmentSummary, 0, len(resources))
	for _, raw := range resources {
		var appointment fhir_dto.Appointment
		if err := json.Unmarshal(raw, &appointment); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAppointment)
		}
		if summary, ok := SimplifyAppointment(&appointment); ok {
			appointments = append(appointments, summary)
		}
	}
	return appointments, nil
}
