package contracts

import (
	"context"

	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	CreateSlotBooking(ctx context.Context, uhid string, request *requests.SlotBooking) error
	FindAppointmentsByUHID(ctx context.Context, uhid string) ([]responses.AppointmentSummary, error)
}
