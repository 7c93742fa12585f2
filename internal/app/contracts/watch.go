package contracts

import (
	"context"

	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
)

type WatchDataUsecase interface {
	CreateObservations(ctx context.Context, uhid string, request *requests.WatchData) (int, error)
	FindObservationsByUHID(ctx context.Context, uhid string) ([]responses.ObservationSummary, error)
}
