package contracts

import (
	"context"

	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/fhir_dto"
)

type SurgeryUsecase interface {
	CreateSurgeries(ctx context.Context, uhid string, surgeries []requests.SurgeryDetails) (int, error)
	FindProceduresByUHID(ctx context.Context, uhid string) (*fhir_dto.Bundle, error)
}
