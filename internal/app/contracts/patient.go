package contracts

import (
	"context"

	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/fhir_dto"
)

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.PatientLogin) (*fhir_dto.TransactionBundle, error)
}
