package contracts

import (
	"context"

	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/fhir_dto"
)

type ConsentUsecase interface {
	CreateConsentFormStatus(ctx context.Context, uhid string, request *requests.ConsentFormStatus) error
	CreateConsentFormData(ctx context.Context, uhid string, request *requests.ConsentFormData) error
	FindLatestConsentFormStatus(ctx context.Context, uhid string) (*fhir_dto.Consent, error)
	FindLatestConsentFormData(ctx context.Context, uhid string) (*fhir_dto.Consent, error)
}
