package contracts

import (
	"context"

	"carebridge-service/internal/pkg/dto/requests"
	"carebridge-service/internal/pkg/dto/responses"
	"carebridge-service/internal/pkg/fhir_dto"
)

type MedicationUsecase interface {
	// ConvertMedications maps the prescription into a transaction Bundle
	// without posting it upstream.
	ConvertMedications(ctx context.Context, uhid string, request *requests.TabletPrescribed) (*fhir_dto.TransactionBundle, error)
	CreateMedications(ctx context.Context, uhid string, request *requests.TabletPrescribed) (int, error)
	FindMedicationsByUHID(ctx context.Context, uhid string) ([]fhir_dto.MedicationRequest, error)
	FindActiveMedicationsByUHID(ctx context.Context, uhid string) ([]responses.ActiveMedication, error)
	UpdateDose(ctx context.Context, uhid string, request *requests.UpdateDoseRequest) (int, error)
	DeleteActiveMedication(ctx context.Context, uhid, tabletName string) (int, error)
	// AutoCompleteOverdue flips every MedicationRequest past its dosing window
	// to completed and reports how many were updated.
	AutoCompleteOverdue(ctx context.Context) (int, error)
}
